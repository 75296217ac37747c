package squeeze

import (
	"errors"
)

// ErrBufferTooSmall is returned when a caller-supplied destination buffer
// has insufficient capacity for the produced output. Output already written
// into the buffer stays there; nothing is ever written past its capacity.
var ErrBufferTooSmall = errors.New("destination buffer too small")

// ErrInvalidLevel is returned when a compression level falls outside the
// codec's supported range. Validation happens before any codec I/O runs.
var ErrInvalidLevel = errors.New("compression level out of range")

// ErrFinished is returned by session operations after Finish (or Close)
// has consumed the underlying encoder. A finished session never recovers.
var ErrFinished = errors.New("compressor already finished")

// ErrUnknownCodec is returned by Lookup for unregistered codec names.
var ErrUnknownCodec = errors.New("unknown codec")

// IsBufferTooSmall is a helper to detect capacity failures.
func IsBufferTooSmall(err error) bool {
	return errors.Is(err, ErrBufferTooSmall)
}

// IsFinished reports whether err came from operating on a finished session.
func IsFinished(err error) bool {
	return errors.Is(err, ErrFinished)
}
