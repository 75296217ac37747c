package squeeze

import (
	"bytes"
)

// Buffer is the byte container produced and consumed by transforms. It is
// either owned (growable, allocated by this package) or external (a view
// over a caller-supplied region with fixed capacity). A Buffer never
// switches variants after construction.
type Buffer struct {
	data     []byte
	start    int // external: first writable offset
	pos      int // external: write cursor
	external bool
}

// NewBuffer creates an empty owned buffer. sizeHint pre-sizes the backing
// allocation (0 means grow on demand); it never limits how much can be
// written.
func NewBuffer(sizeHint int) *Buffer {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Buffer{data: make([]byte, 0, sizeHint)}
}

// WrapBuffer wraps a caller-supplied region. Writes fill the region from
// the front; capacity is fixed at len(region) and is never extended.
func WrapBuffer(region []byte) *Buffer {
	return WrapBufferAt(region, 0)
}

// WrapBufferAt wraps region with the write cursor starting at off.
// Offsets past the end of the region leave zero capacity.
func WrapBufferAt(region []byte, off int) *Buffer {
	if off < 0 {
		off = 0
	}
	if off > len(region) {
		off = len(region)
	}
	return &Buffer{data: region, start: off, pos: off, external: true}
}

// newOwned adopts data as the contents of an owned buffer.
func newOwned(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Write implements io.Writer. Owned buffers always accept the full slice.
// External buffers copy as much as fits and return ErrBufferTooSmall with
// the short count once capacity runs out.
func (b *Buffer) Write(p []byte) (int, error) {
	if !b.external {
		b.data = append(b.data, p...)
		return len(p), nil
	}
	n := copy(b.data[b.pos:], p)
	b.pos += n
	if n < len(p) {
		return n, ErrBufferTooSmall
	}
	return n, nil
}

// Bytes returns the bytes written through this buffer. The slice aliases
// the buffer's backing storage.
func (b *Buffer) Bytes() []byte {
	if b.external {
		return b.data[b.start:b.pos]
	}
	return b.data
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	if b.external {
		return b.pos - b.start
	}
	return len(b.data)
}

// Cap returns the writable capacity: fixed for external buffers,
// current allocation for owned ones.
func (b *Buffer) Cap() int {
	if b.external {
		return len(b.data) - b.start
	}
	return cap(b.data)
}

// Reader returns a zero-copy reader over the written contents.
func (b *Buffer) Reader() *bytes.Reader {
	return bytes.NewReader(b.Bytes())
}

// Reset rewinds the buffer: owned buffers keep their allocation, external
// buffers move the cursor back to the wrap offset.
func (b *Buffer) Reset() {
	if b.external {
		b.pos = b.start
		return
	}
	b.data = b.data[:0]
}
