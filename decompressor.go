package squeeze

import (
	"fmt"
)

// Decompressor is the streaming counterpart for decompression. Compressed
// bytes are fed in with Write; Flush decodes everything accumulated so
// far and returns the output. All supported formats self-terminate, so
// there is no trailer to write on close; Close exists to end the session
// and enforce the same Active/Finished discipline as Compressor.
//
// Flush expects whole frames: feeding half a frame and flushing fails
// with the codec's malformed-stream error.
type Decompressor struct {
	codec  *Codec
	intake []byte
	closed bool
}

// NewDecompressor starts a streaming decompression session for codec c.
func NewDecompressor(c *Codec) *Decompressor {
	log.Debug("streaming decompressor created", "codec", c.name)
	return &Decompressor{codec: c}
}

// Write feeds compressed bytes into the session and returns the number of
// bytes accepted.
func (dc *Decompressor) Write(p []byte) (int, error) {
	if dc.closed {
		return 0, fmt.Errorf("%s: write: %w", dc.codec.name, ErrFinished)
	}
	dc.intake = append(dc.intake, p...)
	return len(p), nil
}

// Flush decodes all compressed bytes fed since the last Flush and returns
// the output as a new owned Buffer. The intake is reset; the session
// stays Active. On error the intake is kept, so the caller can feed the
// missing remainder and retry.
func (dc *Decompressor) Flush() (*Buffer, error) {
	if dc.closed {
		return nil, fmt.Errorf("%s: flush: %w", dc.codec.name, ErrFinished)
	}
	out, err := Decompress(dc.codec, dc.intake)
	if err != nil {
		return nil, err
	}
	dc.intake = dc.intake[:0]
	return out, nil
}

// Close ends the session. Every later operation, Close included, fails
// with ErrFinished.
func (dc *Decompressor) Close() error {
	if dc.closed {
		return fmt.Errorf("%s: close: %w", dc.codec.name, ErrFinished)
	}
	dc.closed = true
	dc.intake = nil
	return nil
}
