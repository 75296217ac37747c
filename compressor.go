package squeeze

import (
	"bytes"
	"fmt"
)

// Compressor is a streaming compression session. It owns an incremental
// encoder writing into an in-memory sink. The session is Active until
// Finish consumes the encoder, after which every operation fails with
// ErrFinished. A Compressor is single-owner: no internal locking.
type Compressor struct {
	codec *Codec
	enc   streamEncoder // nil once finished
	sink  bytes.Buffer
}

// NewCompressor starts a streaming session for codec c. WithLevel
// overrides the codec's default level.
func NewCompressor(c *Codec, opts ...Option) (*Compressor, error) {
	cfg, err := resolve(c, opts)
	if err != nil {
		return nil, err
	}
	cp := &Compressor{codec: c}
	enc, err := c.newEncoder(&cp.sink, *cfg.level)
	if err != nil {
		return nil, fmt.Errorf("%s: new compressor: %w", c.name, err)
	}
	cp.enc = enc
	log.Debug("streaming compressor created", "codec", c.name, "level", *cfg.level)
	return cp, nil
}

// Write feeds input through the encoder and returns the number of input
// bytes consumed. Output may stay buffered inside the encoder until the
// next Flush or Finish.
func (cp *Compressor) Write(p []byte) (int, error) {
	if cp.enc == nil {
		return 0, fmt.Errorf("%s: write: %w", cp.codec.name, ErrFinished)
	}
	n, err := cp.enc.Write(p)
	if err != nil {
		return n, fmt.Errorf("%s: write: %w", cp.codec.name, err)
	}
	return n, nil
}

// Flush forces the encoder to emit everything it has buffered and returns
// the drained sink contents as a new owned Buffer. The session stays
// Active and accepts further writes; flushing does not finalize the
// stream.
func (cp *Compressor) Flush() (*Buffer, error) {
	if cp.enc == nil {
		return nil, fmt.Errorf("%s: flush: %w", cp.codec.name, ErrFinished)
	}
	if err := cp.enc.Flush(); err != nil {
		return nil, fmt.Errorf("%s: flush: %w", cp.codec.name, err)
	}
	return cp.drain(), nil
}

// Finish finalizes the stream (trailer included), drains the remaining
// output into a new owned Buffer and moves the session to Finished. At
// most one Finish succeeds per session; it and every later operation
// fail with ErrFinished afterwards.
func (cp *Compressor) Finish() (*Buffer, error) {
	if cp.enc == nil {
		return nil, fmt.Errorf("%s: finish: %w", cp.codec.name, ErrFinished)
	}
	enc := cp.enc
	cp.enc = nil
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%s: finish: %w", cp.codec.name, err)
	}
	return cp.drain(), nil
}

// drain moves the sink contents into a fresh owned buffer and resets the
// sink for further output.
func (cp *Compressor) drain() *Buffer {
	out := newOwned(append([]byte(nil), cp.sink.Bytes()...))
	cp.sink.Reset()
	return out
}
