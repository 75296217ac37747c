package squeeze

import (
	"fmt"
	"io"
	"sort"
)

// streamEncoder is the contract every codec's incremental encoder meets:
// write input, Flush pending output, Close to finalize the container
// (trailer, checksum, end-of-stream marker).
type streamEncoder interface {
	io.Writer
	Flush() error
	Close() error
}

// Codec describes one compression format: its level range and the
// capability functions backing one-shot and streaming operations.
// Descriptors are immutable and safe for concurrent use; per-call encoder
// state is constructed inside the capability functions.
type Codec struct {
	name         string
	defaultLevel int
	minLevel     int
	maxLevel     int

	newEncoder func(dst io.Writer, level int) (streamEncoder, error)
	newDecoder func(src io.Reader) (io.ReadCloser, error)
	bound      func(srcLen int) int
}

// Name returns the codec identifier (e.g. "gzip").
func (c *Codec) Name() string { return c.name }

// DefaultLevel returns the level used when the caller does not supply one.
func (c *Codec) DefaultLevel() int { return c.defaultLevel }

// LevelRange returns the inclusive bounds of valid compression levels.
func (c *Codec) LevelRange() (min, max int) { return c.minLevel, c.maxLevel }

// CompressBound returns the worst-case compressed size for srcLen input
// bytes. Sizing a destination region with it guarantees CompressInto
// cannot fail with ErrBufferTooSmall.
func (c *Codec) CompressBound(srcLen int) int {
	return c.bound(srcLen)
}

// checkLevel validates lvl against the codec's range before any I/O.
func (c *Codec) checkLevel(lvl int) error {
	if lvl < c.minLevel || lvl > c.maxLevel {
		return fmt.Errorf("%s: level %d not in [%d, %d]: %w",
			c.name, lvl, c.minLevel, c.maxLevel, ErrInvalidLevel)
	}
	return nil
}

// compress runs src through a fresh encoder into dst and returns the
// number of bytes written to dst, trailer included.
func (c *Codec) compress(dst io.Writer, src io.Reader, level int) (int64, error) {
	cw := &countingWriter{w: dst}
	enc, err := c.newEncoder(cw, level)
	if err != nil {
		return cw.n, fmt.Errorf("%s: compress: %w", c.name, err)
	}
	if _, err := io.Copy(enc, src); err != nil {
		return cw.n, fmt.Errorf("%s: compress: %w", c.name, err)
	}
	if err := enc.Close(); err != nil {
		return cw.n, fmt.Errorf("%s: compress: %w", c.name, err)
	}
	return cw.n, nil
}

// decompress decodes a complete compressed stream from src into dst and
// returns the number of decompressed bytes written. Formats that permit
// concatenated frames decode all of them.
func (c *Codec) decompress(dst io.Writer, src io.Reader) (int64, error) {
	cw := &countingWriter{w: dst}
	dec, err := c.newDecoder(src)
	if err != nil {
		return cw.n, fmt.Errorf("%s: decompress: %w", c.name, err)
	}
	defer dec.Close()
	if _, err := io.Copy(cw, dec); err != nil {
		return cw.n, fmt.Errorf("%s: decompress: %w", c.name, err)
	}
	return cw.n, nil
}

// countingWriter tracks bytes written to the underlying writer so the
// returned counts reflect actual output, not encoder-internal buffering.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// codecs is the process-wide registry, populated at init by the per-codec
// files. Never mutated afterward.
var codecs = map[string]*Codec{}

func register(c *Codec) *Codec {
	codecs[c.name] = c
	return c
}

// Lookup resolves a codec by name.
func Lookup(name string) (*Codec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownCodec)
	}
	return c, nil
}

// CodecNames returns the registered codec names, sorted.
func CodecNames() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
