// Package squeeze provides a uniform interface over interchangeable
// compression codecs (deflate, gzip, zstd, lz4, s2, snappy, brotli):
// one-shot buffer-to-buffer transforms, zero-copy "into" variants over
// caller-supplied regions, and incremental streaming sessions.
package squeeze

import (
	"bytes"
	"fmt"
)

// Compress runs src through codec c and returns the compressed output in
// a new owned Buffer. WithLevel overrides the codec default; WithSizeHint
// pre-sizes the result allocation. On error no partial buffer is returned.
func Compress(c *Codec, src []byte, opts ...Option) (*Buffer, error) {
	cfg, err := resolve(c, opts)
	if err != nil {
		return nil, err
	}
	out := NewBuffer(cfg.sizeHint)
	if _, err := c.compress(out, bytes.NewReader(src), *cfg.level); err != nil {
		return nil, err
	}
	return out, nil
}

// CompressInto compresses src into the caller-supplied dst buffer and
// returns the number of bytes written. If dst's remaining capacity cannot
// hold the full output the call fails with ErrBufferTooSmall; bytes are
// never written past the region's capacity. Size dst with CompressBound
// to rule the error out.
func CompressInto(c *Codec, src []byte, dst *Buffer, opts ...Option) (int, error) {
	cfg, err := resolve(c, opts)
	if err != nil {
		return 0, err
	}
	n, err := c.compress(dst, bytes.NewReader(src), *cfg.level)
	return int(n), err
}

// Decompress decodes a complete compressed stream and returns the output
// in a new owned Buffer. Formats supporting concatenated frames (gzip
// members, zstd frames) decode all of them. Empty input yields an empty
// buffer. Only WithSizeHint applies here; decompression has no level, so
// WithLevel fails with ErrInvalidLevel.
func Decompress(c *Codec, src []byte, opts ...Option) (*Buffer, error) {
	var cfg config
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	if cfg.level != nil {
		return nil, fmt.Errorf("%s: decompress: level option not applicable: %w", c.name, ErrInvalidLevel)
	}
	out := NewBuffer(cfg.sizeHint)
	if len(src) == 0 {
		return out, nil
	}
	if _, err := c.decompress(out, bytes.NewReader(src)); err != nil {
		return nil, err
	}
	return out, nil
}

// DecompressInto decodes src into the caller-supplied dst buffer and
// returns the number of bytes written. Fails with ErrBufferTooSmall if the
// decoded output exceeds dst's remaining capacity.
func DecompressInto(c *Codec, src []byte, dst *Buffer) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	n, err := c.decompress(dst, bytes.NewReader(src))
	return int(n), err
}
