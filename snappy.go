package squeeze

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// Snappy is the framed snappy stream format (level-less; only level 0 is
// valid). Encoded via the s2 writer in snappy-compatible mode; the s2
// reader decodes snappy streams transparently.
var Snappy = register(&Codec{
	name:         "snappy",
	defaultLevel: 0,
	minLevel:     0,
	maxLevel:     0,
	newEncoder: func(dst io.Writer, level int) (streamEncoder, error) {
		return s2.NewWriter(dst, s2.WriterSnappyCompat()), nil
	},
	newDecoder: func(src io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(s2.NewReader(src)), nil
	},
	// Stream header plus an 8-byte chunk header per 64 KiB, chunks stored
	// raw in the worst case.
	bound: func(n int) int { return n + 10 + (n/65536+1)*8 },
})
