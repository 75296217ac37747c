package squeeze

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// Gzip is the gzip container format (RFC 1952). Decompression handles
// multi-member streams: decoding frame1||frame2 yields the concatenation
// of both members' contents.
var Gzip = register(&Codec{
	name:         "gzip",
	defaultLevel: 6,
	minLevel:     0,
	maxLevel:     9,
	newEncoder: func(dst io.Writer, level int) (streamEncoder, error) {
		return gzip.NewWriterLevel(dst, level)
	},
	newDecoder: func(src io.Reader) (io.ReadCloser, error) {
		// The reader decodes all concatenated members by default.
		return gzip.NewReader(src)
	},
	// Deflate worst case plus the 10-byte header and 8-byte trailer.
	bound: func(n int) int { return deflateBound(n) + 18 },
})
