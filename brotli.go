package squeeze

import (
	"io"

	"github.com/andybalholm/brotli"
)

// Brotli is the brotli stream format (RFC 7932). Levels 0-11, default 11
// (best quality, matching the reference encoder's default).
var Brotli = register(&Codec{
	name:         "brotli",
	defaultLevel: 11,
	minLevel:     0,
	maxLevel:     11,
	newEncoder: func(dst io.Writer, level int) (streamEncoder, error) {
		return brotli.NewWriterLevel(dst, level), nil
	},
	newDecoder: func(src io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(brotli.NewReader(src)), nil
	},
	bound: func(n int) int { return n + n/255 + 1024 },
})
