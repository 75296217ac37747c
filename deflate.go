package squeeze

import (
	"io"

	"github.com/klauspost/compress/flate"
)

// Deflate is the raw DEFLATE stream format (RFC 1951), no container framing.
var Deflate = register(&Codec{
	name:         "deflate",
	defaultLevel: 6,
	minLevel:     0,
	maxLevel:     9,
	newEncoder: func(dst io.Writer, level int) (streamEncoder, error) {
		return flate.NewWriter(dst, level)
	},
	newDecoder: func(src io.Reader) (io.ReadCloser, error) {
		return flate.NewReader(src), nil
	},
	bound: deflateBound,
})

// deflateBound covers the stored-block worst case: 5 bytes of framing per
// 32 KiB block plus the end-of-stream block.
func deflateBound(n int) int {
	return n + (n/32768)*5 + 16
}
