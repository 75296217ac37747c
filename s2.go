package squeeze

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2 is the s2 stream format, a snappy extension. Levels: 1 fast,
// 2 better, 3 best.
var S2 = register(&Codec{
	name:         "s2",
	defaultLevel: 1,
	minLevel:     1,
	maxLevel:     3,
	newEncoder: func(dst io.Writer, level int) (streamEncoder, error) {
		var opts []s2.WriterOption
		switch level {
		case 2:
			opts = append(opts, s2.WriterBetterCompression())
		case 3:
			opts = append(opts, s2.WriterBestCompression())
		}
		return s2.NewWriter(dst, opts...), nil
	},
	newDecoder: func(src io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(s2.NewReader(src)), nil
	},
	// Block bound plus stream framing: 10-byte stream identifier and
	// 8 bytes of chunk header/CRC per block.
	bound: func(n int) int { return s2.MaxEncodedLen(n) + 10 + (n/s2BlockSize+1)*8 },
})

// s2BlockSize is the writer's default block size.
const s2BlockSize = 1 << 20
