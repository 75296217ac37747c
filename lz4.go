package squeeze

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4 is the lz4 frame format. Level 0 is the fast compressor; levels 1-9
// use high-compression mode.
var LZ4 = register(&Codec{
	name:         "lz4",
	defaultLevel: 0,
	minLevel:     0,
	maxLevel:     9,
	newEncoder: func(dst io.Writer, level int) (streamEncoder, error) {
		zw := lz4.NewWriter(dst)
		if err := zw.Apply(lz4.CompressionLevelOption(lz4Level(level))); err != nil {
			return nil, err
		}
		return zw, nil
	},
	newDecoder: func(src io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(lz4.NewReader(src)), nil
	},
	// Block bound plus frame header/footer overhead.
	bound: func(n int) int { return lz4.CompressBlockBound(n) + 32 },
})

// lz4Level maps integer levels to the library's level constants.
func lz4Level(level int) lz4.CompressionLevel {
	switch level {
	case 1:
		return lz4.Level1
	case 2:
		return lz4.Level2
	case 3:
		return lz4.Level3
	case 4:
		return lz4.Level4
	case 5:
		return lz4.Level5
	case 6:
		return lz4.Level6
	case 7:
		return lz4.Level7
	case 8:
		return lz4.Level8
	case 9:
		return lz4.Level9
	default:
		return lz4.Fast
	}
}
