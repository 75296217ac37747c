package squeeze

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Zstd is the zstandard frame format. Level 0 selects zstd's own default
// (currently 3); negative levels trade ratio for speed. Decompression
// handles concatenated frames.
var Zstd = register(&Codec{
	name:         "zstd",
	defaultLevel: 0,
	minLevel:     -7,
	maxLevel:     22,
	newEncoder: func(dst io.Writer, level int) (streamEncoder, error) {
		// WithZeroFrames ensures empty input still produces a valid,
		// decodable frame instead of zero output bytes.
		return zstd.NewWriter(dst,
			zstd.WithEncoderLevel(zstdLevel(level)),
			zstd.WithZeroFrames(true))
	},
	newDecoder: func(src io.Reader) (io.ReadCloser, error) {
		dec, err := zstd.NewReader(src)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	},
	bound: func(n int) int { return n + n/256 + 64 },
})

// zstdLevel maps zstd-scale levels onto the encoder's speed tiers.
func zstdLevel(level int) zstd.EncoderLevel {
	if level == 0 {
		return zstd.SpeedDefault
	}
	return zstd.EncoderLevelFromZstd(level)
}
