package squeeze

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// CompressBound must hold for both incompressible and degenerate inputs:
// sizing a destination with it guarantees CompressInto succeeds.
func TestCompressBound(t *testing.T) {
	inputs := map[string][]byte{
		"empty":          nil,
		"tiny":           []byte("x"),
		"repetitive":     bytes.Repeat([]byte("r"), 100<<10),
		"incompressible": randomBytes(t, 256<<10),
	}

	for _, codec := range allCodecs {
		for name, input := range inputs {
			t.Run(codec.Name()+"/"+name, func(t *testing.T) {
				bound := codec.CompressBound(len(input))
				region := make([]byte, bound)

				n, err := CompressInto(codec, input, WrapBuffer(region))
				require.NoError(t, err)
				require.LessOrEqual(t, n, bound)
			})
		}
	}
}

// The bound must account for stream framing (identifiers, chunk headers,
// CRCs), not just the per-block worst case: incompressible input stored
// in raw chunks still has to fit.
func TestCompressBound_StreamFraming(t *testing.T) {
	payload := randomBytes(t, 300<<10)

	for _, codec := range []*Codec{S2, Snappy, LZ4} {
		t.Run(codec.Name(), func(t *testing.T) {
			region := make([]byte, codec.CompressBound(len(payload)))
			n, err := CompressInto(codec, payload, WrapBuffer(region))
			require.NoError(t, err)
			require.LessOrEqual(t, n, len(region))

			decompressed, err := Decompress(codec, region[:n])
			require.NoError(t, err)
			require.Equal(t, payload, decompressed.Bytes())
		})
	}
}

func TestCodecDescriptors(t *testing.T) {
	for _, codec := range allCodecs {
		min, max := codec.LevelRange()
		require.LessOrEqual(t, min, max, codec.Name())
		require.GreaterOrEqual(t, codec.DefaultLevel(), min, codec.Name())
		require.LessOrEqual(t, codec.DefaultLevel(), max, codec.Name())
		require.NotEmpty(t, codec.Name())
	}

	// Documented defaults.
	require.Equal(t, 6, Deflate.DefaultLevel())
	require.Equal(t, 6, Gzip.DefaultLevel())
	require.Equal(t, 0, Zstd.DefaultLevel()) // 0 = zstd's own default (3)
}
