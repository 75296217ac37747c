package squeeze

import (
	"bytes"
	"testing"
)

// benchPayload is moderately compressible, in the spirit of real payloads:
// repeated structure with varying content.
func benchPayload(n int) []byte {
	var buf bytes.Buffer
	for i := 0; buf.Len() < n; i++ {
		buf.WriteString("record=")
		buf.WriteByte(byte('a' + i%26))
		buf.WriteString(" value=")
		buf.WriteByte(byte('0' + i%10))
		buf.WriteString(" payload=abcdefghijklmnop\n")
	}
	return buf.Bytes()[:n]
}

func benchCompress(b *testing.B, codec *Codec, size int) {
	payload := benchPayload(size)
	b.SetBytes(int64(size))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compress(codec, payload); err != nil {
			b.Fatal(err)
		}
	}
}

func benchDecompress(b *testing.B, codec *Codec, size int) {
	compressed, err := Compress(codec, benchPayload(size))
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(size))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decompress(codec, compressed.Bytes()); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Compress_Gzip_64KB(b *testing.B)    { benchCompress(b, Gzip, 64<<10) }
func Benchmark_Compress_Zstd_64KB(b *testing.B)    { benchCompress(b, Zstd, 64<<10) }
func Benchmark_Compress_LZ4_64KB(b *testing.B)     { benchCompress(b, LZ4, 64<<10) }
func Benchmark_Compress_S2_64KB(b *testing.B)      { benchCompress(b, S2, 64<<10) }
func Benchmark_Compress_Snappy_64KB(b *testing.B)  { benchCompress(b, Snappy, 64<<10) }
func Benchmark_Compress_Deflate_64KB(b *testing.B) { benchCompress(b, Deflate, 64<<10) }

func Benchmark_Compress_Zstd_1MB(b *testing.B) { benchCompress(b, Zstd, 1<<20) }
func Benchmark_Compress_LZ4_1MB(b *testing.B)  { benchCompress(b, LZ4, 1<<20) }

func Benchmark_Decompress_Gzip_64KB(b *testing.B) { benchDecompress(b, Gzip, 64<<10) }
func Benchmark_Decompress_Zstd_64KB(b *testing.B) { benchDecompress(b, Zstd, 64<<10) }
func Benchmark_Decompress_LZ4_64KB(b *testing.B)  { benchDecompress(b, LZ4, 64<<10) }
func Benchmark_Decompress_S2_64KB(b *testing.B)   { benchDecompress(b, S2, 64<<10) }
