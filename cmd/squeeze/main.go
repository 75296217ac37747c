package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/miretskiy/squeeze"
)

func main() {
	// Define flags
	codecName := flag.String("codec", "gzip", "Codec to use: "+strings.Join(squeeze.CodecNames(), ", "))
	decompress := flag.Bool("d", false, "Decompress instead of compress")
	level := flag.Int("level", 0, "Compression level (codec default if omitted)")
	output := flag.String("o", "", "Output file (default: stdout)")
	sum := flag.Bool("sum", false, "Print xxhash64 digests of input and output to stderr")
	flag.Parse()

	levelSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "level" {
			levelSet = true
		}
	})

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: squeeze [flags] <input-file>")
		flag.Usage()
		os.Exit(1)
	}

	codec, err := squeeze.Lookup(*codecName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	input, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var result *squeeze.Buffer
	if *decompress {
		result, err = squeeze.Decompress(codec, input)
	} else {
		var opts []squeeze.Option
		if levelSet {
			opts = append(opts, squeeze.WithLevel(*level))
		}
		result, err = squeeze.Compress(codec, input, opts...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *sum {
		fmt.Fprintf(os.Stderr, "input:  %d bytes, xxh64 %016x\n", len(input), xxhash.Sum64(input))
		fmt.Fprintf(os.Stderr, "output: %d bytes, xxh64 %016x\n", result.Len(), xxhash.Sum64(result.Bytes()))
	}

	if *output == "" {
		if _, err := os.Stdout.Write(result.Bytes()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := os.WriteFile(*output, result.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
