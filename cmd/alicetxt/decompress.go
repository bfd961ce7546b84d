package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/sakamoro/alicetxt/container"
)

type decompressOptions struct {
	Output string `short:"o" long:"output" description:"Output file (default: stdout)" value-name:"out"`
}

func runDecompress(args []string) int {
	var opts decompressOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] input"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return exitBadUsage
	}
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "alicetxt: decompress requires exactly one input file")
		return exitBadUsage
	}

	input, code := readInput(rest[0])
	if code != exitOK {
		return code
	}

	out, err := container.Decode(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "alicetxt: decode error: %v\n", err)
		return exitDecode
	}

	return writeOutput(opts.Output, out)
}
