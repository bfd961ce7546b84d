package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/sakamoro/alicetxt/container"
	"github.com/sakamoro/alicetxt/format"
)

type compressOptions struct {
	Output string `short:"o" long:"output" description:"Output file (default: stdout)" value-name:"out"`
	Level  string `long:"level" description:"Compression level: fast, balanced or best"`
}

func parseLevel(raw string) (format.Level, bool) {
	if raw == "" {
		if env := os.Getenv("ALICE_TEXT_LEVEL"); env != "" {
			raw = env
		} else {
			raw = "balanced"
		}
	}
	return format.ParseLevel(raw)
}

// runCompress implements the `compress` command: the v2 monolithic codec
// (spec §4.6's "compatibility" format), the default since most files are
// read by a full decompress rather than a selective query.
func runCompress(args []string) int {
	return compressWith(args, container.WriteV2)
}

// runCompressV3 implements `compress-v3`: the directory-indexed format
// selective queries require (spec §4.4).
func runCompressV3(args []string) int {
	return compressWith(args, container.Write)
}

func compressWith(args []string, encode func([]byte, format.Level) ([]byte, error)) int {
	var opts compressOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] input"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return exitBadUsage
	}
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "alicetxt: compress requires exactly one input file")
		return exitBadUsage
	}

	level, ok := parseLevel(opts.Level)
	if !ok {
		fmt.Fprintf(os.Stderr, "alicetxt: invalid --level %q\n", opts.Level)
		return exitBadUsage
	}

	input, code := readInput(rest[0])
	if code != exitOK {
		return code
	}

	out, err := encode(input, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "alicetxt: encode error: %v\n", err)
		return exitEncode
	}

	return writeOutput(opts.Output, out)
}
