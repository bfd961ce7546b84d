package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/sakamoro/alicetxt/container"
)

type estimateOptions struct {
	Detailed bool `long:"detailed" description:"Print per-column uncompressed sizes"`
}

func runEstimate(args []string) int {
	var opts estimateOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] input"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return exitBadUsage
	}
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "alicetxt: estimate requires exactly one input file")
		return exitBadUsage
	}

	input, code := readInput(rest[0])
	if code != exitOK {
		return code
	}

	report := container.Estimate(input)
	fmt.Printf("input: %d bytes, %d rows\n", report.InputLen, report.RowCount)

	if !opts.Detailed {
		return exitOK
	}

	total := 0
	for _, c := range report.Columns {
		total += c.UncompressedLen
		fmt.Printf("  %-14s rows=%-8d uncompressed=%d\n", c.Name, c.RowCount, c.UncompressedLen)
	}
	fmt.Printf("total uncompressed columns: %d bytes\n", total)
	return exitOK
}
