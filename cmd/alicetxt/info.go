package main

import (
	"fmt"
	"os"

	"github.com/sakamoro/alicetxt/container"
	"github.com/sakamoro/alicetxt/query"
)

func runInfo(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "alicetxt: info requires exactly one input file")
		return exitBadUsage
	}

	input, code := readInput(args[0])
	if code != exitOK {
		return code
	}

	hdr, err := container.ParseHeader2(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "alicetxt: %v\n", err)
		return exitCorrupt
	}

	fmt.Printf("version: %d\n", hdr.Version)
	fmt.Printf("rows: %d\n", hdr.RowCount)

	if hdr.Version == container.Version2 {
		fmt.Printf("columns: %d (monolithic, no per-column directory)\n", hdr.ColumnCount)
		return exitOK
	}

	engine, err := query.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "alicetxt: %v\n", err)
		return exitCorrupt
	}
	defer engine.Close()

	stats, err := engine.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "alicetxt: %v\n", err)
		return exitCorrupt
	}

	fmt.Printf("columns: %d\n", stats.ColumnCount)
	for _, c := range stats.Columns {
		fmt.Printf("  %-14s rows=%-8d uncompressed=%-10d compressed=%d\n",
			c.Name, c.RowCount, c.UncompressedLen, c.CompressedLen)
	}
	return exitOK
}
