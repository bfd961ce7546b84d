package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sakamoro/alicetxt/container"
	"github.com/sakamoro/alicetxt/query"
)

func runVerify(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "alicetxt: verify requires exactly one input file")
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

	if hdr.Version == container.Version2 {
		if _, err := container.Decode(input); err != nil {
			fmt.Fprintf(os.Stderr, "alicetxt: %v\n", err)
			return exitCorrupt
		}
		fmt.Println("ok")
		return exitOK
	}

	engine, err := query.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "alicetxt: %v\n", err)
		return exitCorrupt
	}
	defer engine.Close()

	names, err := engine.Columns()
	if err != nil {
		fmt.Fprintf(os.Stderr, "alicetxt: %v\n", err)
		return exitCorrupt
	}

	// Select does not accept tz_specs, so it is left out of the columns
	// forced through it here.
	selectable := make([]string, 0, len(names))
	for _, name := range names {
		if name != "tz_specs" {
			selectable = append(selectable, name)
		}
	}
	if _, err := engine.Select(context.Background(), selectable); err != nil {
		fmt.Fprintf(os.Stderr, "alicetxt: %v\n", err)
		return exitCorrupt
	}
	if err := engine.VerifySkeleton(); err != nil {
		fmt.Fprintf(os.Stderr, "alicetxt: %v\n", err)
		return exitCorrupt
	}

	fmt.Println("ok")
	return exitOK
}
