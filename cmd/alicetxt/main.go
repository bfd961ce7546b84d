// Command alicetxt compresses, decompresses, inspects and queries
// ALICE-Text log containers (spec §6).
package main

import (
	"fmt"
	"os"
)

const (
	exitOK       = 0
	exitIO       = 2
	exitEncode   = 3
	exitDecode   = 4
	exitCorrupt  = 5
	exitQuery    = 6
	exitBadUsage = 1
)

var subcommands = map[string]func(args []string) int{
	"compress":    runCompress,
	"compress-v3": runCompressV3,
	"decompress":  runDecompress,
	"info":        runInfo,
	"verify":      runVerify,
	"estimate":    runEstimate,
	"query":       runQuery,
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitBadUsage)
	}

	cmd, ok := subcommands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "alicetxt: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(exitBadUsage)
	}

	os.Exit(cmd(os.Args[2:]))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: alicetxt <command> [options] input")
	fmt.Fprintln(os.Stderr, "commands: compress, compress-v3, decompress, info, verify, estimate, query")
}

func fatalIO(err error) int {
	fmt.Fprintf(os.Stderr, "alicetxt: io error: %v\n", err)
	return exitIO
}

func readInput(path string) ([]byte, int) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fatalIO(err)
	}
	return data, exitOK
}

func writeOutput(path string, data []byte) int {
	if path == "" || path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fatalIO(err)
		}
		return exitOK
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fatalIO(err)
	}
	return exitOK
}
