package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/sakamoro/alicetxt/query"
)

type queryOptions struct {
	Stats   bool   `long:"stats" description:"Print row/column counts and sizes"`
	Columns bool   `long:"columns" description:"List column names"`
	Select  string `long:"select" description:"Comma-separated column names to select" value-name:"cols"`
	Where   string `long:"where" description:"Filter expression: column op value" value-name:"expr"`
	Limit   int    `long:"limit" description:"Limit the number of matched rows" default:"-1"`
	Format  string `long:"format" description:"Output format: text or json" default:"text"`
}

var operatorTokens = map[string]query.Operator{
	"=":  query.Eq,
	"!=": query.Ne,
	"<":  query.Lt,
	"<=": query.Le,
	">":  query.Gt,
	">=": query.Ge,
}

// parseWhere splits a "column op value" expression (spec §6's where-
// expression grammar) on its first two single spaces, and looks the middle
// field up in operatorTokens as an exact token, so "<=" must be written
// with spaces around it like every other operator.
func parseWhere(expr string) (column string, op query.Operator, literal string, ok bool) {
	fields := strings.SplitN(strings.TrimSpace(expr), " ", 3)
	if len(fields) != 3 {
		return "", 0, "", false
	}
	op, ok = operatorTokens[fields[1]]
	if !ok {
		return "", 0, "", false
	}
	return fields[0], op, fields[2], true
}

func runQuery(args []string) int {
	var opts queryOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] input"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return exitBadUsage
	}
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "alicetxt: query requires exactly one input file")
		return exitBadUsage
	}

	input, code := readInput(rest[0])
	if code != exitOK {
		return code
	}

	// A long Select/Query scan over a large container is exactly what
	// spec §5's cancellation is for: Ctrl-C stops it at the next column or
	// scan-chunk boundary instead of running to completion.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine, err := query.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "alicetxt: %v\n", err)
		return exitCorrupt
	}
	defer engine.Close()

	switch {
	case opts.Stats:
		stats, err := engine.Stats()
		if err != nil {
			return queryFailed(err)
		}
		return printResult(opts.Format, stats)

	case opts.Columns:
		names, err := engine.Columns()
		if err != nil {
			return queryFailed(err)
		}
		return printResult(opts.Format, names)

	case opts.Select != "":
		selectCols := strings.Split(opts.Select, ",")
		if opts.Where == "" {
			batch, err := engine.Select(ctx, selectCols)
			if err != nil {
				return queryFailed(err)
			}
			return printResult(opts.Format, batch)
		}

		column, op, literal, ok := parseWhere(opts.Where)
		if !ok {
			fmt.Fprintf(os.Stderr, "alicetxt: invalid --where expression %q\n", opts.Where)
			return exitBadUsage
		}
		var limit *int
		if opts.Limit >= 0 {
			limit = &opts.Limit
		}
		rows, err := engine.Query(ctx, selectCols, column, op, literal, limit)
		if err != nil {
			return queryFailed(err)
		}
		return printResult(opts.Format, rows)

	default:
		fmt.Fprintln(os.Stderr, "alicetxt: query requires one of --stats, --columns, --select")
		return exitBadUsage
	}
}

func queryFailed(err error) int {
	fmt.Fprintf(os.Stderr, "alicetxt: query error: %v\n", err)
	return exitQuery
}

func printResult(format string, v any) int {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fatalIO(err)
		}
		return exitOK
	}

	fmt.Printf("%+v\n", v)
	return exitOK
}
