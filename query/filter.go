package query

import (
	"context"
	"sort"

	"github.com/sakamoro/alicetxt/errs"
)

// Filter decompresses exactly one column and evaluates op/literalText
// against every row that carries a value in it, returning a sorted
// ascending vector of matching row indices (spec §4.5). ctx is checked at
// the column boundary and again every scanChunkSize elements of the scan
// (spec §5); pass context.Background() for no cancellation.
func (e *Engine) Filter(ctx context.Context, column string, op Operator, literalText string) ([]int, error) {
	if err := e.checkUsable(); err != nil {
		return nil, err
	}

	id, ok := columnIDByName(column)
	if !ok {
		return nil, errs.ErrColumnMissing
	}
	if err := checkOperator(id, op); err != nil {
		return nil, err
	}
	lit, err := parseLiteral(id, literalText)
	if err != nil {
		return nil, err
	}

	values, err := e.columnValues(ctx, id)
	if err != nil {
		return nil, err
	}

	var rows []int
	if id.RecordAligned() {
		_, denseToRow := presentMapping(values.Present)
		for denseIdx, row := range denseToRow {
			if denseIdx%scanChunkSize == 0 {
				if err := checkCancelled(ctx); err != nil {
					return nil, err
				}
			}
			if matches(values, denseIdx, op, lit) {
				rows = append(rows, row)
			}
		}
	} else {
		ph, err := e.placeholderIndex()
		if err != nil {
			return nil, err
		}
		for denseIdx := 0; denseIdx < values.Len(); denseIdx++ {
			if denseIdx%scanChunkSize == 0 {
				if err := checkCancelled(ctx); err != nil {
					return nil, err
				}
			}
			if !matches(values, denseIdx, op, lit) {
				continue
			}
			if row, ok := ph.rowOf(id, denseIdx); ok {
				rows = append(rows, row)
			}
		}
	}

	sort.Ints(rows)
	return rows, nil
}
