package query

import (
	"context"

	"github.com/sakamoro/alicetxt/errs"
	"github.com/sakamoro/alicetxt/format"
)

// RowSet is the result of Query: the matched row indices plus, for each
// requested select column, the gathered values at those rows (spec §4.5's
// gather semantics: (C_1[i_j], …, C_m[i_j]) for j = 0..k-1).
type RowSet struct {
	Indices []int
	Columns map[string]*ColumnValues
}

// Query composes Filter then gathers selectCols at the matched row indices,
// optionally truncated to limit (spec §4.5). ctx is checked at each column
// boundary and again every scanChunkSize gathered rows (spec §5); pass
// context.Background() for no cancellation.
func (e *Engine) Query(ctx context.Context, selectCols []string, filterCol string, op Operator, literalText string, limit *int) (RowSet, error) {
	if err := e.checkUsable(); err != nil {
		return RowSet{}, err
	}

	indices, err := e.Filter(ctx, filterCol, op, literalText)
	if err != nil {
		return RowSet{}, err
	}
	if limit != nil && *limit >= 0 && *limit < len(indices) {
		indices = indices[:*limit]
	}

	result := RowSet{Indices: indices, Columns: make(map[string]*ColumnValues, len(selectCols))}
	for _, name := range selectCols {
		id, ok := columnIDByName(name)
		if !ok {
			return RowSet{}, errs.ErrColumnMissing
		}
		values, err := e.columnValues(ctx, id)
		if err != nil {
			return RowSet{}, err
		}
		gathered, err := e.gatherColumn(ctx, id, values, indices)
		if err != nil {
			return RowSet{}, err
		}
		result.Columns[name] = gathered
	}
	return result, nil
}

// gatherColumn reorders values' dense elements into row order, following
// indices. Record-aligned columns (timestamps) translate row -> dense index
// via their presence bitmap; every other column goes through the engine's
// lazily built skeleton placeholder map (spec §4.5).
func (e *Engine) gatherColumn(ctx context.Context, id format.ColumnID, values *ColumnValues, indices []int) (*ColumnValues, error) {
	var rowToDense []int
	var ph *placeholderIndex
	if id.RecordAligned() {
		rowToDense, _ = presentMapping(values.Present)
	} else {
		var err error
		ph, err = e.placeholderIndex()
		if err != nil {
			return nil, err
		}
	}

	denseIndexOf := func(row int) (int, bool) {
		if id.RecordAligned() {
			d := rowToDense[row]
			return d, d >= 0
		}
		return ph.indexOf(id, row)
	}

	out := &ColumnValues{ID: id, RecordAligned: id.RecordAligned()}
	present := make([]bool, len(indices))

	// scanCancel is checked every scanChunkSize gathered rows (spec §5's
	// "between scan chunks" granularity), cheap enough to call unconditionally
	// since it only does work at the chunk boundary itself.
	scanCancel := func(j int) error {
		if j%scanChunkSize == 0 {
			return checkCancelled(ctx)
		}
		return nil
	}

	switch {
	case values.Int64s != nil:
		vals := make([]int64, len(indices))
		for j, row := range indices {
			if err := scanCancel(j); err != nil {
				return nil, err
			}
			if d, ok := denseIndexOf(row); ok {
				vals[j] = values.Int64s[d]
				present[j] = true
			}
		}
		out.Int64s = vals
	case values.Float64s != nil:
		vals := make([]float64, len(indices))
		for j, row := range indices {
			if err := scanCancel(j); err != nil {
				return nil, err
			}
			if d, ok := denseIndexOf(row); ok {
				vals[j] = values.Float64s[d]
				present[j] = true
			}
		}
		out.Float64s = vals
	case values.Strings != nil:
		vals := make([]string, len(indices))
		for j, row := range indices {
			if err := scanCancel(j); err != nil {
				return nil, err
			}
			if d, ok := denseIndexOf(row); ok {
				vals[j] = values.Strings[d]
				present[j] = true
			}
		}
		out.Strings = vals
	case values.U128s != nil:
		vals := make([][16]byte, len(indices))
		for j, row := range indices {
			if err := scanCancel(j); err != nil {
				return nil, err
			}
			if d, ok := denseIndexOf(row); ok {
				vals[j] = values.U128s[d]
				present[j] = true
			}
		}
		out.U128s = vals
	case values.U8s != nil:
		vals := make([]uint8, len(indices))
		for j, row := range indices {
			if err := scanCancel(j); err != nil {
				return nil, err
			}
			if d, ok := denseIndexOf(row); ok {
				vals[j] = values.U8s[d]
				present[j] = true
			}
		}
		out.U8s = vals
	}

	out.Present = present
	return out, nil
}
