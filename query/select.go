package query

import (
	"context"

	"github.com/sakamoro/alicetxt/errs"
)

// ColumnBatch is the result of Select: one decoded ColumnValues per
// requested column name, sharing the engine's cached decode (spec §4.5).
type ColumnBatch struct {
	Columns map[string]*ColumnValues
}

// Select decompresses and decodes each named column, and only those
// columns — unreferenced columns in the container are never touched
// (spec §4.5, scenario 1: column selectivity). ctx is checked at each
// column boundary (spec §5); pass context.Background() for no cancellation.
func (e *Engine) Select(ctx context.Context, columns []string) (ColumnBatch, error) {
	if err := e.checkUsable(); err != nil {
		return ColumnBatch{}, err
	}

	batch := ColumnBatch{Columns: make(map[string]*ColumnValues, len(columns))}
	for _, name := range columns {
		id, ok := columnIDByName(name)
		if !ok {
			return ColumnBatch{}, errs.ErrColumnMissing
		}
		values, err := e.columnValues(ctx, id)
		if err != nil {
			return ColumnBatch{}, err
		}
		batch.Columns[name] = values
	}
	return batch, nil
}
