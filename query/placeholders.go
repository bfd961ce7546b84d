package query

import (
	"github.com/sakamoro/alicetxt/format"
	"github.com/sakamoro/alicetxt/token"
)

// placeholderIndex is the engine's lazily built per-record placeholder map
// (spec §4.5): for non-record-aligned columns (everything but timestamps),
// it answers "which dense index does row r's value for column c live at"
// and the inverse "which row does dense index i of column c belong to".
// Built in one streamed pass over the skeleton, O(skeleton_len), and cached
// for the engine's lifetime.
type placeholderIndex struct {
	rowToIndex map[format.ColumnID]map[int]int // row -> first dense index in that column
	indexToRow map[format.ColumnID]map[int]int // dense index -> row
}

func buildPlaceholderIndex(skel *token.SkeletonStream, rowCount int) *placeholderIndex {
	idx := &placeholderIndex{
		rowToIndex: make(map[format.ColumnID]map[int]int),
		indexToRow: make(map[format.ColumnID]map[int]int),
	}

	row := 0
	for _, seg := range skel.Segments {
		if seg.Placeholder == nil {
			for _, b := range seg.Literal {
				if b == '\n' {
					row++
				}
			}
			continue
		}
		col := seg.Placeholder.Column
		if col.RecordAligned() {
			continue
		}
		if idx.rowToIndex[col] == nil {
			idx.rowToIndex[col] = make(map[int]int)
			idx.indexToRow[col] = make(map[int]int)
		}
		if _, seen := idx.rowToIndex[col][row]; !seen {
			idx.rowToIndex[col][row] = seg.Placeholder.Index
		}
		idx.indexToRow[col][seg.Placeholder.Index] = row
	}

	return idx
}

// rowOf returns the row a dense column index belongs to.
func (idx *placeholderIndex) rowOf(col format.ColumnID, denseIndex int) (int, bool) {
	m, ok := idx.indexToRow[col]
	if !ok {
		return 0, false
	}
	row, ok := m[denseIndex]
	return row, ok
}

// indexOf returns the dense index col's value occupies for row (the first
// occurrence, if the row contains more than one token of that kind).
func (idx *placeholderIndex) indexOf(col format.ColumnID, row int) (int, bool) {
	m, ok := idx.rowToIndex[col]
	if !ok {
		return 0, false
	}
	i, ok := m[row]
	return i, ok
}

func (e *Engine) placeholderIndex() (*placeholderIndex, error) {
	e.placeholderOnce.Do(func() {
		skel, err := e.skeleton()
		if err != nil {
			e.placeholderErr = err
			return
		}
		e.placeholders = buildPlaceholderIndex(skel, int(e.reader.Header.RowCount))
	})
	if e.placeholderErr != nil {
		return nil, e.placeholderErr
	}
	return e.placeholders, nil
}
