package query

import (
	"github.com/sakamoro/alicetxt/column"
	"github.com/sakamoro/alicetxt/container"
	"github.com/sakamoro/alicetxt/errs"
	"github.com/sakamoro/alicetxt/format"
	"github.com/sakamoro/alicetxt/token"
)

// ColumnValues is one column's values decoded into the typed slice its
// element type uses for ordering/equality, addressed by dense index (or by
// row index directly when RecordAligned is set).
type ColumnValues struct {
	ID            format.ColumnID
	RecordAligned bool
	Present       []bool // record-aligned columns only; nil otherwise (always present)
	Int64s        []int64
	U128s         [][16]byte
	U8s           []uint8
	Float64s      []float64
	Strings       []string
}

// Len reports the dense element count, independent of which typed slice is
// populated.
func (v *ColumnValues) Len() int {
	switch {
	case v.Int64s != nil:
		return len(v.Int64s)
	case v.U128s != nil:
		return len(v.U128s)
	case v.U8s != nil:
		return len(v.U8s)
	case v.Float64s != nil:
		return len(v.Float64s)
	default:
		return len(v.Strings)
	}
}

// decodeColumnValues decodes entry's raw (already decompressed) bytes into
// the typed representation the filter/select layer operates on. Timestamp
// hints and IPv6/UUID rendering hints are irrelevant to querying (they only
// matter for byte-exact reconstruction), so this decodes straight to value
// arrays rather than reusing the token.Token-shaped bundle decoders'
// hint fields.
func decodeColumnValues(entry container.ColumnEntry, raw []byte, rowCount int) (*ColumnValues, error) {
	switch entry.ColumnID {
	case format.ColumnTimestamps:
		decoded := column.DecodeTimestampsBundle(raw, rowCount, int(entry.RowCount))
		vals := make([]int64, len(decoded.Tokens))
		for i, t := range decoded.Tokens {
			vals[i] = t.EpochMs
		}
		return &ColumnValues{ID: entry.ColumnID, RecordAligned: true, Present: decoded.Present, Int64s: vals}, nil
	case format.ColumnDates:
		vals := column.DecodeDeltaU32(raw, int(entry.RowCount))
		return &ColumnValues{ID: entry.ColumnID, Int64s: widenU32(vals)}, nil
	case format.ColumnTimes:
		toks := column.DecodeTimesBundle(raw, int(entry.RowCount))
		vals := make([]uint32, len(toks))
		for i, t := range toks {
			vals[i] = t.MsFromMidnight
		}
		return &ColumnValues{ID: entry.ColumnID, Int64s: widenU32(vals)}, nil
	case format.ColumnIPv4:
		vals := column.DecodeU32Array(raw, int(entry.RowCount))
		return &ColumnValues{ID: entry.ColumnID, Int64s: widenU32(vals)}, nil
	case format.ColumnIPv6:
		toks := column.DecodeIPv6Bundle(raw, int(entry.RowCount))
		return &ColumnValues{ID: entry.ColumnID, U128s: bytes16Of(toks)}, nil
	case format.ColumnUUIDs:
		toks := column.DecodeUUIDBundle(raw, int(entry.RowCount))
		return &ColumnValues{ID: entry.ColumnID, U128s: bytes16Of(toks)}, nil
	case format.ColumnLogLevels:
		vals := column.DecodeLogLevels(raw, int(entry.RowCount))
		return &ColumnValues{ID: entry.ColumnID, U8s: vals}, nil
	case format.ColumnNumbers:
		vals := column.DecodeNumberValues(raw, int(entry.RowCount))
		return &ColumnValues{ID: entry.ColumnID, Float64s: vals}, nil
	case format.ColumnNumberReprs, format.ColumnEmails, format.ColumnURLs, format.ColumnPaths:
		vals := column.DecodeTextColumn(raw, int(entry.RowCount))
		return &ColumnValues{ID: entry.ColumnID, Strings: vals}, nil
	default:
		return nil, errs.ErrColumnMissing
	}
}

func widenU32(vals []uint32) []int64 {
	out := make([]int64, len(vals))
	for i, v := range vals {
		out[i] = int64(v)
	}
	return out
}

func bytes16Of(toks []token.Token) [][16]byte {
	out := make([][16]byte, len(toks))
	for i, t := range toks {
		out[i] = t.Bytes16
	}
	return out
}

// presentMapping derives, from a record-aligned presence bitmap, the two
// translations filter/gather need: rowToDense[row] is the dense index a
// present row's value occupies (-1 if absent), and denseToRow[i] is the row
// the i-th dense value belongs to.
func presentMapping(present []bool) (rowToDense []int, denseToRow []int) {
	rowToDense = make([]int, len(present))
	denseToRow = make([]int, 0, len(present))
	next := 0
	for row, ok := range present {
		if !ok {
			rowToDense[row] = -1
			continue
		}
		rowToDense[row] = next
		denseToRow = append(denseToRow, row)
		next++
	}
	return rowToDense, denseToRow
}
