package token

import "github.com/sakamoro/alicetxt/format"

// Placeholder marks a slot in the skeleton that a column value fills during
// reconstruction.
type Placeholder struct {
	Column format.ColumnID
	Index  int
}

// Segment is one element of a SkeletonStream: either a raw literal run or a
// placeholder.
type Segment struct {
	Literal     []byte
	Placeholder *Placeholder
}

// SkeletonStream is the ordered literal/placeholder sequence that, combined
// with column values, reproduces the input byte-for-byte (spec §3).
type SkeletonStream struct {
	Segments []Segment
}

// Columns holds every extracted value, grouped by type. Timestamps and
// TzSpecs are record-aligned (one slot per input record, presence tracked
// by TimestampPresent); every other slice is in token-emission order and is
// addressed only through the skeleton's placeholders.
type Columns struct {
	Timestamps       []Token // Kind == KindTimestamp; one per present row
	TimestampPresent []bool  // len == row count
	Dates            []Token
	Times            []Token
	IPv4             []Token
	IPv6             []Token
	UUIDs            []Token
	LogLevels        []Token
	Numbers          []Token
	Emails           []Token
	URLs             []Token
	Paths            []Token
}

// Build runs the recognizer over input, splitting it into records on '\n'
// (the newline byte is retained as part of the preceding literal run so
// reconstruction reproduces it), and accumulates the skeleton and column
// values. RowCount equals the number of records, matching spec §3's
// invariant that row_count counts records, not tokens.
func Build(input []byte) (*SkeletonStream, *Columns, int) {
	r := NewRecognizer()
	skel := &SkeletonStream{}
	cols := &Columns{}

	rowCount := 0
	start := 0
	n := len(input)
	for start <= n {
		end := start
		for end < n && input[end] != '\n' {
			end++
		}
		hasNewline := end < n
		lineEnd := end
		if hasNewline {
			lineEnd = end + 1 // include the '\n' in this record's literal span
		}
		if start == n {
			break // no trailing empty record after a final newline
		}

		record := input[start:end]
		items := r.Tokenize(record)
		rowHasTimestamp := false

		for _, item := range items {
			if item.Token == nil {
				skel.Segments = append(skel.Segments, Segment{Literal: item.Literal})
				continue
			}
			tok := *item.Token
			ph := appendToken(cols, tok, rowCount, &rowHasTimestamp)
			skel.Segments = append(skel.Segments, Segment{Placeholder: &ph})
		}

		if hasNewline {
			skel.Segments = append(skel.Segments, Segment{Literal: input[end:lineEnd]})
		}

		cols.TimestampPresent = append(cols.TimestampPresent, rowHasTimestamp)
		rowCount++
		start = lineEnd
		if !hasNewline {
			break
		}
	}

	return skel, cols, rowCount
}

// appendToken appends tok's value to the appropriate slice in cols and
// returns the placeholder that addresses it. Timestamps use the current
// row index (record-aligned); every other kind uses its slice's current
// length (token-emission order).
func appendToken(cols *Columns, tok Token, row int, rowHasTimestamp *bool) Placeholder {
	switch tok.Kind {
	case format.KindTimestamp:
		*rowHasTimestamp = true
		cols.Timestamps = append(cols.Timestamps, tok)
		return Placeholder{Column: format.ColumnTimestamps, Index: row}
	case format.KindDate:
		cols.Dates = append(cols.Dates, tok)
		return Placeholder{Column: format.ColumnDates, Index: len(cols.Dates) - 1}
	case format.KindTime:
		cols.Times = append(cols.Times, tok)
		return Placeholder{Column: format.ColumnTimes, Index: len(cols.Times) - 1}
	case format.KindIPv4:
		cols.IPv4 = append(cols.IPv4, tok)
		return Placeholder{Column: format.ColumnIPv4, Index: len(cols.IPv4) - 1}
	case format.KindIPv6:
		cols.IPv6 = append(cols.IPv6, tok)
		return Placeholder{Column: format.ColumnIPv6, Index: len(cols.IPv6) - 1}
	case format.KindUUID:
		cols.UUIDs = append(cols.UUIDs, tok)
		return Placeholder{Column: format.ColumnUUIDs, Index: len(cols.UUIDs) - 1}
	case format.KindLogLevel:
		cols.LogLevels = append(cols.LogLevels, tok)
		return Placeholder{Column: format.ColumnLogLevels, Index: len(cols.LogLevels) - 1}
	case format.KindNumber:
		cols.Numbers = append(cols.Numbers, tok)
		return Placeholder{Column: format.ColumnNumbers, Index: len(cols.Numbers) - 1}
	case format.KindEmail:
		cols.Emails = append(cols.Emails, tok)
		return Placeholder{Column: format.ColumnEmails, Index: len(cols.Emails) - 1}
	case format.KindURL:
		cols.URLs = append(cols.URLs, tok)
		return Placeholder{Column: format.ColumnURLs, Index: len(cols.URLs) - 1}
	case format.KindPath:
		cols.Paths = append(cols.Paths, tok)
		return Placeholder{Column: format.ColumnPaths, Index: len(cols.Paths) - 1}
	default:
		return Placeholder{}
	}
}

// Render reconstructs the original byte sequence from skel, fetching
// placeholder values from cols via renderToken.
func Render(skel *SkeletonStream, cols *Columns) []byte {
	var out []byte
	for _, seg := range skel.Segments {
		if seg.Placeholder == nil {
			out = append(out, seg.Literal...)
			continue
		}
		out = append(out, renderPlaceholder(*seg.Placeholder, cols)...)
	}
	return out
}

func renderPlaceholder(ph Placeholder, cols *Columns) []byte {
	switch ph.Column {
	case format.ColumnTimestamps:
		return renderTimestamp(cols.Timestamps[timestampSlot(cols, ph.Index)])
	case format.ColumnDates:
		return renderDate(cols.Dates[ph.Index])
	case format.ColumnTimes:
		return renderTime(cols.Times[ph.Index])
	case format.ColumnIPv4:
		return renderIPv4(cols.IPv4[ph.Index])
	case format.ColumnIPv6:
		return renderIPv6(cols.IPv6[ph.Index])
	case format.ColumnUUIDs:
		return renderUUID(cols.UUIDs[ph.Index])
	case format.ColumnLogLevels:
		return []byte(LogLevelAlphabet[cols.LogLevels[ph.Index].LevelIndex])
	case format.ColumnNumbers:
		return []byte(cols.Numbers[ph.Index].Repr)
	case format.ColumnEmails:
		return []byte(cols.Emails[ph.Index].Text)
	case format.ColumnURLs:
		return []byte(cols.URLs[ph.Index].Text)
	case format.ColumnPaths:
		return []byte(cols.Paths[ph.Index].Text)
	default:
		return nil
	}
}

// timestampSlot converts a row index into the compacted Timestamps slice
// index, accounting for rows with no timestamp present.
func timestampSlot(cols *Columns, row int) int {
	slot := 0
	for i := 0; i < row; i++ {
		if cols.TimestampPresent[i] {
			slot++
		}
	}
	return slot
}
