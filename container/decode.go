package container

import (
	"github.com/sakamoro/alicetxt/column"
	"github.com/sakamoro/alicetxt/compress"
	"github.com/sakamoro/alicetxt/errs"
	"github.com/sakamoro/alicetxt/format"
	"github.com/sakamoro/alicetxt/token"
)

// Decode reverses Write or WriteV2, dispatching on the version field (spec
// §4.6): parse the container, decompress and decode every column the
// directory (or monolithic blob) lists, then render the skeleton back into
// the original byte sequence.
func Decode(data []byte) ([]byte, error) {
	hdr, err := ParseHeader2(data)
	if err != nil {
		return nil, err
	}

	if hdr.Version == Version2 {
		return decodeV2(data, hdr)
	}
	return decodeV3(data)
}

func decodeV3(data []byte) ([]byte, error) {
	r, err := Open(data)
	if err != nil {
		return nil, err
	}

	codec, err := detectCodec(r)
	if err != nil {
		return nil, err
	}

	var entries []ColumnEntry
	var raws [][]byte
	for _, e := range r.Columns {
		raw, err := r.Decompress(codec, e)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		raws = append(raws, raw)
	}

	cols, err := buildColumns(int(r.Header.RowCount), entries, raws)
	if err != nil {
		return nil, err
	}

	var skel *token.SkeletonStream
	if r.Header.Flags&FlagHasSkeleton != 0 {
		raw, err := r.Decompress(codec, r.Skeleton)
		if err != nil {
			return nil, err
		}
		skel = column.DecodeSkeleton(raw)
	} else {
		skel = &token.SkeletonStream{}
	}

	return token.Render(skel, cols), nil
}

func decodeV2(data []byte, hdr Header) ([]byte, error) {
	entries, raws, err := ReadV2(data)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errs.ErrHeaderCorrupt
	}

	// The skeleton is the synthetic last entry serializeMonolithic appends.
	columnEntries := entries[:len(entries)-1]
	columnRaws := raws[:len(raws)-1]
	skelRaw := raws[len(raws)-1]

	cols, err := buildColumns(int(hdr.RowCount), columnEntries, columnRaws)
	if err != nil {
		return nil, err
	}
	skel := column.DecodeSkeleton(skelRaw)
	return token.Render(skel, cols), nil
}

// detectCodec resolves the entropy coder a container was written with from
// the compression bits packed into the header's flags (see
// container.WithCompression).
func detectCodec(r *Reader) (compress.Codec, error) {
	return compress.GetCodec(CompressionType(r.Header.Flags))
}

// buildColumns decodes every already-decompressed (entry, raw) pair into a
// token.Columns ready for token.Render. Shared by the v3 directory path and
// the v2 monolithic path, which differ only in how entries/raws were
// produced.
func buildColumns(rowCount int, entries []ColumnEntry, raws [][]byte) (*token.Columns, error) {
	cols := &token.Columns{}

	var tzRaw []byte
	var tzRowCount int
	hasTz := false

	for i, e := range entries {
		raw := raws[i]
		switch e.ColumnID {
		case format.ColumnTimestamps:
			presentCount := int(e.RowCount)
			decoded := column.DecodeTimestampsBundle(raw, rowCount, presentCount)
			cols.TimestampPresent = decoded.Present
			cols.Timestamps = decoded.Tokens
		case format.ColumnTzSpecs:
			tzRaw = raw
			tzRowCount = int(e.RowCount)
			hasTz = true
		case format.ColumnDates:
			vals := column.DecodeDeltaU32(raw, int(e.RowCount))
			cols.Dates = make([]token.Token, len(vals))
			for i, v := range vals {
				cols.Dates[i] = token.Token{Kind: format.KindDate, EpochDays: v}
			}
		case format.ColumnTimes:
			toks := column.DecodeTimesBundle(raw, int(e.RowCount))
			cols.Times = make([]token.Token, len(toks))
			for i, t := range toks {
				cols.Times[i] = token.Token{Kind: format.KindTime, MsFromMidnight: t.MsFromMidnight, TimeHasMillis: t.TimeHasMillis}
			}
		case format.ColumnIPv4:
			vals := column.DecodeU32Array(raw, int(e.RowCount))
			cols.IPv4 = make([]token.Token, len(vals))
			for i, v := range vals {
				cols.IPv4[i] = token.Token{Kind: format.KindIPv4, IPv4: v}
			}
		case format.ColumnIPv6:
			cols.IPv6 = column.DecodeIPv6Bundle(raw, int(e.RowCount))
			for i := range cols.IPv6 {
				cols.IPv6[i].Kind = format.KindIPv6
			}
		case format.ColumnUUIDs:
			cols.UUIDs = column.DecodeUUIDBundle(raw, int(e.RowCount))
			for i := range cols.UUIDs {
				cols.UUIDs[i].Kind = format.KindUUID
			}
		case format.ColumnLogLevels:
			vals := column.DecodeLogLevels(raw, int(e.RowCount))
			cols.LogLevels = make([]token.Token, len(vals))
			for i, v := range vals {
				cols.LogLevels[i] = token.Token{Kind: format.KindLogLevel, LevelIndex: v}
			}
		case format.ColumnNumbers:
			vals := column.DecodeNumberValues(raw, int(e.RowCount))
			growNumbers(cols, len(vals))
			for i, v := range vals {
				cols.Numbers[i].Kind = format.KindNumber
				cols.Numbers[i].NumberValue = v
			}
		case format.ColumnNumberReprs:
			vals := column.DecodeTextColumn(raw, int(e.RowCount))
			growNumbers(cols, len(vals))
			for i, v := range vals {
				cols.Numbers[i].Kind = format.KindNumber
				cols.Numbers[i].Repr = v
			}
		case format.ColumnEmails:
			cols.Emails = decodeTextTokens(format.KindEmail, raw, int(e.RowCount))
		case format.ColumnURLs:
			cols.URLs = decodeTextTokens(format.KindURL, raw, int(e.RowCount))
		case format.ColumnPaths:
			cols.Paths = decodeTextTokens(format.KindPath, raw, int(e.RowCount))
		default:
			return nil, errs.ErrColumnMissing
		}
	}

	if hasTz {
		specs := column.DecodeTzSpecs(tzRaw, tzRowCount)
		for i := range cols.Timestamps {
			if i < len(specs) {
				cols.Timestamps[i].Tz = specs[i]
			}
		}
	}

	return cols, nil
}

func growNumbers(cols *token.Columns, n int) {
	if len(cols.Numbers) >= n {
		return
	}
	grown := make([]token.Token, n)
	copy(grown, cols.Numbers)
	cols.Numbers = grown
}

func decodeTextTokens(kind format.TokenKind, raw []byte, count int) []token.Token {
	vals := column.DecodeTextColumn(raw, count)
	toks := make([]token.Token, len(vals))
	for i, v := range vals {
		toks[i] = token.Token{Kind: kind, Text: v}
	}
	return toks
}
