package column

import (
	"github.com/sakamoro/alicetxt/internal/bitmap"
	"github.com/sakamoro/alicetxt/token"
)

// EncodeTimestampsBundle packs everything the timestamps column needs into
// one blob: the record-aligned presence bitmap, the delta-coded epoch_ms
// values (one per present row), and their per-value rendering hints
// (separator form, millisecond presence). Bundled together because all
// three are written and read as a unit — the container has one ColumnEntry
// per ColumnID, not one per sub-part.
func EncodeTimestampsBundle(rowCount int, present []bool, toks []token.Token) []byte {
	presenceBytes := bitmap.FromBools(present).Bytes()

	epochMs := make([]int64, len(toks))
	forms := make([]token.TimestampForm, len(toks))
	hasMillis := make([]bool, len(toks))
	for i, t := range toks {
		epochMs[i] = t.EpochMs
		forms[i] = t.TimestampForm
		hasMillis[i] = t.HasMillis
	}

	var buf []byte
	buf = writeChunk(buf, presenceBytes)
	buf = writeChunk(buf, EncodeDeltaI64(epochMs))
	buf = writeChunk(buf, EncodeTimestampHints(forms, hasMillis))
	return buf
}

// DecodedTimestamps holds the unpacked result of DecodeTimestampsBundle.
type DecodedTimestamps struct {
	Present []bool
	Tokens  []token.Token // Kind/Tz left zero; caller fills Tz from tz_specs
}

// DecodeTimestampsBundle is the inverse of EncodeTimestampsBundle. rowCount
// is the total input record count (for presence bitmap sizing);
// presentCount is the number of present timestamps (len of the dense
// arrays), both carried on the column's ColumnEntry.
func DecodeTimestampsBundle(data []byte, rowCount, presentCount int) DecodedTimestamps {
	offset := 0
	presenceChunk, next, ok := readChunk(data, offset)
	if !ok {
		return DecodedTimestamps{}
	}
	offset = next
	present := bitmap.FromBytes(presenceChunk, rowCount).Bools()

	valuesChunk, next, ok := readChunk(data, offset)
	if !ok {
		return DecodedTimestamps{Present: present}
	}
	offset = next
	epochMs := DecodeDeltaI64(valuesChunk, presentCount)

	hintsChunk, _, ok := readChunk(data, offset)
	if !ok {
		return DecodedTimestamps{Present: present}
	}
	forms, hasMillis := DecodeTimestampHints(hintsChunk, presentCount)

	toks := make([]token.Token, presentCount)
	for i := range toks {
		toks[i].EpochMs = epochMs[i]
		toks[i].TimestampForm = forms[i]
		toks[i].HasMillis = hasMillis[i]
	}
	return DecodedTimestamps{Present: present, Tokens: toks}
}

// EncodeTimesBundle packs the delta-coded milliseconds-from-midnight array
// together with the has-millis hint that renderTime needs to reproduce the
// exact original text (spec §3's round-trip invariant covers time-of-day
// values the same as timestamps).
func EncodeTimesBundle(toks []token.Token) []byte {
	vals := make([]uint32, len(toks))
	hasMillis := make([]bool, len(toks))
	for i, t := range toks {
		vals[i] = t.MsFromMidnight
		hasMillis[i] = t.TimeHasMillis
	}

	var buf []byte
	buf = writeChunk(buf, EncodeDeltaU32(vals))
	buf = writeChunk(buf, EncodeTimeHints(hasMillis))
	return buf
}

// DecodeTimesBundle is the inverse of EncodeTimesBundle.
func DecodeTimesBundle(data []byte, count int) []token.Token {
	offset := 0
	valuesChunk, next, ok := readChunk(data, offset)
	if !ok {
		return make([]token.Token, count)
	}
	offset = next
	vals := DecodeDeltaU32(valuesChunk, count)

	hintsChunk, _, ok := readChunk(data, offset)
	var hasMillis []bool
	if ok {
		hasMillis = DecodeTimeHints(hintsChunk, count)
	} else {
		hasMillis = make([]bool, count)
	}

	toks := make([]token.Token, count)
	for i := range toks {
		toks[i].MsFromMidnight = vals[i]
		toks[i].TimeHasMillis = hasMillis[i]
	}
	return toks
}

// EncodeIPv6Bundle packs the packed-128-bit address array, its per-value
// hints (hex case, elision index, embedded-IPv4 flag) and the verbatim
// mixed-case text fallback (empty string unless HexCase == CaseMixed).
func EncodeIPv6Bundle(toks []token.Token) []byte {
	bytes16 := make([][16]byte, len(toks))
	hexCases := make([]token.HexCase, len(toks))
	elisions := make([]int, len(toks))
	hasV4 := make([]bool, len(toks))
	texts := make([]string, len(toks))
	for i, t := range toks {
		bytes16[i] = t.Bytes16
		hexCases[i] = t.HexCase
		elisions[i] = t.IPv6ElisionIndex
		hasV4[i] = t.IPv6HasEmbeddedV4
		texts[i] = t.Text
	}

	var buf []byte
	buf = writeChunk(buf, EncodeU128Array(bytes16))
	buf = writeChunk(buf, EncodeIPv6Hints(hexCases, elisions, hasV4))
	buf = writeChunk(buf, EncodeTextColumn(texts))
	return buf
}

// DecodeIPv6Bundle is the inverse of EncodeIPv6Bundle.
func DecodeIPv6Bundle(data []byte, count int) []token.Token {
	offset := 0
	arrChunk, next, ok := readChunk(data, offset)
	if !ok {
		return make([]token.Token, count)
	}
	offset = next
	bytes16 := DecodeU128Array(arrChunk, count)

	hintsChunk, next, ok := readChunk(data, offset)
	if !ok {
		return make([]token.Token, count)
	}
	offset = next
	hexCases, elisions, hasV4 := DecodeIPv6Hints(hintsChunk, count)

	textChunk, _, ok := readChunk(data, offset)
	var texts []string
	if ok {
		texts = DecodeTextColumn(textChunk, count)
	} else {
		texts = make([]string, count)
	}

	toks := make([]token.Token, count)
	for i := range toks {
		toks[i].Bytes16 = bytes16[i]
		toks[i].HexCase = hexCases[i]
		toks[i].IPv6ElisionIndex = elisions[i]
		toks[i].IPv6HasEmbeddedV4 = hasV4[i]
		toks[i].Text = texts[i]
	}
	return toks
}

// EncodeUUIDBundle packs the packed-128-bit value array, its hex-case
// hints, and the verbatim mixed-case text fallback.
func EncodeUUIDBundle(toks []token.Token) []byte {
	bytes16 := make([][16]byte, len(toks))
	hexCases := make([]token.HexCase, len(toks))
	texts := make([]string, len(toks))
	for i, t := range toks {
		bytes16[i] = t.Bytes16
		hexCases[i] = t.HexCase
		texts[i] = t.Text
	}

	var buf []byte
	buf = writeChunk(buf, EncodeU128Array(bytes16))
	buf = writeChunk(buf, EncodeUUIDHints(hexCases))
	buf = writeChunk(buf, EncodeTextColumn(texts))
	return buf
}

// DecodeUUIDBundle is the inverse of EncodeUUIDBundle.
func DecodeUUIDBundle(data []byte, count int) []token.Token {
	offset := 0
	arrChunk, next, ok := readChunk(data, offset)
	if !ok {
		return make([]token.Token, count)
	}
	offset = next
	bytes16 := DecodeU128Array(arrChunk, count)

	hintsChunk, next, ok := readChunk(data, offset)
	if !ok {
		return make([]token.Token, count)
	}
	offset = next
	hexCases := DecodeUUIDHints(hintsChunk, count)

	textChunk, _, ok := readChunk(data, offset)
	var texts []string
	if ok {
		texts = DecodeTextColumn(textChunk, count)
	} else {
		texts = make([]string, count)
	}

	toks := make([]token.Token, count)
	for i := range toks {
		toks[i].Bytes16 = bytes16[i]
		toks[i].HexCase = hexCases[i]
		toks[i].Text = texts[i]
	}
	return toks
}
