package column

import (
	"testing"

	"github.com/sakamoro/alicetxt/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltaI64_RoundTrip(t *testing.T) {
	vals := []int64{1700000000000, 1700000001000, 1700000001000, 1699999999000, 0}
	encoded := EncodeDeltaI64(vals)
	assert.Equal(t, vals, DecodeDeltaI64(encoded, len(vals)))
}

func TestDeltaI64_Empty(t *testing.T) {
	assert.Nil(t, EncodeDeltaI64(nil))
	assert.Nil(t, DecodeDeltaI64(nil, 0))
}

func TestDeltaU32_RoundTrip(t *testing.T) {
	vals := []uint32{0, 86399000, 1000, 999999}
	encoded := EncodeDeltaU32(vals)
	assert.Equal(t, vals, DecodeDeltaU32(encoded, len(vals)))
}

func TestU32Array_RoundTrip(t *testing.T) {
	vals := []uint32{0xC0A80164, 0, 0xFFFFFFFF}
	encoded := EncodeU32Array(vals)
	assert.Equal(t, vals, DecodeU32Array(encoded, len(vals)))
}

func TestU128Array_RoundTrip(t *testing.T) {
	var a, b [16]byte
	for i := range a {
		a[i] = byte(i)
		b[i] = byte(15 - i)
	}
	vals := [][16]byte{a, b}
	encoded := EncodeU128Array(vals)
	assert.Equal(t, vals, DecodeU128Array(encoded, len(vals)))
}

func TestLogLevels_RoundTrip(t *testing.T) {
	vals := []uint8{2, 5, 5, 0, 7}
	encoded := EncodeLogLevels(vals)
	assert.Equal(t, vals, DecodeLogLevels(encoded, len(vals)))
}

func TestNumberValues_RoundTrip(t *testing.T) {
	vals := []float64{42.5, -0.0, 1e100, 0, -3.14159}
	encoded := EncodeNumberValues(vals)
	assert.Equal(t, vals, DecodeNumberValues(encoded, len(vals)))
}

func TestTextColumn_RoundTrip(t *testing.T) {
	vals := []string{"a@b.com", "/api/v1", "a@b.com", "", "/api/v1", "a@b.com"}
	encoded := EncodeTextColumn(vals)
	assert.Equal(t, vals, DecodeTextColumn(encoded, len(vals)))
}

func TestTextColumn_Interning(t *testing.T) {
	vals := make([]string, 100)
	for i := range vals {
		vals[i] = "/api/v1/repeat"
	}
	encoded := EncodeTextColumn(vals)
	assert.Less(t, len(encoded), 200, "100 repeats of the same path should intern to one dict entry")
	assert.Equal(t, vals, DecodeTextColumn(encoded, len(vals)))
}

func TestTzSpecs_RoundTrip(t *testing.T) {
	specs := []token.TzSpec{
		{Kind: token.TzUTC},
		{Kind: token.TzUTC},
		{Kind: token.TzOffset, OffsetMinutes: 540},
		{Kind: token.TzOffset, OffsetMinutes: -300},
		{Kind: token.TzNaive},
	}
	encoded := EncodeTzSpecs(specs)
	assert.Equal(t, specs, DecodeTzSpecs(encoded, len(specs)))
}

func TestTzSpecs_Empty(t *testing.T) {
	encoded := EncodeTzSpecs(nil)
	assert.Empty(t, DecodeTzSpecs(encoded, 0))
}

func TestTimestampHints_RoundTrip(t *testing.T) {
	forms := []token.TimestampForm{token.FormISOT, token.FormISOSpace, token.FormISOT}
	millis := []bool{true, false, true}
	encoded := EncodeTimestampHints(forms, millis)
	gotForms, gotMillis := DecodeTimestampHints(encoded, len(forms))
	assert.Equal(t, forms, gotForms)
	assert.Equal(t, millis, gotMillis)
}

func TestIPv6Hints_RoundTrip(t *testing.T) {
	hexCases := []token.HexCase{token.CaseLower, token.CaseUpper, token.CaseMixed}
	elisions := []int{0, -1, 3}
	hasV4 := []bool{false, false, true}
	encoded := EncodeIPv6Hints(hexCases, elisions, hasV4)
	gotCases, gotElisions, gotV4 := DecodeIPv6Hints(encoded, len(hexCases))
	assert.Equal(t, hexCases, gotCases)
	assert.Equal(t, elisions, gotElisions)
	assert.Equal(t, hasV4, gotV4)
}

func TestTimestampsBundle_RoundTrip(t *testing.T) {
	toks := []token.Token{
		{EpochMs: 1700000000000, TimestampForm: token.FormISOT, HasMillis: false},
		{EpochMs: 1700000001500, TimestampForm: token.FormISOSpace, HasMillis: true},
	}
	present := []bool{false, true, true, false}
	encoded := EncodeTimestampsBundle(len(present), present, toks)

	decoded := DecodeTimestampsBundle(encoded, len(present), len(toks))
	assert.Equal(t, present, decoded.Present)
	require.Len(t, decoded.Tokens, len(toks))
	for i, tok := range toks {
		assert.Equal(t, tok.EpochMs, decoded.Tokens[i].EpochMs)
		assert.Equal(t, tok.TimestampForm, decoded.Tokens[i].TimestampForm)
		assert.Equal(t, tok.HasMillis, decoded.Tokens[i].HasMillis)
	}
}

func TestTimesBundle_RoundTrip(t *testing.T) {
	toks := []token.Token{
		{MsFromMidnight: 37800000, TimeHasMillis: false},
		{MsFromMidnight: 37800000, TimeHasMillis: true},
		{MsFromMidnight: 37800500, TimeHasMillis: true},
	}
	encoded := EncodeTimesBundle(toks)
	decoded := DecodeTimesBundle(encoded, len(toks))
	require.Len(t, decoded, len(toks))
	for i, tok := range toks {
		assert.Equal(t, tok.MsFromMidnight, decoded[i].MsFromMidnight)
		assert.Equal(t, tok.TimeHasMillis, decoded[i].TimeHasMillis)
	}
}

func TestIPv6Bundle_RoundTrip(t *testing.T) {
	toks := []token.Token{
		{Bytes16: [16]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, HexCase: token.CaseLower, IPv6ElisionIndex: 0},
		{Bytes16: [16]byte{0xfe, 0x80, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, HexCase: token.CaseUpper, IPv6ElisionIndex: 2},
	}
	encoded := EncodeIPv6Bundle(toks)
	decoded := DecodeIPv6Bundle(encoded, len(toks))
	for i, tok := range toks {
		assert.Equal(t, tok.Bytes16, decoded[i].Bytes16)
		assert.Equal(t, tok.HexCase, decoded[i].HexCase)
		assert.Equal(t, tok.IPv6ElisionIndex, decoded[i].IPv6ElisionIndex)
	}
}

func TestSkeleton_RoundTrip(t *testing.T) {
	ph := token.Placeholder{Column: 5, Index: 3}
	skel := &token.SkeletonStream{
		Segments: []token.Segment{
			{Literal: []byte("GET ")},
			{Placeholder: &ph},
			{Literal: []byte(" 200\n")},
		},
	}
	encoded := EncodeSkeleton(skel)
	decoded := DecodeSkeleton(encoded)
	require.Len(t, decoded.Segments, len(skel.Segments))
	assert.Equal(t, skel.Segments[0].Literal, decoded.Segments[0].Literal)
	assert.Equal(t, *skel.Segments[1].Placeholder, *decoded.Segments[1].Placeholder)
	assert.Equal(t, skel.Segments[2].Literal, decoded.Segments[2].Literal)
}

func TestUUIDBundle_RoundTrip(t *testing.T) {
	toks := []token.Token{
		{Bytes16: [16]byte{0x55, 0x0e, 0x84, 0, 0xe2, 0x9b, 0x41, 0xd4, 0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0, 0}, HexCase: token.CaseLower},
	}
	encoded := EncodeUUIDBundle(toks)
	decoded := DecodeUUIDBundle(encoded, len(toks))
	assert.Equal(t, toks[0].Bytes16, decoded[0].Bytes16)
	assert.Equal(t, toks[0].HexCase, decoded[0].HexCase)
}
