package column

import "github.com/sakamoro/alicetxt/token"

// EncodeTimestampHints packs TimestampForm (bit 0) and HasMillis (bit 1)
// one byte per timestamp (spec §4.3's "hints: small struct, bit-packed").
// A byte per entry rather than packing multiple hints per byte: these
// columns are entropy-coded immediately afterward, and a byte whose top 6
// bits are always zero compresses to the same few bits a tighter pack
// would have used by hand.
func EncodeTimestampHints(forms []token.TimestampForm, hasMillis []bool) []byte {
	buf := make([]byte, len(forms))
	for i, f := range forms {
		var b byte
		if f == token.FormISOSpace {
			b |= 1
		}
		if hasMillis[i] {
			b |= 2
		}
		buf[i] = b
	}
	return buf
}

// DecodeTimestampHints is the inverse of EncodeTimestampHints.
func DecodeTimestampHints(data []byte, count int) ([]token.TimestampForm, []bool) {
	forms := make([]token.TimestampForm, count)
	millis := make([]bool, count)
	for i := 0; i < count && i < len(data); i++ {
		forms[i] = token.FormISOT
		if data[i]&1 != 0 {
			forms[i] = token.FormISOSpace
		}
		millis[i] = data[i]&2 != 0
	}
	return forms, millis
}

// EncodeTimeHints packs TimeHasMillis, one byte per time-of-day value, the
// same "hint survives entropy coding as a near-constant byte" reasoning as
// EncodeTimestampHints: distinguishes "10:30:00" from "10:30:00.000", which
// both carry MsFromMidnight % 1000 == 0 and are otherwise indistinguishable.
func EncodeTimeHints(hasMillis []bool) []byte {
	buf := make([]byte, len(hasMillis))
	for i, v := range hasMillis {
		if v {
			buf[i] = 1
		}
	}
	return buf
}

// DecodeTimeHints is the inverse of EncodeTimeHints.
func DecodeTimeHints(data []byte, count int) []bool {
	out := make([]bool, count)
	for i := 0; i < count && i < len(data); i++ {
		out[i] = data[i] != 0
	}
	return out
}

// ipv6NoElision is the on-disk sentinel for token.Token.IPv6ElisionIndex ==
// -1 (no "::" elision present).
const ipv6NoElision = 0xF

// EncodeIPv6Hints packs HexCase (bits 0-1), elision index (bits 2-5, 0xF
// meaning none) and has-embedded-v4 (bit 6) one byte per address.
func EncodeIPv6Hints(hexCases []token.HexCase, elisions []int, hasV4 []bool) []byte {
	buf := make([]byte, len(hexCases))
	for i, hc := range hexCases {
		elision := byte(ipv6NoElision)
		if elisions[i] >= 0 {
			elision = byte(elisions[i])
		}
		b := byte(hc) | elision<<2
		if hasV4[i] {
			b |= 1 << 6
		}
		buf[i] = b
	}
	return buf
}

// DecodeIPv6Hints is the inverse of EncodeIPv6Hints.
func DecodeIPv6Hints(data []byte, count int) ([]token.HexCase, []int, []bool) {
	hexCases := make([]token.HexCase, count)
	elisions := make([]int, count)
	hasV4 := make([]bool, count)
	for i := 0; i < count && i < len(data); i++ {
		b := data[i]
		hexCases[i] = token.HexCase(b & 0x3)
		elision := int((b >> 2) & 0xF)
		if elision == ipv6NoElision {
			elision = -1
		}
		elisions[i] = elision
		hasV4[i] = b&(1<<6) != 0
	}
	return hexCases, elisions, hasV4
}

// EncodeUUIDHints packs HexCase, one byte per UUID.
func EncodeUUIDHints(hexCases []token.HexCase) []byte {
	buf := make([]byte, len(hexCases))
	for i, hc := range hexCases {
		buf[i] = byte(hc)
	}
	return buf
}

// DecodeUUIDHints is the inverse of EncodeUUIDHints.
func DecodeUUIDHints(data []byte, count int) []token.HexCase {
	out := make([]token.HexCase, count)
	for i := 0; i < count && i < len(data); i++ {
		out[i] = token.HexCase(data[i])
	}
	return out
}
