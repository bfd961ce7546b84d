package column

import "github.com/sakamoro/alicetxt/token"

// EncodeTzSpecs run-length encodes the zone-suffix sequence: consecutive
// timestamps sharing the same TzKind and (when TzOffset) the same offset
// collapse into one run (spec §4.3's "run-length of tag + packed offset
// minutes"). Log files are usually single-timezone for long stretches, so
// this typically collapses to one or two runs regardless of row count.
//
// Layout: uvarint run_count, run_count × (uvarint run_length, u8 tag,
// i16 offset_minutes present only when tag == TzOffset).
func EncodeTzSpecs(specs []token.TzSpec) []byte {
	if len(specs) == 0 {
		return putUvarint(nil, 0)
	}

	type run struct {
		spec   token.TzSpec
		length uint64
	}
	var runs []run
	for _, s := range specs {
		if len(runs) > 0 && runs[len(runs)-1].spec == s {
			runs[len(runs)-1].length++
			continue
		}
		runs = append(runs, run{spec: s, length: 1})
	}

	buf := putUvarint(nil, uint64(len(runs)))
	for _, r := range runs {
		buf = putUvarint(buf, r.length)
		buf = append(buf, byte(r.spec.Kind))
		if r.spec.Kind == token.TzOffset {
			buf = append(buf, byte(uint16(r.spec.OffsetMinutes)), byte(uint16(r.spec.OffsetMinutes)>>8))
		}
	}
	return buf
}

// DecodeTzSpecs is the inverse of EncodeTzSpecs, expanding runs back to
// exactly count entries.
func DecodeTzSpecs(data []byte, count int) []token.TzSpec {
	out := make([]token.TzSpec, 0, count)
	offset := 0
	runCount, next, ok := readUvarint(data, offset)
	if !ok {
		return out
	}
	offset = next

	for r := uint64(0); r < runCount && len(out) < count; r++ {
		length, next, ok := readUvarint(data, offset)
		if !ok {
			return out
		}
		offset = next
		if offset >= len(data) {
			return out
		}
		kind := token.TzKind(data[offset])
		offset++

		var spec token.TzSpec
		spec.Kind = kind
		if kind == token.TzOffset {
			if offset+2 > len(data) {
				return out
			}
			spec.OffsetMinutes = int16(uint16(data[offset]) | uint16(data[offset+1])<<8) //nolint:gosec
			offset += 2
		}
		for i := uint64(0); i < length; i++ {
			out = append(out, spec)
		}
	}
	return out
}
