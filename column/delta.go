package column

// EncodeDeltaI64 encodes vals as a base value followed by zigzag+varint
// deltas (spec §4.3: "the first value is stored verbatim as the base,
// subsequent values store v[i] - v[i-1]"). Grounded on
// encoding.TimestampDeltaEncoder's Write/WriteSlice, reduced from its
// delta-of-delta scheme to the single-level delta the container format
// actually specifies for timestamps, dates and times.
func EncodeDeltaI64(vals []int64) []byte {
	if len(vals) == 0 {
		return nil
	}
	buf := make([]byte, 0, 2+len(vals)*2)
	buf = putVarint(buf, vals[0])
	prev := vals[0]
	for _, v := range vals[1:] {
		buf = putVarint(buf, v-prev)
		prev = v
	}
	return buf
}

// DecodeDeltaI64 is the inverse of EncodeDeltaI64, reconstructing exactly
// count values.
func DecodeDeltaI64(data []byte, count int) []int64 {
	if count == 0 {
		return nil
	}
	out := make([]int64, count)
	offset := 0
	base, next, ok := readVarint(data, offset)
	if !ok {
		return out
	}
	offset = next
	out[0] = base
	prev := base
	for i := 1; i < count; i++ {
		delta, next, ok := readVarint(data, offset)
		if !ok {
			return out
		}
		offset = next
		prev += delta
		out[i] = prev
	}
	return out
}

// EncodeDeltaU32 is EncodeDeltaI64 specialized to the u32 domain used by
// dates (epoch_days) and times (ms_from_midnight).
func EncodeDeltaU32(vals []uint32) []byte {
	if len(vals) == 0 {
		return nil
	}
	i64 := make([]int64, len(vals))
	for i, v := range vals {
		i64[i] = int64(v)
	}
	return EncodeDeltaI64(i64)
}

// DecodeDeltaU32 is the inverse of EncodeDeltaU32.
func DecodeDeltaU32(data []byte, count int) []uint32 {
	i64 := DecodeDeltaI64(data, count)
	out := make([]uint32, len(i64))
	for i, v := range i64 {
		out[i] = uint32(v) //nolint:gosec
	}
	return out
}
