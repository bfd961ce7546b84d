package column

import "encoding/binary"

// zigzag maps a signed value to an unsigned one so small negative deltas
// encode as few bytes as small positive ones (spec §4.3's "zigzag mapping
// keeps negative deltas short"), adapted from encoding.TimestampDeltaEncoder's
// inline zigzag arithmetic.
func zigzag(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63) //nolint:gosec
}

func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -(int64(u & 1)) //nolint:gosec
}

// putVarint appends v zigzag+varint encoded to buf, returning the grown slice.
func putVarint(buf []byte, v int64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], zigzag(v))
	return append(buf, tmp[:n]...)
}

func putUvarint(buf []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	return append(buf, tmp[:n]...)
}

// readVarint decodes one zigzag+varint value starting at offset, returning
// the value, the new offset, and whether decoding succeeded.
func readVarint(data []byte, offset int) (int64, int, bool) {
	u, n := binary.Uvarint(data[offset:])
	if n <= 0 {
		return 0, offset, false
	}
	return unzigzag(u), offset + n, true
}

func readUvarint(data []byte, offset int) (uint64, int, bool) {
	u, n := binary.Uvarint(data[offset:])
	if n <= 0 {
		return 0, offset, false
	}
	return u, offset + n, true
}
