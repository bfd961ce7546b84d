package column

import "encoding/binary"

// EncodeU32Array packs vals as a little-endian uint32 array (spec §4.3's
// ipv4 encoding). No delta coding: IP addresses rarely cluster in a way
// delta helps, and random access by index matters more than compression
// ratio here.
func EncodeU32Array(vals []uint32) []byte {
	buf := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return buf
}

// DecodeU32Array is the inverse of EncodeU32Array.
func DecodeU32Array(data []byte, count int) []uint32 {
	out := make([]uint32, count)
	for i := 0; i < count && (i+1)*4 <= len(data); i++ {
		out[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return out
}

// EncodeU128Array packs a slice of 16-byte values (ipv6 addresses, UUIDs)
// back to back, each already in the big-endian-within-group, most-
// significant-byte-first layout token.Token.Bytes16 uses.
func EncodeU128Array(vals [][16]byte) []byte {
	buf := make([]byte, len(vals)*16)
	for i, v := range vals {
		copy(buf[i*16:], v[:])
	}
	return buf
}

// DecodeU128Array is the inverse of EncodeU128Array.
func DecodeU128Array(data []byte, count int) [][16]byte {
	out := make([][16]byte, count)
	for i := 0; i < count && (i+1)*16 <= len(data); i++ {
		copy(out[i][:], data[i*16:(i+1)*16])
	}
	return out
}
