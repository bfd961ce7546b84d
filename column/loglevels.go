package column

// EncodeLogLevels packs dictionary indices (into token.LogLevelAlphabet, a
// fixed 8-entry alphabet) as a raw byte array — spec §4.3's Dict8 encoding.
// The alphabet itself never travels on disk since it is a format constant.
func EncodeLogLevels(indices []uint8) []byte {
	return append([]byte(nil), indices...)
}

// DecodeLogLevels is the inverse of EncodeLogLevels.
func DecodeLogLevels(data []byte, count int) []uint8 {
	out := make([]uint8, count)
	n := count
	if len(data) < n {
		n = len(data)
	}
	copy(out, data[:n])
	return out
}
