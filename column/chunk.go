package column

// writeChunk appends payload to buf prefixed with its own uvarint byte
// length, letting a composite column blob hold several independently
// sized sub-parts (values, hints, presence bitmap) in one byte stream.
func writeChunk(buf []byte, payload []byte) []byte {
	buf = putUvarint(buf, uint64(len(payload)))
	return append(buf, payload...)
}

// readChunk reads one writeChunk-framed sub-part starting at offset.
func readChunk(data []byte, offset int) ([]byte, int, bool) {
	length, next, ok := readUvarint(data, offset)
	if !ok {
		return nil, offset, false
	}
	end := next + int(length)
	if end > len(data) {
		return nil, offset, false
	}
	return data[next:end], end, true
}
