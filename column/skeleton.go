package column

import (
	"github.com/sakamoro/alicetxt/format"
	"github.com/sakamoro/alicetxt/token"
)

// Skeleton segment tags.
const (
	segLiteral     uint8 = 0
	segPlaceholder uint8 = 1
)

// EncodeSkeleton serializes a SkeletonStream as a flat tag stream: each
// segment is a tag byte followed by either a length-prefixed literal run
// or a (column_id, index) placeholder pair, both varint-coded. Literal
// runs dominate by byte count, so this is the one column whose payload is
// still mostly raw text — the entropy coder (not this layer) does the
// actual byte-level compression (spec §4.2).
func EncodeSkeleton(skel *token.SkeletonStream) []byte {
	var buf []byte
	for _, seg := range skel.Segments {
		if seg.Placeholder == nil {
			buf = append(buf, segLiteral)
			buf = putUvarint(buf, uint64(len(seg.Literal)))
			buf = append(buf, seg.Literal...)
			continue
		}
		buf = append(buf, segPlaceholder)
		buf = putUvarint(buf, uint64(seg.Placeholder.Column))
		buf = putUvarint(buf, uint64(seg.Placeholder.Index))
	}
	return buf
}

// DecodeSkeleton is the inverse of EncodeSkeleton.
func DecodeSkeleton(data []byte) *token.SkeletonStream {
	skel := &token.SkeletonStream{}
	offset := 0
	for offset < len(data) {
		tag := data[offset]
		offset++
		switch tag {
		case segLiteral:
			length, next, ok := readUvarint(data, offset)
			if !ok {
				return skel
			}
			offset = next
			end := offset + int(length)
			if end > len(data) {
				return skel
			}
			lit := make([]byte, length)
			copy(lit, data[offset:end])
			skel.Segments = append(skel.Segments, token.Segment{Literal: lit})
			offset = end
		case segPlaceholder:
			col, next, ok := readUvarint(data, offset)
			if !ok {
				return skel
			}
			offset = next
			idx, next, ok := readUvarint(data, offset)
			if !ok {
				return skel
			}
			offset = next
			ph := token.Placeholder{Column: format.ColumnID(col), Index: int(idx)}
			skel.Segments = append(skel.Segments, token.Segment{Placeholder: &ph})
		default:
			return skel
		}
	}
	return skel
}
