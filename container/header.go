// Package container implements the v3 on-disk format: a front-loaded
// column directory followed by concatenated compressed blobs (spec §4.4),
// plus the v2 monolithic fallback codec (spec §4.6). Grounded on
// section.NumericHeader/NumericIndexEntry's fixed-size-struct + Bytes/Parse
// round trip, generalized from mebo's per-metric index to alicetxt's
// per-column directory.
package container

import (
	"github.com/sakamoro/alicetxt/endian"
	"github.com/sakamoro/alicetxt/errs"
	"github.com/sakamoro/alicetxt/format"
)

// Magic identifies an alicetxt container file (spec §4.4).
var Magic = [8]byte{'A', 'L', 'I', 'C', 'E', 'T', 'X', 'T'}

const (
	Version3 uint16 = 3

	// Flags bits 0-2 are spec §4.4's named bits. The spec's byte layout has
	// no separate field recording which entropy coder wrote the blobs, so
	// bits 3-5 carry format.CompressionType here — the only place left to
	// put it without growing the fixed header (pinned Open Question
	// decision, see DESIGN.md).
	FlagV3          uint16 = 1 << 0
	FlagHasSkeleton uint16 = 1 << 1
	FlagHasPresence uint16 = 1 << 2

	flagCompressionShift = 3
	flagCompressionMask  = 0x7 << flagCompressionShift
)

// WithCompression returns flags with its compression-type bits set to ct.
func WithCompression(flags uint16, ct format.CompressionType) uint16 {
	return (flags &^ flagCompressionMask) | (uint16(ct) << flagCompressionShift)
}

// CompressionType extracts the entropy coder the container was written
// with from flags.
func CompressionType(flags uint16) format.CompressionType {
	return format.CompressionType((flags & flagCompressionMask) >> flagCompressionShift)
}

// HeaderSize is the fixed byte length of the leading header, before the
// column directory: magic(8) + version(2) + flags(2) + row_count(8) +
// column_count(4).
const HeaderSize = 8 + 2 + 2 + 8 + 4

// Header is the fixed leading section of a v3 container.
type Header struct {
	Version     uint16
	Flags       uint16
	RowCount    uint64
	ColumnCount uint32
}

var engine = endian.GetLittleEndianEngine()

// Bytes serializes the header (magic + fixed fields) to HeaderSize bytes.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	copy(b[0:8], Magic[:])
	engine.PutUint16(b[8:10], h.Version)
	engine.PutUint16(b[10:12], h.Flags)
	engine.PutUint64(b[12:20], h.RowCount)
	engine.PutUint32(b[20:24], h.ColumnCount)
	return b
}

// ParseHeader parses the fixed leading section from data, validating the
// magic and version.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}
	if string(data[0:8]) != string(Magic[:]) {
		return Header{}, errs.ErrMagicMismatch
	}

	h := Header{
		Version:     engine.Uint16(data[8:10]),
		Flags:       engine.Uint16(data[10:12]),
		RowCount:    engine.Uint64(data[12:20]),
		ColumnCount: engine.Uint32(data[20:24]),
	}
	if h.Version != Version3 {
		return Header{}, errs.ErrUnsupportedVersion
	}
	return h, nil
}
