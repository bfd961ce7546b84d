package container

import (
	"github.com/sakamoro/alicetxt/errs"
	"github.com/sakamoro/alicetxt/format"
)

// Entry flags (spec §4.4).
const (
	EntryFlagRecordAligned uint16 = 1 << 0
	EntryFlagHasPresence   uint16 = 1 << 1
	EntryFlagHasHints      uint16 = 1 << 2
)

// ColumnEntrySize is the fixed, record-aligned size of one directory entry.
// Named fields below total 44 bytes; the remaining 4 are reserved padding
// so the directory can grow a field later without shifting every offset.
const ColumnEntrySize = 48

// ColumnEntry is one fixed-size record in the front-loaded column
// directory. file_offset is absolute from the start of the container
// rather than delta-encoded against the previous entry, unlike
// section.NumericIndexEntry's uint16 deltas — spec §4.4 asks for an
// absolute u64 so a reader can seek directly to any column without
// summing the entries before it.
type ColumnEntry struct {
	ColumnID        format.ColumnID
	Encoding        format.Encoding
	ElementType     uint8
	Flags           uint16
	RowCount        uint64
	UncompressedLen uint64
	CompressedLen   uint64
	FileOffset      uint64
	Checksum        uint32
}

func (e ColumnEntry) RecordAligned() bool { return e.Flags&EntryFlagRecordAligned != 0 }
func (e ColumnEntry) HasPresence() bool   { return e.Flags&EntryFlagHasPresence != 0 }
func (e ColumnEntry) HasHints() bool      { return e.Flags&EntryFlagHasHints != 0 }

// Bytes serializes the entry to ColumnEntrySize bytes.
func (e ColumnEntry) Bytes() []byte {
	b := make([]byte, ColumnEntrySize)
	e.WriteToSlice(b, 0)
	return b
}

// WriteToSlice writes the entry into data starting at offset, returning the
// offset immediately past the written record.
func (e ColumnEntry) WriteToSlice(data []byte, offset int) int {
	b := data[offset : offset+ColumnEntrySize]
	engine.PutUint32(b[0:4], uint32(e.ColumnID))
	b[4] = byte(e.Encoding)
	b[5] = e.ElementType
	engine.PutUint16(b[6:8], e.Flags)
	engine.PutUint64(b[8:16], e.RowCount)
	engine.PutUint64(b[16:24], e.UncompressedLen)
	engine.PutUint64(b[24:32], e.CompressedLen)
	engine.PutUint64(b[32:40], e.FileOffset)
	engine.PutUint32(b[40:44], e.Checksum)
	// b[44:48] reserved, left zero.
	return offset + ColumnEntrySize
}

// ParseColumnEntry parses one fixed-size directory record from data at
// offset.
func ParseColumnEntry(data []byte, offset int) (ColumnEntry, error) {
	if offset < 0 || offset+ColumnEntrySize > len(data) {
		return ColumnEntry{}, errs.ErrInvalidDirectoryEntry
	}
	b := data[offset : offset+ColumnEntrySize]
	return ColumnEntry{
		ColumnID:        format.ColumnID(engine.Uint32(b[0:4])),
		Encoding:        format.Encoding(b[4]),
		ElementType:     b[5],
		Flags:           engine.Uint16(b[6:8]),
		RowCount:        engine.Uint64(b[8:16]),
		UncompressedLen: engine.Uint64(b[16:24]),
		CompressedLen:   engine.Uint64(b[24:32]),
		FileOffset:      engine.Uint64(b[32:40]),
		Checksum:        engine.Uint32(b[40:44]),
	}, nil
}
