package container

import (
	"hash/crc32"

	"github.com/sakamoro/alicetxt/compress"
	"github.com/sakamoro/alicetxt/errs"
	"github.com/sakamoro/alicetxt/format"
)

// Version2 is the monolithic fallback format (spec §4.6): skeleton and all
// columns concatenated into one blob and entropy-coded together, trading
// column selectivity for a simpler decoder. FlagV3 is clear so Open/Decode
// can tell the two versions apart from the version field alone.
const Version2 uint16 = 2

// WriteV2 serializes input the same way Write does, but concatenates every
// column payload (prefixed with its directory metadata) and the skeleton
// into a single compressed blob instead of independently addressable ones.
func WriteV2(input []byte, level format.Level) ([]byte, error) {
	_, skeletonPayload, payloads, rowCount := buildPayloads(input)

	codec, err := compress.CodecForLevel(level)
	if err != nil {
		return nil, err
	}

	all := append(payloads, skeletonPayload)
	blob := serializeMonolithic(all)
	compressed, err := codec.Compress(blob)
	if err != nil {
		return nil, err
	}

	flags := WithCompression(0, compress.CompressionForLevel(level)) // FlagV3 clear
	hdr := Header{
		Version:     Version2,
		Flags:       flags,
		RowCount:    uint64(rowCount),
		ColumnCount: uint32(len(payloads)),
	}

	total := HeaderSize + len(compressed) + 4
	out := make([]byte, total)
	copy(out[0:HeaderSize], hdr.Bytes())
	copy(out[HeaderSize:HeaderSize+len(compressed)], compressed)

	footerOffset := total - 4
	crc := crc32.ChecksumIEEE(out[:footerOffset])
	engine.PutUint32(out[footerOffset:total], crc)
	return out, nil
}

// serializeMonolithic frames each payload as (ColumnEntry bytes with
// FileOffset/CompressedLen left zero, then its raw bytes length-prefixed)
// so ReadV2 can recover per-column boundaries after one shared
// decompression pass, without needing a separate front-loaded directory.
func serializeMonolithic(payloads []columnPayload) []byte {
	var buf []byte
	for _, p := range payloads {
		entry := ColumnEntry{
			ColumnID:        p.id,
			Encoding:        p.encoding,
			ElementType:     p.elementType,
			Flags:           p.flags,
			RowCount:        p.rowCount,
			UncompressedLen: p.uncompressedLen,
			Checksum:        p.checksum,
		}
		buf = append(buf, entry.Bytes()...)
		buf = append(buf, p.uncompressed...)
	}
	return buf
}

// ReadV2 decompresses and splits a monolithic blob back into its column
// payloads (directory entries plus raw bytes), in writer order, with the
// skeleton entry last.
func ReadV2(data []byte) ([]ColumnEntry, [][]byte, error) {
	hdr, err := ParseHeader2(data)
	if err != nil {
		return nil, nil, err
	}
	if err := verifyFooter(data); err != nil {
		return nil, nil, err
	}

	codec, err := compress.GetCodec(CompressionType(hdr.Flags))
	if err != nil {
		return nil, nil, err
	}

	footerOffset := len(data) - 4
	blob, err := codec.Decompress(data[HeaderSize:footerOffset])
	if err != nil {
		return nil, nil, errs.ErrColumnCorrupt
	}

	var entries []ColumnEntry
	var raws [][]byte
	offset := 0
	// Column count plus one synthetic skeleton entry.
	for i := 0; i <= int(hdr.ColumnCount); i++ {
		if offset+ColumnEntrySize > len(blob) {
			return nil, nil, errs.ErrColumnCorrupt
		}
		entry, err := ParseColumnEntry(blob, offset)
		if err != nil {
			return nil, nil, err
		}
		offset += ColumnEntrySize
		end := offset + int(entry.UncompressedLen)
		if end > len(blob) {
			return nil, nil, errs.ErrColumnCorrupt
		}
		raw := blob[offset:end]
		if crc32.ChecksumIEEE(raw) != entry.Checksum {
			return nil, nil, errs.ErrColumnCorrupt
		}
		entries = append(entries, entry)
		raws = append(raws, raw)
		offset = end
	}

	return entries, raws, nil
}

// ParseHeader2 parses the fixed leading header without enforcing Version3,
// for callers that need to dispatch on version first (spec §4.6).
func ParseHeader2(data []byte) (Header, error) {
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
	if h.Version != Version2 && h.Version != Version3 {
		return Header{}, errs.ErrUnsupportedVersion
	}
	return h, nil
}
