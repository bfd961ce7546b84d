package container

import (
	"hash/crc32"

	"github.com/sakamoro/alicetxt/column"
	"github.com/sakamoro/alicetxt/compress"
	"github.com/sakamoro/alicetxt/format"
	"github.com/sakamoro/alicetxt/token"
)

// columnPayload pairs a directory entry (minus offset/compressed length,
// filled in once the layout is known) with its uncompressed bytes.
type columnPayload struct {
	id              format.ColumnID
	encoding        format.Encoding
	elementType     uint8
	flags           uint16
	rowCount        uint64
	uncompressed    []byte
	uncompressedLen uint64
	checksum        uint32
}

func newPayload(id format.ColumnID, enc format.Encoding, elementType uint8, flags uint16, rowCount int, data []byte) columnPayload {
	return columnPayload{
		id:              id,
		encoding:        enc,
		elementType:     elementType,
		flags:           flags,
		rowCount:        uint64(rowCount),
		uncompressed:    data,
		uncompressedLen: uint64(len(data)),
		checksum:        crc32.ChecksumIEEE(data),
	}
}

// Write assembles input into a v3 container at the given compression
// level: recognize and skeletonize, encode every populated column
// independently, compress each blob with the level's codec, and lay out
// header + directory + skeleton entry + blobs + CRC32 footer (spec §4.4).
func Write(input []byte, level format.Level) ([]byte, error) {
	_, skeletonPayload, payloads, rowCount := buildPayloads(input)

	codec, err := compress.CodecForLevel(level)
	if err != nil {
		return nil, err
	}

	flags := WithCompression(FlagV3|FlagHasSkeleton, compress.CompressionForLevel(level))
	return assemble(Header{
		Version:     Version3,
		Flags:       flags,
		RowCount:    uint64(rowCount),
		ColumnCount: uint32(len(payloads)),
	}, payloads, skeletonPayload, codec)
}

// buildPayloads runs the recognizer/skeletonizer over input and encodes
// every populated column independently, without compressing anything yet.
// Shared by the v3 writer and the v2 monolithic codec, which differ only in
// how these payloads are laid out and compressed afterward.
func buildPayloads(input []byte) (*token.SkeletonStream, columnPayload, []columnPayload, int) {
	skel, cols, rowCount := token.Build(input)

	var payloads []columnPayload

	if len(cols.Timestamps) > 0 {
		data := column.EncodeTimestampsBundle(rowCount, cols.TimestampPresent, cols.Timestamps)
		payloads = append(payloads, newPayload(format.ColumnTimestamps, format.EncodingDeltaI64, 0,
			EntryFlagRecordAligned|EntryFlagHasPresence|EntryFlagHasHints, len(cols.Timestamps), data))

		tzSpecs := make([]token.TzSpec, len(cols.Timestamps))
		for i, t := range cols.Timestamps {
			tzSpecs[i] = t.Tz
		}
		tzData := column.EncodeTzSpecs(tzSpecs)
		payloads = append(payloads, newPayload(format.ColumnTzSpecs, format.EncodingTzRunLength, 0,
			EntryFlagRecordAligned, len(tzSpecs), tzData))
	}

	if len(cols.Dates) > 0 {
		vals := make([]uint32, len(cols.Dates))
		for i, t := range cols.Dates {
			vals[i] = t.EpochDays
		}
		data := column.EncodeDeltaU32(vals)
		payloads = append(payloads, newPayload(format.ColumnDates, format.EncodingDeltaU32, 0, 0, len(vals), data))
	}

	if len(cols.Times) > 0 {
		data := column.EncodeTimesBundle(cols.Times)
		payloads = append(payloads, newPayload(format.ColumnTimes, format.EncodingDeltaU32, 0,
			EntryFlagHasHints, len(cols.Times), data))
	}

	if len(cols.IPv4) > 0 {
		vals := make([]uint32, len(cols.IPv4))
		for i, t := range cols.IPv4 {
			vals[i] = t.IPv4
		}
		data := column.EncodeU32Array(vals)
		payloads = append(payloads, newPayload(format.ColumnIPv4, format.EncodingRawU32Array, 0, 0, len(vals), data))
	}

	if len(cols.IPv6) > 0 {
		data := column.EncodeIPv6Bundle(cols.IPv6)
		payloads = append(payloads, newPayload(format.ColumnIPv6, format.EncodingRawU128Array, 0,
			EntryFlagHasHints, len(cols.IPv6), data))
	}

	if len(cols.UUIDs) > 0 {
		data := column.EncodeUUIDBundle(cols.UUIDs)
		payloads = append(payloads, newPayload(format.ColumnUUIDs, format.EncodingRawU128Array, 0,
			EntryFlagHasHints, len(cols.UUIDs), data))
	}

	if len(cols.LogLevels) > 0 {
		vals := make([]uint8, len(cols.LogLevels))
		for i, t := range cols.LogLevels {
			vals[i] = t.LevelIndex
		}
		data := column.EncodeLogLevels(vals)
		payloads = append(payloads, newPayload(format.ColumnLogLevels, format.EncodingDict8, 0, 0, len(vals), data))
	}

	if len(cols.Numbers) > 0 {
		vals := make([]float64, len(cols.Numbers))
		reprs := make([]string, len(cols.Numbers))
		for i, t := range cols.Numbers {
			vals[i] = t.NumberValue
			reprs[i] = t.Repr
		}
		data := column.EncodeNumberValues(vals)
		payloads = append(payloads, newPayload(format.ColumnNumbers, format.EncodingRawF64Array, 0, 0, len(vals), data))
		reprData := column.EncodeTextColumn(reprs)
		payloads = append(payloads, newPayload(format.ColumnNumberReprs, format.EncodingUtf8Run, 0, 0, len(reprs), reprData))
	}

	if len(cols.Emails) > 0 {
		payloads = append(payloads, encodeTextKind(format.ColumnEmails, cols.Emails))
	}
	if len(cols.URLs) > 0 {
		payloads = append(payloads, encodeTextKind(format.ColumnURLs, cols.URLs))
	}
	if len(cols.Paths) > 0 {
		payloads = append(payloads, encodeTextKind(format.ColumnPaths, cols.Paths))
	}

	skeletonData := column.EncodeSkeleton(skel)
	skeletonPayload := newPayload(0, format.EncodingUtf8Run, 0, 0, len(skel.Segments), skeletonData)

	return skel, skeletonPayload, payloads, rowCount
}

func encodeTextKind(id format.ColumnID, toks []token.Token) columnPayload {
	vals := make([]string, len(toks))
	for i, t := range toks {
		vals[i] = t.Text
	}
	data := column.EncodeTextColumn(vals)
	return newPayload(id, format.EncodingUtf8Run, 0, 0, len(vals), data)
}

// assemble lays out header, directory, skeleton entry, compressed blobs and
// the trailing CRC32 footer, given the already-encoded (but not yet
// compressed) column payloads.
func assemble(hdr Header, payloads []columnPayload, skeleton columnPayload, codec compress.Codec) ([]byte, error) {
	directoryOffset := HeaderSize
	directorySize := len(payloads) * ColumnEntrySize
	skeletonEntryOffset := directoryOffset + directorySize
	skeletonEntrySize := ColumnEntrySize
	blobsStart := skeletonEntryOffset + skeletonEntrySize

	entries := make([]ColumnEntry, len(payloads))
	compressedBlobs := make([][]byte, len(payloads))
	offset := uint64(blobsStart)
	for i, p := range payloads {
		compressed, err := codec.Compress(p.uncompressed)
		if err != nil {
			return nil, err
		}
		compressedBlobs[i] = compressed
		entries[i] = ColumnEntry{
			ColumnID:        p.id,
			Encoding:        p.encoding,
			ElementType:     p.elementType,
			Flags:           p.flags,
			RowCount:        p.rowCount,
			UncompressedLen: p.uncompressedLen,
			CompressedLen:   uint64(len(compressed)),
			FileOffset:      offset,
			Checksum:        p.checksum,
		}
		offset += uint64(len(compressed))
	}

	compressedSkeleton, err := codec.Compress(skeleton.uncompressed)
	if err != nil {
		return nil, err
	}
	skeletonEntry := ColumnEntry{
		ColumnID:        skeleton.id,
		Encoding:        skeleton.encoding,
		ElementType:     skeleton.elementType,
		Flags:           skeleton.flags,
		RowCount:        skeleton.rowCount,
		UncompressedLen: skeleton.uncompressedLen,
		CompressedLen:   uint64(len(compressedSkeleton)),
		FileOffset:      offset,
		Checksum:        skeleton.checksum,
	}
	offset += uint64(len(compressedSkeleton))

	total := int(offset) + 4 // trailing CRC32
	out := make([]byte, total)
	copy(out[0:HeaderSize], hdr.Bytes())

	pos := directoryOffset
	for _, e := range entries {
		pos = e.WriteToSlice(out, pos)
	}
	skeletonEntry.WriteToSlice(out, skeletonEntryOffset)

	for i, e := range entries {
		copy(out[e.FileOffset:e.FileOffset+e.CompressedLen], compressedBlobs[i])
	}
	copy(out[skeletonEntry.FileOffset:skeletonEntry.FileOffset+skeletonEntry.CompressedLen], compressedSkeleton)

	footerOffset := total - 4
	crc := crc32.ChecksumIEEE(out[:footerOffset])
	engine.PutUint32(out[footerOffset:total], crc)

	return out, nil
}
