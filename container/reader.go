package container

import (
	"hash/crc32"

	"github.com/sakamoro/alicetxt/column"
	"github.com/sakamoro/alicetxt/compress"
	"github.com/sakamoro/alicetxt/errs"
	"github.com/sakamoro/alicetxt/format"
	"github.com/sakamoro/alicetxt/token"
)

// Reader parses a v3 container's header and directory without touching any
// column blob, so opening a file costs O(column_count) rather than
// O(file_size) (spec §4.4, §6 scenario 4's "column selectivity" property).
type Reader struct {
	Header   Header
	Columns  []ColumnEntry // directory order, excludes the skeleton entry
	Skeleton ColumnEntry
	data     []byte
}

// Open parses data's header, directory and footer CRC, returning a Reader
// ready to decompress individual columns on demand.
func Open(data []byte) (*Reader, error) {
	hdr, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	directoryOffset := HeaderSize
	directorySize := int(hdr.ColumnCount) * ColumnEntrySize
	skeletonEntryOffset := directoryOffset + directorySize
	blobsStart := skeletonEntryOffset + ColumnEntrySize
	if hdr.Flags&FlagHasSkeleton == 0 {
		blobsStart = skeletonEntryOffset
	}
	if len(data) < blobsStart+4 {
		return nil, errs.ErrHeaderCorrupt
	}

	if err := verifyFooter(data); err != nil {
		return nil, err
	}

	entries := make([]ColumnEntry, hdr.ColumnCount)
	for i := range entries {
		e, err := ParseColumnEntry(data, directoryOffset+i*ColumnEntrySize)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	var skel ColumnEntry
	if hdr.Flags&FlagHasSkeleton != 0 {
		skel, err = ParseColumnEntry(data, skeletonEntryOffset)
		if err != nil {
			return nil, err
		}
	}

	return &Reader{Header: hdr, Columns: entries, Skeleton: skel, data: data}, nil
}

func verifyFooter(data []byte) error {
	if len(data) < 4 {
		return errs.ErrHeaderCorrupt
	}
	footerOffset := len(data) - 4
	want := engine.Uint32(data[footerOffset:])
	got := crc32.ChecksumIEEE(data[:footerOffset])
	if want != got {
		return errs.ErrHeaderCorrupt
	}
	return nil
}

// Find returns the directory entry for id, or ok=false if the column is
// absent from this container.
func (r *Reader) Find(id format.ColumnID) (ColumnEntry, bool) {
	for _, e := range r.Columns {
		if e.ColumnID == id {
			return e, true
		}
	}
	return ColumnEntry{}, false
}

// Decompress returns entry's decompressed, checksum-verified payload bytes.
func (r *Reader) Decompress(codec compress.Codec, entry ColumnEntry) ([]byte, error) {
	if uint64(len(r.data)) < entry.FileOffset+entry.CompressedLen {
		return nil, errs.ErrColumnCorrupt
	}
	compressed := r.data[entry.FileOffset : entry.FileOffset+entry.CompressedLen]
	raw, err := codec.Decompress(compressed)
	if err != nil {
		return nil, errs.ErrColumnCorrupt
	}
	if uint64(len(raw)) != entry.UncompressedLen {
		return nil, errs.ErrColumnCorrupt
	}
	if crc32.ChecksumIEEE(raw) != entry.Checksum {
		return nil, errs.ErrColumnCorrupt
	}
	return raw, nil
}

// DecodeSkeleton decompresses and decodes the skeleton stream.
func (r *Reader) DecodeSkeleton(codec compress.Codec) (*token.SkeletonStream, error) {
	if r.Header.Flags&FlagHasSkeleton == 0 {
		return &token.SkeletonStream{}, nil
	}
	raw, err := r.Decompress(codec, r.Skeleton)
	if err != nil {
		return nil, err
	}
	return column.DecodeSkeleton(raw), nil
}
