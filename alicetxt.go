// Package alicetxt provides compression and selective querying for
// structured textual log data.
//
// ALICE-Text recognizes timestamps, dates, times, IPv4/IPv6 addresses,
// UUIDs, log levels, numbers, emails, URLs and filesystem paths inside raw
// log lines, strips them into typed columns, and independently entropy-codes
// each column. Queries that only touch a handful of columns decompress only
// those columns instead of the whole file.
//
// # Core Features
//
//   - Byte-exact round trip: Decompress(Compress(x)) == x, including
//     original timestamp separators, zero-padding and timezone offsets.
//   - Directory-indexed v3 container: per-column compressed blobs, read
//     selectively by a query Engine.
//   - v2 monolithic fallback: single entropy-coded blob, used when v3's
//     per-column overhead isn't worth it (few rows, many columns).
//   - Three speed/ratio tiers (fast/balanced/best) backed by LZ4, S2 and
//     Zstd respectively.
//
// # Basic usage
//
//	data, _ := os.ReadFile("app.log")
//	out, err := alicetxt.Compress(data, format.LevelBalanced)
//
//	roundTripped, err := alicetxt.Decompress(out)
//
//	engine, err := alicetxt.Open(out)
//	defer engine.Close()
//	rows, err := engine.Filter(context.Background(), "log_levels", query.Eq, "ERROR")
//
// # Package structure
//
// This package is a thin convenience wrapper around container (the v3/v2
// binary format) and query (the selective-decompression engine). For
// fine-grained control — custom compression levels per call, direct access
// to the column directory — use those packages directly.
package alicetxt

import (
	"github.com/sakamoro/alicetxt/container"
	"github.com/sakamoro/alicetxt/format"
	"github.com/sakamoro/alicetxt/query"
)

// Compress encodes input (raw log bytes, newline-delimited records) into a
// v3 container at the given compression level.
//
// Use Compress for files the query engine will later read selectively.
// Unreferenced columns in a v3 container are never decompressed.
func Compress(input []byte, level format.Level) ([]byte, error) {
	return container.Write(input, level)
}

// CompressMonolithic encodes input into a v2 container: skeleton and every
// column concatenated into a single entropy-coded blob.
//
// Prefer this over Compress when the file will only ever be fully
// decompressed (archival, transport) rather than selectively queried — it
// avoids v3's per-column directory and padding overhead.
func CompressMonolithic(input []byte, level format.Level) ([]byte, error) {
	return container.WriteV2(input, level)
}

// Decompress reconstructs the original input bytes from a v2 or v3
// container, byte-for-byte.
func Decompress(data []byte) ([]byte, error) {
	return container.Decode(data)
}

// Open parses data's header and column directory and returns a query Engine
// ready for Stats/Columns/Select/Filter/Query. O(1) in file size — no
// column is decompressed until a query touches it.
func Open(data []byte) (*query.Engine, error) {
	return query.Open(data)
}
