// Package compress provides compression and decompression codecs for alicetxt column payloads.
//
// This package offers multiple compression algorithms optimized for different characteristics
// of columnar log data. Compression is applied at the payload level after encoding, providing
// an additional layer of space savings beyond the encoding strategies in column/.
//
// # Overview
//
// alicetxt applies a two-stage compression strategy:
//
//  1. **Encoding**: Exploits patterns in the data (delta, dictionary, varint — see column/)
//  2. **Compression**: Further reduces encoded data using general-purpose algorithms
//
// The compress package implements the second stage, supporting multiple algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Algorithm Selection Guide
//
// A container is written at one of three levels (format.Level); level.go maps each
// level onto a concrete backend:
//
// | Level    | Backend | Reason                                    |
// |----------|---------|--------------------------------------------|
// | fast     | LZ4     | fastest decompression, moderate ratio       |
// | balanced | S2      | balanced speed and ratio, good default      |
// | best     | Zstd    | best ratio, used for archival/cold storage  |
//
// Every column in a container is compressed independently at the same level; the
// query engine decompresses only the columns a query actually touches.
//
// # Thread Safety
//
// All codec implementations are thread-safe and can be safely shared across goroutines.
//
// # Error Handling
//
// Corrupted compressed data, an invalid compression format, or a checksum
// mismatch (algorithm-dependent) all surface as an error rather than a panic.
// The Zstd codec wraps its decoder error with context; the S2 and LZ4 codecs
// return the underlying library's error unchanged.
package compress
