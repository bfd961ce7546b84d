// Package format defines the shared enum-like types used across alicetxt's
// token, column, compress, container and query packages: the token kinds the
// recognizer emits, the dense column identifiers the container directory
// uses, the per-column encoding descriptor, and the compression level/backend
// the entropy coder is driven at.
package format

// TokenKind identifies the variant carried by a recognized token. Literal
// runs are not tokens and have no TokenKind; they are raw skeleton bytes.
type TokenKind uint8

const (
	KindTimestamp TokenKind = iota + 1
	KindDate
	KindTime
	KindIPv4
	KindIPv6
	KindUUID
	KindLogLevel
	KindNumber
	KindEmail
	KindURL
	KindPath
)

func (k TokenKind) String() string {
	switch k {
	case KindTimestamp:
		return "Timestamp"
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	case KindIPv4:
		return "IPv4"
	case KindIPv6:
		return "IPv6"
	case KindUUID:
		return "UUID"
	case KindLogLevel:
		return "LogLevel"
	case KindNumber:
		return "Number"
	case KindEmail:
		return "Email"
	case KindURL:
		return "URL"
	case KindPath:
		return "Path"
	default:
		return "Unknown"
	}
}

// ColumnID is the dense enum identifying one of the fixed column kinds a
// container directory entry may describe. Values are stable across format
// versions since they appear on disk.
type ColumnID uint32

const (
	ColumnTimestamps ColumnID = iota + 1
	ColumnTzSpecs
	ColumnDates
	ColumnTimes
	ColumnIPv4
	ColumnIPv6
	ColumnUUIDs
	ColumnLogLevels
	ColumnNumbers
	ColumnNumberReprs
	ColumnEmails
	ColumnURLs
	ColumnPaths
)

func (c ColumnID) String() string {
	switch c {
	case ColumnTimestamps:
		return "timestamps"
	case ColumnTzSpecs:
		return "tz_specs"
	case ColumnDates:
		return "dates"
	case ColumnTimes:
		return "times"
	case ColumnIPv4:
		return "ipv4"
	case ColumnIPv6:
		return "ipv6"
	case ColumnUUIDs:
		return "uuids"
	case ColumnLogLevels:
		return "log_levels"
	case ColumnNumbers:
		return "numbers"
	case ColumnNumberReprs:
		return "number_reprs"
	case ColumnEmails:
		return "emails"
	case ColumnURLs:
		return "urls"
	case ColumnPaths:
		return "paths"
	default:
		return "unknown"
	}
}

// RecordAligned reports whether a column's i-th element corresponds to the
// i-th input record (and thus may carry a presence bitmap), as opposed to
// being addressed solely through skeleton placeholders (spec §3, §9).
func (c ColumnID) RecordAligned() bool {
	return c == ColumnTimestamps || c == ColumnTzSpecs
}

// Encoding identifies the on-disk encoding scheme used for a column's payload
// (spec §4.3).
type Encoding uint8

const (
	EncodingDeltaI64      Encoding = iota + 1 // base + zigzag(delta) varints, i64 domain
	EncodingDeltaU32                          // base + zigzag(delta) varints, u32 domain
	EncodingRawU32Array                       // packed little-endian uint32 array
	EncodingRawU128Array                      // packed 128-bit array, each value most-significant byte first (ipv6/uuid)
	EncodingDict8                             // dictionary-encoded byte array (log levels)
	EncodingRawF64Array                       // packed little-endian float64 array
	EncodingUtf8Run                           // length-prefixed UTF-8 blob, optionally interned
	EncodingTzRunLength                       // run-length tag + packed offset minutes
	EncodingBitPackedHints                    // bit-packed record-aligned hint array
)

func (e Encoding) String() string {
	switch e {
	case EncodingDeltaI64:
		return "DeltaI64"
	case EncodingDeltaU32:
		return "DeltaU32"
	case EncodingRawU32Array:
		return "RawU32Array"
	case EncodingRawU128Array:
		return "RawU128Array"
	case EncodingDict8:
		return "Dict8"
	case EncodingRawF64Array:
		return "RawF64Array"
	case EncodingUtf8Run:
		return "Utf8Run"
	case EncodingTzRunLength:
		return "TzRunLength"
	case EncodingBitPackedHints:
		return "BitPackedHints"
	default:
		return "Unknown"
	}
}

// CompressionType identifies an entropy coder backend. Kept distinct from
// Level: a Level is a user-facing effort knob, a CompressionType is the
// concrete algorithm a level maps to (see compress/level.go).
type CompressionType uint8

const (
	CompressionNone CompressionType = iota + 1
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Level is the compression effort knob exposed to callers (spec §1: the
// entropy coder is a black box driven by level ∈ {fast, balanced, best}).
// alicetxt maps each level onto one of the pack's compression backends
// rather than a speed knob on a single algorithm.
type Level uint8

const (
	LevelFast Level = iota + 1
	LevelBalanced
	LevelBest
)

func (l Level) String() string {
	switch l {
	case LevelFast:
		return "fast"
	case LevelBalanced:
		return "balanced"
	case LevelBest:
		return "best"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level string as accepted by --level and ALICE_TEXT_LEVEL.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "fast":
		return LevelFast, true
	case "balanced":
		return LevelBalanced, true
	case "best":
		return LevelBest, true
	default:
		return 0, false
	}
}
