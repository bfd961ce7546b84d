// Package token implements the pattern recognizer and skeletonizer: the
// left-to-right scanner that partitions an input record into literal byte
// runs and typed tokens (timestamps, dates, times, addresses, identifiers,
// levels, numbers, and common string shapes), and the skeleton builder that
// turns that stream into a lossless reconstruction recipe plus per-type
// value columns.
package token

import "github.com/sakamoro/alicetxt/format"

// TzKind distinguishes the three ways a timestamp's zone suffix can read.
type TzKind uint8

const (
	TzNaive TzKind = iota // no suffix
	TzUTC                 // "Z"
	TzOffset              // "+HH:MM" or "-HH:MM"
)

// TzSpec is the zone suffix actually observed on a timestamp token. It is
// carried verbatim so reconstruction reproduces the exact suffix rather than
// a canonicalized one.
type TzSpec struct {
	Kind          TzKind
	OffsetMinutes int16 // valid only when Kind == TzOffset; may be negative
}

// String renders the suffix form this TzSpec represents.
func (tz TzSpec) String() string {
	switch tz.Kind {
	case TzUTC:
		return "Z"
	case TzOffset:
		sign := byte('+')
		m := tz.OffsetMinutes
		if m < 0 {
			sign = '-'
			m = -m
		}
		return string([]byte{sign}) + pad2(int(m/60)) + ":" + pad2(int(m%60))
	default:
		return ""
	}
}

func pad2(v int) string {
	if v < 10 {
		return "0" + itoa(v)
	}
	return itoa(v)
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	neg := v < 0
	if neg {
		v = -v
	}
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// TimestampForm records which of the two accepted timestamp grammars
// produced a token, so reconstruction emits the matching separator.
type TimestampForm uint8

const (
	FormISOT     TimestampForm = iota // "T" date/time separator
	FormISOSpace                      // " " date/time separator
)

// HexCase records the letter case of a hex-digit token (UUID, IPv6 literal
// hex groups) so reconstruction can reproduce it exactly.
type HexCase uint8

const (
	CaseLower HexCase = iota
	CaseUpper
	CaseMixed // verbatim text retained in Token.Text
)

// Token is a single recognized span: its Kind selects which of the payload
// fields below are meaningful. Start/End are byte offsets into the record
// that produced it.
type Token struct {
	Kind format.TokenKind
	Start int
	End   int

	// Timestamp
	EpochMs       int64
	Tz            TzSpec
	TimestampForm TimestampForm
	HasMillis     bool

	// Date
	EpochDays uint32

	// Time
	MsFromMidnight uint32
	TimeHasMillis  bool // distinguishes "10:30:00" from "10:30:00.000"

	// IPv4
	IPv4 uint32

	// IPv6 / UUID: normalized 128-bit value, most-significant byte first.
	Bytes16          [16]byte
	HexCase          HexCase
	IPv6ElisionIndex int // group index where "::" elision occurred, -1 if none
	IPv6HasEmbeddedV4 bool

	// LogLevel: index into the fixed 8-entry alphabet.
	LevelIndex uint8

	// Number
	NumberValue float64
	Repr        string // exact original text, e.g. "42.", "1e2", "-0"

	// Email / URL / Path
	Text string
}

// Span returns the exact original bytes this token covers, given the record
// it was recognized from.
func (t Token) Span(record []byte) []byte {
	return record[t.Start:t.End]
}

// LogLevelAlphabet is the fixed, case-sensitive dictionary the recognizer
// matches log levels against and the column encoder indexes into (spec
// §4.1, §4.3).
var LogLevelAlphabet = [8]string{
	"TRACE", "DEBUG", "INFO", "WARN", "WARNING", "ERROR", "FATAL", "CRITICAL",
}
