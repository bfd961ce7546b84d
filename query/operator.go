package query

import (
	"strings"

	"github.com/sakamoro/alicetxt/errs"
	"github.com/sakamoro/alicetxt/format"
	"github.com/sakamoro/alicetxt/token"
)

// Operator is a filter predicate (spec §4.5).
type Operator uint8

const (
	Eq Operator = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// ordered reports whether op is only valid against totally ordered element
// types. Eq/Ne apply to every element type; Lt/Le/Gt/Ge are refused for
// UUID, IPv4/6, and LogLevel (spec §4.5).
func (op Operator) ordered() bool {
	return op != Eq && op != Ne
}

// elementKindFor maps a column to the TokenKind its literal must parse as.
func elementKindFor(id format.ColumnID) (format.TokenKind, bool) {
	switch id {
	case format.ColumnTimestamps:
		return format.KindTimestamp, true
	case format.ColumnDates:
		return format.KindDate, true
	case format.ColumnTimes:
		return format.KindTime, true
	case format.ColumnIPv4:
		return format.KindIPv4, true
	case format.ColumnIPv6:
		return format.KindIPv6, true
	case format.ColumnUUIDs:
		return format.KindUUID, true
	case format.ColumnLogLevels:
		return format.KindLogLevel, true
	case format.ColumnNumbers:
		return format.KindNumber, true
	case format.ColumnEmails:
		return format.KindEmail, true
	case format.ColumnURLs:
		return format.KindURL, true
	case format.ColumnPaths:
		return format.KindPath, true
	default:
		return 0, false
	}
}

// literal is a parsed filter literal coerced to the comparable
// representation matching one ColumnValues typed slice.
type literal struct {
	int64Val   int64
	u128Val    [16]byte
	u8Val      uint8
	float64Val float64
	stringVal  string
}

// parseLiteral coerces raw (the filter literal text) against column id's
// element type using the same recognizer rules the skeletonizer applies to
// input records (spec §4.5). Log level literals match the alphabet
// case-insensitively.
func parseLiteral(id format.ColumnID, raw string) (literal, error) {
	if id == format.ColumnLogLevels {
		upper := strings.ToUpper(raw)
		for i, name := range token.LogLevelAlphabet {
			if name == upper {
				return literal{u8Val: uint8(i)}, nil
			}
		}
		return literal{}, errs.ErrTypeMismatch
	}

	kind, ok := elementKindFor(id)
	if !ok {
		return literal{}, errs.ErrColumnMissing
	}

	tok, ok := token.ParseLiteral(kind, raw)
	if !ok {
		return literal{}, errs.ErrTypeMismatch
	}

	switch kind {
	case format.KindTimestamp:
		return literal{int64Val: tok.EpochMs}, nil
	case format.KindDate:
		return literal{int64Val: int64(tok.EpochDays)}, nil
	case format.KindTime:
		return literal{int64Val: int64(tok.MsFromMidnight)}, nil
	case format.KindIPv4:
		return literal{int64Val: int64(tok.IPv4)}, nil
	case format.KindIPv6, format.KindUUID:
		return literal{u128Val: tok.Bytes16}, nil
	case format.KindNumber:
		return literal{float64Val: tok.NumberValue}, nil
	case format.KindEmail, format.KindURL, format.KindPath:
		return literal{stringVal: tok.Text}, nil
	default:
		return literal{}, errs.ErrTypeMismatch
	}
}

// matches evaluates op against values' i-th element and lit, dispatching on
// whichever typed slice is populated.
func matches(values *ColumnValues, i int, op Operator, lit literal) bool {
	switch {
	case values.Int64s != nil:
		return compareOrdered(values.Int64s[i], lit.int64Val, op)
	case values.Float64s != nil:
		return compareOrdered(values.Float64s[i], lit.float64Val, op)
	case values.Strings != nil:
		return compareOrdered(values.Strings[i], lit.stringVal, op)
	case values.U128s != nil:
		return compareEquality(values.U128s[i] == lit.u128Val, op)
	case values.U8s != nil:
		return compareEquality(values.U8s[i] == lit.u8Val, op)
	default:
		return false
	}
}

type ordered interface {
	~int64 | ~float64 | ~string
}

func compareOrdered[T ordered](a, b T, op Operator) bool {
	switch op {
	case Eq:
		return a == b
	case Ne:
		return a != b
	case Lt:
		return a < b
	case Le:
		return a <= b
	case Gt:
		return a > b
	case Ge:
		return a >= b
	default:
		return false
	}
}

func compareEquality(eq bool, op Operator) bool {
	switch op {
	case Eq:
		return eq
	case Ne:
		return !eq
	default:
		return false
	}
}

// checkOperator rejects an ordered operator against an element type that
// only supports equality (spec §4.5).
func checkOperator(id format.ColumnID, op Operator) error {
	if !op.ordered() {
		return nil
	}
	switch id {
	case format.ColumnIPv4, format.ColumnIPv6, format.ColumnUUIDs, format.ColumnLogLevels:
		return errs.ErrUnsupportedOperator
	default:
		return nil
	}
}
