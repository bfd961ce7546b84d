package column

import (
	"encoding/binary"
	"math"
)

// EncodeNumberValues packs the f64 magnitudes as a raw little-endian array
// (spec §4.3: "numbers: (f64, repr); f64 packed"). The exact textual repr
// that makes forms like "42.", "1e2", "-0" round-trip exactly travels in
// its own column (ColumnNumberReprs), encoded with EncodeTextColumn.
func EncodeNumberValues(vals []float64) []byte {
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

// DecodeNumberValues is the inverse of EncodeNumberValues.
func DecodeNumberValues(data []byte, count int) []float64 {
	out := make([]float64, count)
	for i := 0; i < count && (i+1)*8 <= len(data); i++ {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return out
}
