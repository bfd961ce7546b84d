// Package bitmap implements a packed bit array used for record-aligned
// presence flags (spec §4.3's presence bitmap) and for the query engine's
// row-selection sets (spec §4.5).
package bitmap

// Bitmap is a dense, packed array of n bits, 8 per byte, bit i stored at
// byte i/8, mask 1<<(i%8). It mirrors the bit-packing style the container
// directory's flags fields use (section.NumericFlag's mask/shift idiom),
// scaled up to an arbitrary bit count instead of a fixed-width header word.
type Bitmap struct {
	bits []byte
	n    int
}

// New returns a Bitmap of n bits, all clear.
func New(n int) *Bitmap {
	return &Bitmap{bits: make([]byte, (n+7)/8), n: n}
}

// FromBytes wraps a packed byte slice (as read from a container) as a
// Bitmap of n bits. The slice is referenced, not copied.
func FromBytes(b []byte, n int) *Bitmap {
	return &Bitmap{bits: b, n: n}
}

// Len reports the number of bits.
func (bm *Bitmap) Len() int {
	return bm.n
}

// Bytes returns the packed backing array, ready to write to a container.
func (bm *Bitmap) Bytes() []byte {
	return bm.bits
}

// Set marks bit i present.
func (bm *Bitmap) Set(i int) {
	bm.bits[i/8] |= 1 << (uint(i) % 8)
}

// Get reports whether bit i is set.
func (bm *Bitmap) Get(i int) bool {
	return bm.bits[i/8]&(1<<(uint(i)%8)) != 0
}

// Count returns the number of set bits.
func (bm *Bitmap) Count() int {
	c := 0
	for _, b := range bm.bits {
		for b != 0 {
			c++
			b &= b - 1
		}
	}
	return c
}

// FromBools packs a []bool (e.g. Columns.TimestampPresent) into a Bitmap.
func FromBools(vals []bool) *Bitmap {
	bm := New(len(vals))
	for i, v := range vals {
		if v {
			bm.Set(i)
		}
	}
	return bm
}

// Bools unpacks the Bitmap into a []bool of length Len().
func (bm *Bitmap) Bools() []bool {
	out := make([]bool, bm.n)
	for i := 0; i < bm.n; i++ {
		out[i] = bm.Get(i)
	}
	return out
}
