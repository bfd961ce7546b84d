// Package pool provides pooled byte buffers and typed slices for the column
// package's encoders, adapted from mebo's internal/pool: the same
// amortized-growth ByteBuffer, re-keyed for column-payload sizes instead of
// metric-blob sizes.
package pool

import (
	"io"
	"sync"
)

// Default and max-retained sizes for pooled column-encoding buffers.
const (
	ColumnBufferDefaultSize  = 1024 * 16  // 16KiB, typical single-column payload before compression
	ColumnBufferMaxThreshold = 1024 * 128 // 128KiB, buffers larger than this are not retained
)

// ByteBuffer is a growable byte buffer with an amortized growth strategy,
// meant to be obtained from a pool and reused across encode calls.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes currently written to the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the buffer's backing array capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can accept requiredBytes more bytes without
// reallocating. Small buffers grow by a fixed increment; large buffers grow
// by a fraction of their current capacity, to balance allocation count
// against over-reservation.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ColumnBufferDefaultSize
	if cap(bb.B) > 4*ColumnBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ExtendOrGrow extends the buffer's length by n bytes, growing the backing
// array first if needed.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		bb.B = bb.B[:len(bb.B)+n]
		return
	}
	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo implements io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffers, discarding ones that grew past
// maxThreshold rather than retaining them indefinitely.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and
// are discarded (not retained) once they exceed maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool, or discards it if it grew too large.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}
	bb.Reset()
	bbp.pool.Put(bb)
}

var columnBufferPool = NewByteBufferPool(ColumnBufferDefaultSize, ColumnBufferMaxThreshold)

// GetColumnBuffer retrieves a ByteBuffer from the shared column-encoding pool.
func GetColumnBuffer() *ByteBuffer {
	return columnBufferPool.Get()
}

// PutColumnBuffer returns a ByteBuffer to the shared column-encoding pool.
func PutColumnBuffer(bb *ByteBuffer) {
	columnBufferPool.Put(bb)
}
