// Package query implements the read-only query engine over a v3 container:
// open/stats/columns for introspection, select for column projection,
// filter for single-column predicate evaluation, and query to compose the
// two (spec §4.5). Grounded on blob.NumericDecoder's lazy, offset-driven
// payload decompression and VictoriaMetrics's filter/bitmap design for the
// predicate layer (see DESIGN.md).
package query

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sakamoro/alicetxt/compress"
	"github.com/sakamoro/alicetxt/container"
	"github.com/sakamoro/alicetxt/errs"
	"github.com/sakamoro/alicetxt/format"
	"github.com/sakamoro/alicetxt/token"
)

// scanChunkSize is the element granularity at which Filter/Query's scan
// loops re-check ctx for cancellation (spec §5: "chunk granularity ≈ 64 Ki
// elements").
const scanChunkSize = 64 * 1024

// checkCancelled reports ctx's cancellation as errs.ErrCancelled, the
// engine's own error kind, rather than leaking context.Canceled/
// DeadlineExceeded to callers who only check against the errs sentinels. A
// nil ctx (e.g. context.Background() callers) never cancels.
func checkCancelled(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", errs.ErrCancelled, ctx.Err())
	default:
		return nil
	}
}

// State is the engine's lifecycle position (spec §4.5): Unopened →
// Open(header_valid) → Queryable, terminal Closed; any operation error
// moves the engine to Poisoned, after which every further call fails fast.
type State uint8

const (
	StateUnopened State = iota
	StateOpen
	StateQueryable
	StateClosed
	StatePoisoned
)

// columnCache lazily decodes one column's values exactly once, guarded by
// its own sync.Once so concurrent Select/Filter calls touching different
// columns never block each other (mirrors VictoriaMetrics's per-field
// tokensOnce/streamIDsOnce pattern, generalized from one flag per filter
// kind to one flag per column).
type columnCache struct {
	once   sync.Once
	values *ColumnValues
	err    error
}

// Engine is a read-only handle over one container's decoded bytes. Not safe
// for concurrent Close/poisoning alongside in-flight queries; read-only
// query operations (Select/Filter/Query/Stats/Columns) are.
type Engine struct {
	mu    sync.Mutex
	state State

	data   []byte
	reader *container.Reader
	codec  compress.Codec

	caches map[format.ColumnID]*columnCache

	skeletonOnce sync.Once
	skel         *token.SkeletonStream
	skelErr      error

	placeholderOnce sync.Once
	placeholders    *placeholderIndex
	placeholderErr  error
}

// Open parses data's header and directory, validating the footer CRC, and
// returns an Engine ready for Stats/Columns/Select/Filter/Query. O(1) in
// file size (spec §4.5).
func Open(data []byte) (*Engine, error) {
	r, err := container.Open(data)
	if err != nil {
		return nil, err
	}
	codec, err := compress.GetCodec(container.CompressionType(r.Header.Flags))
	if err != nil {
		return nil, err
	}

	e := &Engine{
		state:  StateQueryable,
		data:   data,
		reader: r,
		codec:  codec,
		caches: make(map[format.ColumnID]*columnCache),
	}
	return e, nil
}

// Close releases the engine; subsequent operations return ErrEngineClosed.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateClosed
}

func (e *Engine) checkUsable() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.state {
	case StateClosed:
		return errs.ErrEngineClosed
	case StatePoisoned:
		return errs.ErrEnginePoisoned
	default:
		return nil
	}
}

func (e *Engine) poison() {
	e.mu.Lock()
	e.state = StatePoisoned
	e.mu.Unlock()
}

// poisonOn poisons the engine only for the error kinds spec §4.5 names as
// poisoning (ColumnCorrupt, Internal). ColumnMissing is an ordinary usage
// error — querying a column ID the directory doesn't have — and must leave
// the engine queryable for unrelated operations.
func (e *Engine) poisonOn(err error) {
	if errors.Is(err, errs.ErrColumnCorrupt) || errors.Is(err, errs.ErrInternal) {
		e.poison()
	}
}

// ColumnStat describes one directory entry (spec §4.5's stats() shape).
type ColumnStat struct {
	ID              format.ColumnID
	Name            string
	ElementType     uint8
	RowCount        uint64
	UncompressedLen uint64
	CompressedLen   uint64
}

// Stats summarizes the container: row/column counts and per-column sizing,
// all read directly off the parsed directory (O(1) after Open).
type Stats struct {
	RowCount    uint64
	ColumnCount uint32
	Columns     []ColumnStat
}

func (e *Engine) Stats() (Stats, error) {
	if err := e.checkUsable(); err != nil {
		return Stats{}, err
	}
	stats := Stats{RowCount: e.reader.Header.RowCount, ColumnCount: e.reader.Header.ColumnCount}
	for _, c := range e.reader.Columns {
		stats.Columns = append(stats.Columns, ColumnStat{
			ID:              c.ColumnID,
			Name:            c.ColumnID.String(),
			ElementType:     c.ElementType,
			RowCount:        c.RowCount,
			UncompressedLen: c.UncompressedLen,
			CompressedLen:   c.CompressedLen,
		})
	}
	return stats, nil
}

// Columns lists every column present in the directory, by name.
func (e *Engine) Columns() ([]string, error) {
	if err := e.checkUsable(); err != nil {
		return nil, err
	}
	names := make([]string, len(e.reader.Columns))
	for i, c := range e.reader.Columns {
		names[i] = c.ColumnID.String()
	}
	return names, nil
}

// columnValues decompresses and decodes id's column exactly once for the
// engine's lifetime, caching the result (spec §4.5's decompression policy).
// ctx is checked once here, at the column boundary (spec §5's suspension
// points are "exactly at the boundaries of a column's compress/decompress
// call"): a cancellation observed before starting a column's decompress
// never starts it, but one in-flight is allowed to finish and cache so the
// cache stays consistent.
func (e *Engine) columnValues(ctx context.Context, id format.ColumnID) (*ColumnValues, error) {
	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	e.mu.Lock()
	cache, ok := e.caches[id]
	if !ok {
		cache = &columnCache{}
		e.caches[id] = cache
	}
	e.mu.Unlock()

	cache.once.Do(func() {
		entry, ok := e.reader.Find(id)
		if !ok {
			cache.err = errs.ErrColumnMissing
			return
		}
		raw, err := e.reader.Decompress(e.codec, entry)
		if err != nil {
			cache.err = err
			return
		}
		values, err := decodeColumnValues(entry, raw, int(e.reader.Header.RowCount))
		if err != nil {
			cache.err = err
			return
		}
		cache.values = values
	})

	if cache.err != nil {
		e.poisonOn(cache.err)
		return nil, cache.err
	}
	return cache.values, nil
}

// Evict drops id's cached decoded values, so a future access re-decodes it
// (spec §4.5's "memory reclaim is the caller's option").
func (e *Engine) Evict(id format.ColumnID) {
	e.mu.Lock()
	delete(e.caches, id)
	e.mu.Unlock()
}

// VerifySkeleton forces the skeleton stream to decompress and decode,
// surfacing any checksum or corruption failure without returning the
// decoded stream itself (callers outside the package have no use for
// token.SkeletonStream; this exists for the verify CLI command).
func (e *Engine) VerifySkeleton() error {
	_, err := e.skeleton()
	return err
}

// skeleton decompresses and decodes the skeleton stream exactly once per
// engine lifetime, same caching policy as columnValues.
func (e *Engine) skeleton() (*token.SkeletonStream, error) {
	e.skeletonOnce.Do(func() {
		e.skel, e.skelErr = e.reader.DecodeSkeleton(e.codec)
	})
	if e.skelErr != nil {
		e.poisonOn(e.skelErr)
		return nil, e.skelErr
	}
	return e.skel, nil
}
