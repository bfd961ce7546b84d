// Package errs defines the sentinel errors surfaced by alicetxt, following
// the same errors.New-sentinel + fmt.Errorf("%w: ...") wrapping convention
// the teacher package used (its own errs package is referenced throughout
// mebo's blob encoders/decoders but was not part of the retrieval pack).
package errs

import "errors"

// Container / header errors (spec §7).
var (
	ErrMagicMismatch      = errors.New("alicetxt: magic mismatch, not an .atxt file")
	ErrUnsupportedVersion = errors.New("alicetxt: unsupported container version")
	ErrHeaderCorrupt      = errors.New("alicetxt: header or directory CRC mismatch")
	ErrColumnMissing      = errors.New("alicetxt: requested column not present in directory")
	ErrColumnCorrupt      = errors.New("alicetxt: column checksum mismatch or decode failure")
	ErrDecodeError        = errors.New("alicetxt: type-specific decode failure")
	ErrTypeMismatch       = errors.New("alicetxt: filter literal incompatible with column type")
	ErrCancelled          = errors.New("alicetxt: operation cancelled")
	ErrInternal           = errors.New("alicetxt: internal invariant violation")
)

// Container layout/encoding errors, in the same family as the above but
// specific to malformed input rather than the named spec error kinds.
var (
	ErrInvalidHeaderSize     = errors.New("alicetxt: invalid header size")
	ErrInvalidDirectoryEntry = errors.New("alicetxt: invalid column directory entry")
	ErrInvalidSkeleton       = errors.New("alicetxt: invalid or truncated skeleton stream")
	ErrPlaceholderOutOfRange = errors.New("alicetxt: placeholder references column index out of range")
	ErrEnginePoisoned        = errors.New("alicetxt: query engine is poisoned, further operations refused")
	ErrEngineClosed          = errors.New("alicetxt: query engine is closed")
	ErrUnsupportedOperator   = errors.New("alicetxt: operator not supported for column element type")
	ErrInvalidLevel          = errors.New("alicetxt: invalid compression level")
)
