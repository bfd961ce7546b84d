// Package column implements the per-ColumnID encoders and decoders that turn
// token.Columns's typed value slices into the binary payloads a container
// blob stores, and back (spec §4.3).
//
// Every encoder in this package is a pure function over a slice, returning a
// []byte ready for the compress package; every decoder is its exact inverse.
// None of these payloads are compressed here — the container writer applies
// the generic entropy coder uniformly across every column's encoded bytes.
package column
