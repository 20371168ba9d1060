// Package core defines the central Operation, Problem, and Table types
// shared by every drillgen subpackage.
//
// Operation is a closed enumeration of the four supported arithmetic kinds;
// it carries its LaTeX glyph, its display symbol, and its answer function as
// methods, so builders and renderers never branch on raw type tags. ParseOp
// is the single point where an untrusted one-character tag becomes an
// Operation, and the only place ErrUnknownOperation can enter a run.
//
// Table is a fixed 10×10 grid of Problems backed by flat row-major storage.
// Accessors are bounds-checked; Flat exposes the mutable flattened view that
// shuffling and rendering share.
//
// Errors:
//
//	ErrUnknownOperation - operation value is not one of the four kinds.
//	ErrIndexOutOfRange  - table access outside [0,NumDigits).
package core
