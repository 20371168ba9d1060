// SPDX-License-Identifier: MIT
// Package: drillgen/testgen
//
// Package testgen is the driver: it assembles a complete drill document
// from the builder, shuffle, and latex packages.
//
// Generate writes, in order: the preamble (optionally stamped with a run
// id), the score-tracking section, one solutions page in canonical table
// order, the page-counter reset, then one independently shuffled test page
// per requested test, and finally the document terminator.
//
// Configuration follows the functional-option pattern: options resolve into
// an immutable config, validated once before any output is written. The
// random source is owned by the run — WithSeed/WithRand make documents
// reproducible byte-for-byte; without them the source is seeded from the
// clock once per run.
//
// Preview renders the canonical problem table as an ASCII table for a quick
// look without a TeX toolchain.
//
// Errors:
//
//	ErrNilWriter            - writer argument is nil.
//	ErrBadTestCount         - requested test count outside [MinTests,MaxTests].
//	core.ErrUnknownOperation - configured operation is not a known kind.
package testgen
