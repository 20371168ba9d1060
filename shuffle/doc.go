// Package shuffle randomizes the order of problems on a drill page.
//
// A shuffle permutes a table's flattened 100-cell view uniformly with an
// explicit *rand.Rand supplied by the caller — no package-level RNG state,
// no time-based reseeding. The same seed therefore reproduces the same
// sequence of page orderings, which is what makes generated documents
// testable byte-for-byte.
//
// Division tables are special: their first flattened row holds the ten
// sentinel cells (zero-divisor placeholders). Those stay pinned at offsets
// [0, NumDigits) and never participate in the permutation, matching the
// renderer, which skips them.
//
// Shuffle permutes the shared storage in place (each page reshuffles the
// same table); Shuffled returns a permuted clone when the caller needs to
// keep the canonical order, e.g. for the solutions page.
//
// Errors:
//
//	ErrNilTable - table argument is nil.
//	ErrNilRand  - rand source argument is nil.
package shuffle
