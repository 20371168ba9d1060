// SPDX-License-Identifier: MIT
// Package: drillgen/builder
//
// Package builder constructs the canonical problem tables that every page
// of a drill document is rendered from.
//
// One public entry-point, BuildTable(op), produces the full 10×10 grid of
// single-digit operand pairs for the requested operation:
//
//   - Addition, Multiplication: cell(i,j) = (i, j) — all 100 combinations.
//   - Subtraction: cell(i,j) = (max(i,j), min(i,j)) — minuend ≥ subtrahend,
//     so differences are never negative. Duplicate problems are accepted to
//     keep the full 100-cell grid instead of a sparse triangle.
//   - Division: row i=0 is filled with sentinel cells (a zero divisor is
//     structurally excluded); otherwise cell(i,j) = (i·j, i), so every
//     quotient is exactly j. 90 valid problems, 10 sentinels.
//
// Construction is deterministic: the same operation always yields the same
// canonical table. Randomization is a separate concern (see drillgen/shuffle).
//
// Errors:
//
//	core.ErrUnknownOperation - op is not one of the four known kinds.
package builder
