// Package latex renders drill tables and document boilerplate as LaTeX
// source, writing to any io.Writer.
//
// A page is one tabular environment of up to 100 problems. Each problem
// occupies two physical rows in one logical column: the first operand on
// top, the operator glyph and second operand beneath. Ten problem columns
// are interleaved with nine spacer columns (19 tabular columns total), a
// \cline separator runs under every problem column, and the row after it
// either carries the computed answers (solutions page) or stays blank for
// handwriting. Division pages start two physical rows in, skipping the ten
// sentinel cells that occupy the first flattened row.
//
// The remaining functions emit the fixed document skeleton in order:
// Preamble, ScoreTracker, one solutions page, PageCounterReset, the test
// pages, DocumentEnd. The token stream is byte-stable: given equal tables
// the renderer always produces identical output.
//
// Errors:
//
//	ErrNilWriter - writer argument is nil.
//	ErrNilTable  - table argument is nil.
//	ErrBadCount  - score tracker asked for a non-positive number of tests.
package latex
