package latex

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/drillgen/core"
)

// Sentinel errors for latex rendering.
var (
	// ErrNilWriter indicates a nil io.Writer was passed to a renderer.
	ErrNilWriter = errors.New("latex: nil writer")

	// ErrNilTable indicates a nil table was passed to RenderPage.
	ErrNilTable = errors.New("latex: nil table")

	// ErrBadCount indicates ScoreTracker was asked for fewer than one test.
	ErrBadCount = errors.New("latex: test count must be positive")
)

// tabularSpec opens the page grid: 10 right-aligned problem columns
// interleaved with 9 spacer columns.
const tabularSpec = `\begin{tabular}{rrrrrrrrrrrrrrrrrrr}`

const (
	colSep   = " & & "   // spacer column between problems
	rowBreak = "\\\\"    // tabular row terminator
	blankRow = `\\ \\`   // answer space for handwriting
	pageEnd  = "\\end{tabular}\n\\newpage\n"
)

// RenderPage writes one full page of problems from t's flattened view.
// When withSolutions is true the answer row carries the computed results;
// otherwise it stays blank for handwriting. Division pages skip the sentinel
// row, rendering 90 problems instead of 100.
//
// The page is buffered and written with a single Write, so an unwritable
// destination surfaces exactly one error.
//
// Complexity: O(TableCells) time, O(page size) space.
func RenderPage(w io.Writer, t *core.Table, withSolutions bool) error {
	if w == nil {
		return ErrNilWriter
	}
	if t == nil {
		return ErrNilTable
	}
	op := t.Op()
	if !op.Valid() {
		return fmt.Errorf("latex: RenderPage: operation %d: %w", int(op), core.ErrUnknownOperation)
	}

	// Division's sentinel row fills one generative row = two physical rows.
	startRow := 0
	if op == core.Division {
		startRow = 2
	}

	flat := t.Flat()
	var b strings.Builder
	b.WriteString(tabularSpec)
	b.WriteByte('\n')

	// Each generative row expands to two physical rows: operands on the
	// even row, operator + second operands on the odd row.
	for row := startRow; row < 2*core.NumDigits; row++ {
		for col := 0; col < core.NumDigits; col++ {
			p := flat[(row/2)*core.NumDigits+col]
			if row%2 == 0 {
				fmt.Fprintf(&b, "%d", p.First)
			} else {
				b.WriteString(op.Glyph())
				b.WriteByte(' ')
				fmt.Fprintf(&b, "%d", p.Second)
			}
			if col == core.NumDigits-1 {
				b.WriteString(rowBreak)
				b.WriteByte('\n')
			} else {
				b.WriteString(colSep)
			}
		}

		if row%2 == 0 {
			continue
		}

		// Separator line under every problem column: tabular columns 1,3,...,19.
		for col := 0; col < core.NumDigits; col++ {
			fmt.Fprintf(&b, "\\cline{%d-%d} ", 2*col+1, 2*col+1)
		}

		if withSolutions {
			for col := 0; col < core.NumDigits; col++ {
				p := flat[(row/2)*core.NumDigits+col]
				fmt.Fprintf(&b, "%d", op.Apply(p.First, p.Second))
				if col == core.NumDigits-1 {
					b.WriteString(blankRow)
				} else {
					b.WriteString(colSep)
				}
			}
		} else {
			b.WriteString(blankRow)
		}
		b.WriteByte('\n')
	}

	b.WriteString(pageEnd)

	_, err := io.WriteString(w, b.String())

	return err
}
