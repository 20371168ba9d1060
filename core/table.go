package core

import "fmt"

// NumDigits is the side length of every problem table: one row and one
// column per decimal digit.
const NumDigits = 10

// TableCells is the fixed cell count of a table's flattened view.
const TableCells = NumDigits * NumDigits

// Table is a fixed NumDigits×NumDigits grid of Problems stored flat in
// row-major order. Row/column indices are the generative digit indices, not
// the displayed order: shuffling permutes the flattened view in place while
// the Table itself lives for the whole run.
//
// Time complexity:
//   - At/Set: O(1)
//   - Flat:   O(1) (no copy)
//   - Clone:  O(TableCells)
type Table struct {
	op    Operation
	cells [TableCells]Problem
}

// NewTable returns a zero-filled table bound to op.
// Returns ErrUnknownOperation when op is not one of the four kinds.
func NewTable(op Operation) (*Table, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("core: NewTable: operation %d: %w", int(op), ErrUnknownOperation)
	}

	return &Table{op: op}, nil
}

// Op returns the operation this table was built for.
func (t *Table) Op() Operation { return t.op }

// At returns the cell at generative row i, column j.
// Returns ErrIndexOutOfRange when either index is outside [0,NumDigits).
func (t *Table) At(i, j int) (Problem, error) {
	if !inBounds(i, j) {
		return Problem{}, fmt.Errorf("core: At(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}

	return t.cells[i*NumDigits+j], nil
}

// Set stores p at generative row i, column j.
// Returns ErrIndexOutOfRange when either index is outside [0,NumDigits).
func (t *Table) Set(i, j int, p Problem) error {
	if !inBounds(i, j) {
		return fmt.Errorf("core: Set(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	t.cells[i*NumDigits+j] = p

	return nil
}

// Flat exposes the mutable flattened view of the table in row-major order.
// Shuffling and rendering share this single view definition; the slice
// aliases the table's storage, it is not a copy.
func (t *Table) Flat() []Problem { return t.cells[:] }

// Clone returns an independent deep copy of t.
func (t *Table) Clone() *Table {
	c := *t

	return &c
}

// inBounds reports whether (i, j) addresses a real cell.
func inBounds(i, j int) bool {
	return i >= 0 && i < NumDigits && j >= 0 && j < NumDigits
}
