// Package core: Operation and Problem primitives plus sentinel errors.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrUnknownOperation indicates an operation value outside the four known kinds.
	ErrUnknownOperation = errors.New("core: unknown operation")

	// ErrIndexOutOfRange indicates a table access outside [0,NumDigits).
	ErrIndexOutOfRange = errors.New("core: table index out of range")
)

// Operation selects the arithmetic kind a table and its pages are built for.
// The zero value is Addition.
type Operation int

const (
	// Addition renders "a + b" problems; every digit pair is valid.
	Addition Operation = iota
	// Subtraction renders "a − b" with operands ordered so results are never negative.
	Subtraction
	// Multiplication renders "a × b" problems; every digit pair is valid.
	Multiplication
	// Division renders "a ÷ b" with dividends chosen so quotients are exact digits.
	Division

	numOperations // count guard; keep last
)

// ParseOp maps a one-character CLI tag to its Operation:
// 'a' → Addition, 's' → Subtraction, 'm' → Multiplication, 'd' → Division.
// Any other tag yields ErrUnknownOperation.
func ParseOp(tag byte) (Operation, error) {
	switch tag {
	case 'a':
		return Addition, nil
	case 's':
		return Subtraction, nil
	case 'm':
		return Multiplication, nil
	case 'd':
		return Division, nil
	default:
		return 0, fmt.Errorf("core: tag %q: %w", tag, ErrUnknownOperation)
	}
}

// Valid reports whether op is one of the four known kinds.
func (op Operation) Valid() bool {
	return op >= Addition && op < numOperations
}

// Tag returns the one-character CLI tag for op, or 0 when op is invalid.
func (op Operation) Tag() byte {
	switch op {
	case Addition:
		return 'a'
	case Subtraction:
		return 's'
	case Multiplication:
		return 'm'
	case Division:
		return 'd'
	default:
		return 0
	}
}

// Glyph returns the LaTeX math-mode operator emitted on a problem's second row.
func (op Operation) Glyph() string {
	switch op {
	case Addition:
		return `$+$`
	case Subtraction:
		return `$-$`
	case Multiplication:
		return `$\times$`
	case Division:
		return `$\div$`
	default:
		return ""
	}
}

// Symbol returns the plain-text operator rune used by ASCII previews.
func (op Operation) Symbol() rune {
	switch op {
	case Addition:
		return '+'
	case Subtraction:
		return '-'
	case Multiplication:
		return '×'
	case Division:
		return '÷'
	default:
		return '?'
	}
}

// Apply computes the answer for a (first, second) operand pair under op.
// Tables built by drillgen guarantee non-negative differences and exact
// quotients, so Apply is total on every non-sentinel cell.
func (op Operation) Apply(first, second int) int {
	switch op {
	case Addition:
		return first + second
	case Subtraction:
		return first - second
	case Multiplication:
		return first * second
	case Division:
		return first / second
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (op Operation) String() string {
	switch op {
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	case Multiplication:
		return "Multiplication"
	case Division:
		return "Division"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// SentinelOperand is the operand value marking a structurally excluded cell.
const SentinelOperand = -1

// SentinelProblem marks a Division cell whose divisor would be zero.
// Sentinel cells are never shuffled and never rendered.
var SentinelProblem = Problem{First: SentinelOperand, Second: SentinelOperand}

// Problem is one operand pair. First is the augend/minuend/multiplier/
// dividend (the top row on paper); Second is the addend/subtrahend/
// multiplicand/divisor (the operator row).
type Problem struct {
	First  int
	Second int
}

// Sentinel reports whether p is the structural placeholder pair.
func (p Problem) Sentinel() bool {
	return p.First == SentinelOperand && p.Second == SentinelOperand
}
