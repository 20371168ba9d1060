// SPDX-License-Identifier: MIT
// Package: drillgen/builder
//
// builder.go — canonical table construction per operation.
//
// Design contract (strict):
//   - BuildTable validates early and returns sentinel errors; it never panics.
//   - Determinism: the same operation always produces the identical table.
//   - Cell rules live in one place (cellFor); no per-call-site branching.

package builder

import (
	"fmt"

	"github.com/katalvlaran/drillgen/core"
)

// MethodBuildTable is the canonical name prefixed to BuildTable errors.
const MethodBuildTable = "BuildTable"

// BuildTable returns the canonical core.Table for op: every single-digit
// operand combination, with subtraction pairs ordered non-negative and the
// division zero-divisor row replaced by sentinel cells.
//
// Complexity: O(TableCells) time, O(TableCells) space.
//
// Errors:
//   - core.ErrUnknownOperation when op is not one of the four known kinds.
func BuildTable(op core.Operation) (*core.Table, error) {
	// Validate once at the boundary; cellFor can then assume a known kind.
	if !op.Valid() {
		return nil, fmt.Errorf("%s: operation %d: %w", MethodBuildTable, int(op), core.ErrUnknownOperation)
	}

	t, err := core.NewTable(op)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildTable, err)
	}

	// Fill every generative cell; indices stay in range by construction,
	// so Set cannot fail here.
	for i := 0; i < core.NumDigits; i++ {
		for j := 0; j < core.NumDigits; j++ {
			if err = t.Set(i, j, cellFor(op, i, j)); err != nil {
				return nil, fmt.Errorf("%s: %w", MethodBuildTable, err)
			}
		}
	}

	return t, nil
}

// cellFor applies the per-operation cell rule to generative indices (i, j).
// op must already be validated.
func cellFor(op core.Operation, i, j int) core.Problem {
	switch op {
	case core.Subtraction:
		// Order the pair so the minuend is the larger digit.
		if i < j {
			return core.Problem{First: j, Second: i}
		}

		return core.Problem{First: i, Second: j}
	case core.Division:
		// A zero divisor is structurally excluded; i·j ÷ i = j otherwise.
		if i == 0 {
			return core.SentinelProblem
		}

		return core.Problem{First: i * j, Second: i}
	default: // Addition, Multiplication
		return core.Problem{First: i, Second: j}
	}
}
