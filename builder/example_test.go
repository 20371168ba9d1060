// File: builder/example_test.go
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/drillgen/builder"
	"github.com/katalvlaran/drillgen/core"
)

// ExampleBuildTable shows the per-operation cell rules on a few cells.
// Scenario:
//
//   - Subtraction reorders (3,5) so the difference stays non-negative.
//   - Division cell (3,9) pairs dividend 27 with divisor 3 — quotient 9.
//   - Division row 0 is structurally excluded (zero divisor).
func ExampleBuildTable() {
	sub, _ := builder.BuildTable(core.Subtraction)
	p, _ := sub.At(3, 5)
	fmt.Printf("subtraction (3,5): %d - %d\n", p.First, p.Second)

	div, _ := builder.BuildTable(core.Division)
	p, _ = div.At(3, 9)
	fmt.Printf("division (3,9): %d / %d = %d\n", p.First, p.Second, core.Division.Apply(p.First, p.Second))

	p, _ = div.At(0, 4)
	fmt.Printf("division (0,4) sentinel: %t\n", p.Sentinel())

	// Output:
	// subtraction (3,5): 5 - 3
	// division (3,9): 27 / 3 = 9
	// division (0,4) sentinel: true
}
