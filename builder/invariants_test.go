package builder_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/drillgen/builder"
	"github.com/katalvlaran/drillgen/core"
)

// digitGen draws generative indices in [0, NumDigits).
func digitGen() gopter.Gen {
	return gen.IntRange(0, core.NumDigits-1)
}

// TestBuildTable_Properties checks the per-cell rules hold for arbitrary
// generative indices, not just the exhaustive loops in builder_test.go.
func TestBuildTable_Properties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	sub, err := builder.BuildTable(core.Subtraction)
	if err != nil {
		t.Fatalf("BuildTable(Subtraction): %v", err)
	}
	div, err := builder.BuildTable(core.Division)
	if err != nil {
		t.Fatalf("BuildTable(Division): %v", err)
	}

	properties.Property("subtraction results are never negative", prop.ForAll(
		func(i, j int) bool {
			p, aerr := sub.At(i, j)

			return aerr == nil && core.Subtraction.Apply(p.First, p.Second) >= 0
		},
		digitGen(), digitGen(),
	))

	properties.Property("subtraction cells preserve the digit pair", prop.ForAll(
		func(i, j int) bool {
			p, aerr := sub.At(i, j)
			if aerr != nil {
				return false
			}

			return (p.First == i && p.Second == j) || (p.First == j && p.Second == i)
		},
		digitGen(), digitGen(),
	))

	properties.Property("division quotients are exact and equal j", prop.ForAll(
		func(i, j int) bool {
			p, aerr := div.At(i, j)
			if aerr != nil {
				return false
			}
			if i == 0 {
				return p.Sentinel()
			}

			return p.First%p.Second == 0 && p.First/p.Second == j
		},
		digitGen(), digitGen(),
	))

	properties.TestingRun(t)
}
