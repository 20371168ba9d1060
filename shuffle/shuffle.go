package shuffle

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/drillgen/core"
)

// Sentinel errors for shuffle operations.
var (
	// ErrNilTable indicates a nil table was passed to Shuffle or Shuffled.
	ErrNilTable = errors.New("shuffle: nil table")

	// ErrNilRand indicates the required rand source is missing.
	ErrNilRand = errors.New("shuffle: rand source is required")
)

// Shuffle permutes t's flattened view uniformly in place using rng.
// For Division tables only offsets [NumDigits, TableCells) participate; the
// sentinel prefix keeps its cells and positions.
//
// Invariants preserved across every call: the multiset of non-sentinel
// problems, the sentinel count, and sentinel positions.
//
// Complexity: O(TableCells) time, O(1) space.
func Shuffle(t *core.Table, rng *rand.Rand) error {
	if t == nil {
		return ErrNilTable
	}
	if rng == nil {
		return ErrNilRand
	}

	flat := t.Flat()
	if t.Op() == core.Division {
		// The sentinel row occupies the first NumDigits flattened cells.
		flat = flat[core.NumDigits:]
	}

	rng.Shuffle(len(flat), func(a, b int) {
		flat[a], flat[b] = flat[b], flat[a]
	})

	return nil
}

// Shuffled returns a permuted clone of t, leaving t untouched.
func Shuffled(t *core.Table, rng *rand.Rand) (*core.Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	c := t.Clone()
	if err := Shuffle(c, rng); err != nil {
		return nil, err
	}

	return c, nil
}
