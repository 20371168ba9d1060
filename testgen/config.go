// SPDX-License-Identifier: MIT
// Package: drillgen/testgen
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - config is the single source of truth for all driver knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newConfig applies options in-order (later overrides earlier);
//     validate() runs once before any byte is written.

package testgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/drillgen/core"
)

// Sentinel errors for driver configuration and output.
var (
	// ErrNilWriter indicates a nil destination writer.
	ErrNilWriter = errors.New("testgen: nil writer")

	// ErrBadTestCount indicates a test count outside [MinTests, MaxTests].
	ErrBadTestCount = errors.New("testgen: test count out of range")
)

// Test-count bounds and default, mirroring the CLI contract.
const (
	// MinTests is the smallest accepted number of test pages.
	MinTests = 1
	// MaxTests is the largest accepted number of test pages.
	MaxTests = 999
	// DefaultTests fills one scoring page exactly.
	DefaultTests = 60
)

// config aggregates all knobs used by Generate.
// It is resolved once per run and never mutated afterwards.
type config struct {
	// tests is the number of shuffled test pages to emit.
	tests int
	// op selects the arithmetic kind for the whole run.
	op core.Operation
	// rng drives page shuffling; nil means "seed from the clock at run start".
	rng *rand.Rand
	// stamp controls the run-id comment line in the preamble.
	stamp bool
}

// newConfig constructs a config with deterministic defaults and applies all
// options in order. Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{
		tests: DefaultTests,
		op:    core.Addition,
		rng:   nil,
		stamp: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate checks the resolved config before generation begins, so argument
// errors never leave a half-written document behind.
func (c config) validate() error {
	if c.tests < MinTests || c.tests > MaxTests {
		return fmt.Errorf("testgen: tests %d not in [%d,%d]: %w", c.tests, MinTests, MaxTests, ErrBadTestCount)
	}
	if !c.op.Valid() {
		return fmt.Errorf("testgen: operation %d: %w", int(c.op), core.ErrUnknownOperation)
	}

	return nil
}
