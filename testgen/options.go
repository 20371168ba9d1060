// SPDX-License-Identifier: MIT
// Package: drillgen/testgen
//
// options.go — functional options for the driver.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Values that can arrive from the CLI (test count, operation) are NOT
//     validated in the option constructor; validate() reports them as
//     sentinel errors so the binary can print usage instead of panicking.
//   - Programmer errors (nil RNG) panic early in the constructor.
//   - No hidden globals; everything flows through config.

package testgen

import (
	"math/rand"

	"github.com/katalvlaran/drillgen/core"
)

// Option customizes one Generate run by mutating its config before
// validation. Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithTests sets the number of test pages. The value is range-checked by
// validate(), not here, so CLI input funnels into ErrBadTestCount.
func WithTests(n int) Option {
	return func(c *config) { c.tests = n }
}

// WithOperation selects the arithmetic kind for the run. Validity is
// checked by validate() against core.ErrUnknownOperation.
func WithOperation(op core.Operation) Option {
	return func(c *config) { c.op = op }
}

// WithRand provides an explicit RNG for page shuffling.
// Panics on nil to surface programmer error early.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("testgen: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed, making the whole
// document reproducible. Use this in tests and golden fixtures.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithStamp toggles the run-id comment line in the preamble (default on).
// Golden tests switch it off to keep output byte-stable.
func WithStamp(enabled bool) Option {
	return func(c *config) { c.stamp = enabled }
}
