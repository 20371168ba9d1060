// SPDX-License-Identifier: MIT
// Package: drillgen/testgen
//
// generate.go — full-document assembly.

package testgen

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/drillgen/builder"
	"github.com/katalvlaran/drillgen/latex"
	"github.com/katalvlaran/drillgen/shuffle"
)

// Generate writes one complete drill document to w: preamble, score
// tracker, a solutions page in canonical order, the page-counter reset,
// cfg.tests independently shuffled test pages, and the terminator.
//
// The single table built for the run is reshuffled in place before each
// test page; the solutions page is rendered first, before any shuffle, so
// it always lists the canonical order. The first failing write aborts the
// run and is returned as-is.
//
// Complexity: O(tests × TableCells) time, O(page size) space.
//
// Errors:
//   - ErrNilWriter, ErrBadTestCount, core.ErrUnknownOperation on bad input;
//   - any I/O error from w, unmodified.
func Generate(w io.Writer, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return err
	}

	// One RNG per run. Reseeding per page (the classic srand-every-loop
	// mistake) would hand several pages the same ordering.
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	table, err := builder.BuildTable(cfg.op)
	if err != nil {
		return err
	}

	stamp := ""
	if cfg.stamp {
		stamp = fmt.Sprintf("drillgen %s %s", cfg.op, uuid.NewString())
	}
	if err = latex.Preamble(w, stamp); err != nil {
		return err
	}
	if err = latex.ScoreTracker(w, cfg.tests); err != nil {
		return err
	}

	// Solutions before the first shuffle: canonical order, answers shown.
	if err = latex.RenderPage(w, table, true); err != nil {
		return err
	}
	if err = latex.PageCounterReset(w); err != nil {
		return err
	}

	for n := 0; n < cfg.tests; n++ {
		if err = shuffle.Shuffle(table, rng); err != nil {
			return err
		}
		if err = latex.RenderPage(w, table, false); err != nil {
			return err
		}
	}

	return latex.DocumentEnd(w)
}
