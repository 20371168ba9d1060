// SPDX-License-Identifier: MIT
// Package: drillgen/testgen
//
// preview.go — ASCII rendering of a canonical problem table.

package testgen

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/drillgen/builder"
	"github.com/katalvlaran/drillgen/core"
)

// Preview writes the canonical (unshuffled) problem table for op to w as an
// ASCII table: one row per generative digit row, columns 0–9, sentinel
// cells left blank. Meant for eyeballing a sheet without a TeX toolchain.
//
// Errors:
//   - ErrNilWriter on a nil destination;
//   - core.ErrUnknownOperation via the builder on an unknown kind.
func Preview(w io.Writer, op core.Operation) error {
	if w == nil {
		return ErrNilWriter
	}

	tbl, err := builder.BuildTable(op)
	if err != nil {
		return err
	}

	header := make([]any, core.NumDigits+1)
	header[0] = op.String()
	for j := 0; j < core.NumDigits; j++ {
		header[j+1] = fmt.Sprintf("j=%d", j)
	}

	out := tablewriter.NewTable(w)
	out.Header(header...)

	for i := 0; i < core.NumDigits; i++ {
		row := make([]string, core.NumDigits+1)
		row[0] = fmt.Sprintf("i=%d", i)
		for j := 0; j < core.NumDigits; j++ {
			p, aerr := tbl.At(i, j)
			if aerr != nil {
				return aerr
			}
			if p.Sentinel() {
				continue // leave excluded division cells blank
			}
			row[j+1] = fmt.Sprintf("%d %c %d", p.First, op.Symbol(), p.Second)
		}
		if err = out.Append(row); err != nil {
			return err
		}
	}

	return out.Render()
}
