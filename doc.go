// Package drillgen turns single-digit arithmetic into printable practice
// tests: randomized problem sheets, a solutions page, and score trackers,
// emitted as a ready-to-compile LaTeX document.
//
// 🚀 What is drillgen?
//
//	A small, deterministic library + CLI that brings together:
//		• Canonical tables: every single-digit problem for +, −, ×, ÷
//		• Safe variants: non-negative subtraction, zero-free division
//		• Seeded shuffling: reproducible page orderings per run
//		• LaTeX rendering: two-row problem grids, solutions, score pages
//		• ASCII preview: eyeball a sheet without a TeX toolchain
//
// ✨ Why choose drillgen?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – explicit RNG, same seed ⇒ identical documents
//   - Pure Go – no cgo, renders to any io.Writer
//   - Honest arithmetic – subtraction never negative, division always exact
//
// Under the hood, everything is organized under five subpackages:
//
//	core/    — Operation, Problem, and the fixed 10×10 Table container
//	builder/ — canonical problem-table construction per operation
//	shuffle/ — seeded permutation of a table's flattened view
//	latex/   — page renderer and document boilerplate
//	testgen/ — the driver: options, document assembly, preview
//
// Quick ASCII example (one problem cell, two physical rows + answer):
//
//	      7
//	    + 4
//	    ———
//	     11
//
// Dive into testgen.Generate for the full document pipeline, or run
//
//	go run github.com/katalvlaran/drillgen/cmd/drillgen -t m -n 30 -o practice
//
// to produce practice.tex with thirty multiplication tests.
package drillgen
