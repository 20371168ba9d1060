package testgen_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drillgen/core"
	"github.com/katalvlaran/drillgen/testgen"
)

// TestGenerate_CountBounds: 1 and 999 are accepted, 0 and 1000 rejected.
func TestGenerate_CountBounds(t *testing.T) {
	for _, n := range []int{testgen.MinTests, testgen.MaxTests} {
		err := testgen.Generate(io.Discard, testgen.WithTests(n), testgen.WithSeed(1))
		assert.NoError(t, err, "count %d must be accepted", n)
	}
	for _, n := range []int{0, 1000, -5} {
		err := testgen.Generate(io.Discard, testgen.WithTests(n))
		if !errors.Is(err, testgen.ErrBadTestCount) {
			t.Errorf("Generate(tests=%d) error = %v; want ErrBadTestCount", n, err)
		}
	}
}

// TestGenerate_BadInput covers the remaining argument guards.
func TestGenerate_BadInput(t *testing.T) {
	assert.ErrorIs(t, testgen.Generate(nil), testgen.ErrNilWriter)
	err := testgen.Generate(io.Discard, testgen.WithOperation(core.Operation(9)))
	assert.ErrorIs(t, err, core.ErrUnknownOperation)
}

// TestGenerate_ValidationBeforeOutput: a bad count writes nothing.
func TestGenerate_ValidationBeforeOutput(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, testgen.Generate(&buf, testgen.WithTests(0)))
	assert.Zero(t, buf.Len(), "argument errors must precede any output")
}

// TestGenerate_Deterministic: equal seeds reproduce the document
// byte-for-byte once the stamp line is disabled.
func TestGenerate_Deterministic(t *testing.T) {
	opts := []testgen.Option{
		testgen.WithOperation(core.Multiplication),
		testgen.WithTests(4),
		testgen.WithStamp(false),
	}

	var a, b, c bytes.Buffer
	require.NoError(t, testgen.Generate(&a, append(opts, testgen.WithSeed(11))...))
	require.NoError(t, testgen.Generate(&b, append(opts, testgen.WithSeed(11))...))
	require.NoError(t, testgen.Generate(&c, append(opts, testgen.WithSeed(12))...))

	assert.Equal(t, a.String(), b.String(), "same seed ⇒ same document")
	assert.NotEqual(t, a.String(), c.String(), "different seed ⇒ different page order")
}

// TestGenerate_Stamp: the run-id comment leads the document when enabled
// and is absent when disabled.
func TestGenerate_Stamp(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testgen.Generate(&buf, testgen.WithTests(1), testgen.WithSeed(1)))
	assert.True(t, strings.HasPrefix(buf.String(), "% drillgen Addition "), "stamped documents start with the run-id comment")

	buf.Reset()
	require.NoError(t, testgen.Generate(&buf, testgen.WithTests(1), testgen.WithSeed(1), testgen.WithStamp(false)))
	assert.True(t, strings.HasPrefix(buf.String(), `\documentclass`), "unstamped documents start with the preamble")
}

// TestGenerate_DivisionDocument is the end-to-end check: type 'd', count 3
// yields one solutions page plus three distinct test pages, 90 problems
// each, and no sentinel ever rendered.
func TestGenerate_DivisionDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testgen.Generate(&buf,
		testgen.WithOperation(core.Division),
		testgen.WithTests(3),
		testgen.WithSeed(7),
		testgen.WithStamp(false),
	))
	doc := buf.String()

	assert.NotContains(t, doc, "-1", "sentinel operands must never render")
	assert.Equal(t, 4, strings.Count(doc, `\begin{tabular}`), "one solutions page + three test pages")
	assert.Equal(t, 5, strings.Count(doc, `\newpage`), "score tracker + four pages")
	assert.Equal(t, 4*9*core.NumDigits, strings.Count(doc, `$\div$ `), "90 divisor cells per page")
	assert.True(t, strings.HasSuffix(doc, `\end{document}`))

	// The numbering reset sits between the solutions page and the tests.
	reset := strings.Index(doc, `\setcounter{page}{1}`)
	firstPageEnd := strings.Index(doc, `\end{tabular}`)
	require.Greater(t, reset, firstPageEnd, "reset comes after the solutions page")

	// Pages: [0] solutions, [1..3] tests. Tests must be pairwise distinct
	// orderings (seeded, so this is stable).
	pages := tabularBlocks(t, doc)
	require.Len(t, pages, 4)
	assert.NotEqual(t, pages[1], pages[2])
	assert.NotEqual(t, pages[2], pages[3])
	assert.NotEqual(t, pages[1], pages[3])

	// Only the solutions page carries answer digits between clines.
	assert.Equal(t, 9, strings.Count(pages[0], `\cline{19-19} `)-strings.Count(pages[0], `\cline{19-19} \\ \\`),
		"solutions page answer rows are populated")
	for i, page := range pages[1:] {
		assert.Equal(t, 9, strings.Count(page, `\cline{19-19} \\ \\`), "test page %d answer rows stay blank", i+1)
	}
}

// tabularBlocks splits a document into its tabular environments.
func tabularBlocks(t *testing.T, doc string) []string {
	t.Helper()
	var blocks []string
	rest := doc
	for {
		start := strings.Index(rest, `\begin{tabular}`)
		if start < 0 {
			break
		}
		end := strings.Index(rest[start:], `\end{tabular}`)
		require.GreaterOrEqual(t, end, 0, "unterminated tabular block")
		blocks = append(blocks, rest[start:start+end])
		rest = rest[start+end:]
	}

	return blocks
}
