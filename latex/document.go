package latex

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// preamble is the fixed document head: article class, one-inch margins, and
// the fancyhdr setup that keeps headers empty until the footer box is armed.
const preamble = `\documentclass[12pt, letterpaper]{article}
\usepackage[margin=1in]{geometry}
\usepackage{multicol}
\usepackage{setspace}
\usepackage{fancyhdr}
\pagestyle{fancy}
\renewcommand{\headrulewidth}{0pt}
\fancyhf{}
\begin{document}
`

// scoreHead opens the two-column score-tracking block.
const scoreHead = `\begin{multicols}{2}
\setlength{\columnseprule}{0.5pt}
{\setstretch{1.5}
\noindent
`

// scoreTail closes \setstretch, the multicols block, and the page.
const scoreTail = "}\n\\end{multicols}\n\\newpage\n"

// scoreBlanks is the time/correct fill-in tail of one score line.
const scoreBlanks = `. Time: \underline{\hspace{6em}}\quad Correct: \underline{\hspace{3em}}`

// pageCounterReset restarts page numbering after the preface pages and arms
// the framed page-number box in the footer of every test page.
const pageCounterReset = "\\setcounter{page}{1}\n\\lfoot{\\framebox{\\makebox[\\totalheight]{\\thepage}}}\n"

// documentEnd terminates the document. No trailing newline: nothing may
// follow it.
const documentEnd = `\end{document}`

// Preamble writes the fixed document head. A non-empty stamp is emitted
// first as a single LaTeX comment line, e.g. "% drillgen <run-id>"; TeX
// ignores it, humans and tests can trace the producing run.
func Preamble(w io.Writer, stamp string) error {
	if w == nil {
		return ErrNilWriter
	}

	var b strings.Builder
	if stamp != "" {
		b.WriteString("% ")
		b.WriteString(stamp)
		b.WriteByte('\n')
	}
	b.WriteString(preamble)

	_, err := io.WriteString(w, b.String())

	return err
}

// ScoreTracker writes the score-tracking section: one line per test with a
// time blank and a correct-count blank. Line numbers are left-padded with
// \phantom zeros so every line is as wide as the largest test number.
//
// Complexity: O(numTests).
func ScoreTracker(w io.Writer, numTests int) error {
	if w == nil {
		return ErrNilWriter
	}
	if numTests < 1 {
		return fmt.Errorf("latex: ScoreTracker(%d): %w", numTests, ErrBadCount)
	}

	width := digits(numTests)
	var b strings.Builder
	b.WriteString(scoreHead)
	for m := 1; m <= numTests; m++ {
		if pad := width - digits(m); pad > 0 {
			b.WriteString(`\phantom{`)
			b.WriteString(strings.Repeat("0", pad))
			b.WriteString(`}`)
		}
		b.WriteString(strconv.Itoa(m))
		b.WriteString(scoreBlanks)
		if m == numTests {
			b.WriteString("\\par\n")
		} else {
			b.WriteString("\\\\\n")
		}
	}
	b.WriteString(scoreTail)

	_, err := io.WriteString(w, b.String())

	return err
}

// PageCounterReset writes the numbering reset emitted between the solutions
// page and the first test page.
func PageCounterReset(w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}
	_, err := io.WriteString(w, pageCounterReset)

	return err
}

// DocumentEnd writes the document terminator.
func DocumentEnd(w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}
	_, err := io.WriteString(w, documentEnd)

	return err
}

// digits returns the decimal digit count of a positive n.
func digits(n int) int {
	return len(strconv.Itoa(n))
}
