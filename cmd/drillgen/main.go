// Command drillgen writes a LaTeX document of single-digit arithmetic
// practice tests: score-tracking pages, one solutions page, and N shuffled
// test pages. Compile the output with any LaTeX toolchain to print it.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/drillgen/core"
	"github.com/katalvlaran/drillgen/testgen"
)

var (
	numTests = flag.Int("n", testgen.DefaultTests, "number of tests to create (1-999); a scoring page fits 60 records")
	outBase  = flag.String("o", "tests", "output file base name ('.tex' is appended automatically)")
	testType = flag.String("t", "a", "test type: 'a' addition, 'm' multiplication, 's' subtraction, 'd' division")
	preview  = flag.Bool("p", false, "print the canonical problem table to stdout instead of writing a document")
	seed     = flag.Int64("seed", 0, "random seed for reproducible page orderings (0 uses the clock)")
)

func usage() {
	prog := os.Args[0]
	fmt.Fprintf(flag.CommandLine.Output(), `
usage: %s [-h] [-n num_tests] [-o output_file] [-t test_type] [-p] [-seed n]

  -h              Print this message.
  -n num_tests    The number of tests to create.
                  num_tests must be an integer between 1 and 999.
                  A scoring page fits 60 records.
                  Default value: 60
  -o output_file  The file in which to store the output.
                  '.tex' will automatically be added.
                  Default value: tests
  -t test_type    The type of test to create.
                  test_type is a single character indicating the type of
                  arithmetic operator to use in the tests:
                    'a' - Addition
                    'm' - Multiplication
                    's' - Subtraction
                    'd' - Division
                  Default value: a
  -p              Preview the canonical problem table on stdout and exit.
  -seed n         Seed the shuffle deterministically (0 = time-based).
`, prog)
}

// fail reports an argument error, reminds the usage, and exits non-zero.
func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	usage()
	os.Exit(1)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 0 {
		fail("unused arguments (%s)", strings.Join(flag.Args(), ", "))
	}
	if *numTests < testgen.MinTests || *numTests > testgen.MaxTests {
		fail("num_tests (%d) is not a positive integer between 1 and 999.", *numTests)
	}
	if len(*testType) != 1 {
		fail("test_type (%s) is not one of 'a', 'm', 's', or 'd'.", *testType)
	}
	op, err := core.ParseOp((*testType)[0])
	if err != nil {
		fail("test_type (%s) is not one of 'a', 'm', 's', or 'd'.", *testType)
	}

	if *preview {
		if err = testgen.Preview(os.Stdout, op); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	opts := []testgen.Option{
		testgen.WithTests(*numTests),
		testgen.WithOperation(op),
	}
	if *seed != 0 {
		opts = append(opts, testgen.WithSeed(*seed))
	}

	name := *outBase + ".tex"
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unable to open output file %s.\n", name)
		os.Exit(1)
	}

	if err = testgen.Generate(out, opts...); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err = out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: closing %s: %v\n", name, err)
		os.Exit(1)
	}
}
