// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	float       bool
	interactive bool
	precision   int
	script      string
	usage       = `fields - a calculator over exact rationals and big floats

Usage:
  fields [-f] [-p PREC] SCRIPT
  fields [-f] [-p PREC] -c COMMAND
  fields [-f] [-p PREC] [-s]
  fields -h
  fields -v

Arguments:
  SCRIPT  Path to a file of expressions, one per line.

Options:
  -c, --command=COMMAND   Evaluate the specified expression.
  -f, --float             Compute with floating point values instead of
                          exact rationals.
  -p, --precision=PREC    Mantissa bits for floating point [default: 53].
  -s, --stdin             Read expressions from stdin.
  -h, --help              Display this help.
  -v, --version           Print fields version.

If stdin is a TTY, and fields was invoked with no expression or script,
an interactive session is started. Otherwise expressions are read from
stdin.
`
)

func Command() string {
	return command
}

func Float() bool {
	return float
}

func Interactive() bool {
	return interactive
}

func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	if v, _ := opts.Bool("--version"); v {
		println("fields 0.2.0")
		os.Exit(0)
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	float, _ = opts.Bool("--float")

	precision, err = opts.Int("--precision")
	if err != nil || precision <= 0 {
		precision = 53
	}

	stdin, _ := opts.Bool("--stdin")

	if command == "" && script == "" && !stdin {
		interactive = isatty.IsTerminal(os.Stdin.Fd())
	}
}

func Precision() uint {
	return uint(precision)
}

func Script() string {
	return script
}
