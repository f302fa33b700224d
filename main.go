// Released under an MIT license. See LICENSE.

// Fields is a calculator over exact rational numbers and
// arbitrary-precision floating point numbers.
//
// By default expressions are evaluated in the field of fractions of
// the integers, so that,
//
//	1/2 + 1/3
//
// is exactly 5/6, and stays 5/6 no matter how often it is multiplied.
// With the -f flag expressions are evaluated as floating point values
// with a fixed number of mantissa bits instead.
//
// For more detail, see: https://github.com/michaelmacinnis/fields
package main

import (
	"io"
	"math/big"
	"os"

	"github.com/michaelmacinnis/fields/internal/common/interface/field"
	"github.com/michaelmacinnis/fields/internal/common/type/flt"
	"github.com/michaelmacinnis/fields/internal/common/type/rat"
	"github.com/michaelmacinnis/fields/internal/engine"
	"github.com/michaelmacinnis/fields/internal/reader/lexer"
	"github.com/michaelmacinnis/fields/internal/reader/parser"
	"github.com/michaelmacinnis/fields/internal/system/options"
	"github.com/michaelmacinnis/fields/internal/ui"
)

func main() {
	options.Parse()

	var domain field.I = rat.Field{}
	if options.Float() {
		domain = flt.NewField(options.Precision(), big.ToNearestEven)
	}

	e := engine.New(domain)

	switch {
	case options.Command() != "":
		evaluate(e, "-c", options.Command())
	case options.Script() != "":
		b, err := os.ReadFile(options.Script())
		if err != nil {
			println(err.Error())
			os.Exit(1)
		}

		evaluate(e, options.Script(), string(b))
	case options.Interactive():
		ui.Run(e)
	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			println(err.Error())
			os.Exit(1)
		}

		evaluate(e, "stdin", string(b))
	}

	if e.Failed() {
		os.Exit(1)
	}
}

func evaluate(e *engine.T, name, text string) {
	l := lexer.New(name)

	l.Scan(text + "\n")

	parser.New(e.Evaluate, l.Token).Parse()
}
