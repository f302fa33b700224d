// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"

	"github.com/michaelmacinnis/fields/internal/common/interface/element"
	"github.com/michaelmacinnis/fields/internal/common/validate"
)

//nolint:gochecknoglobals
var functions = map[string]func(*engine, []element.I) (element.I, error){
	"divides":  divides,
	"exp":      exp,
	"gcd":      gcd,
	"inv":      inv,
	"issquare": issquare,
	"log":      logarithm,
	"sqrt":     sqrt,
	"sqrtu":    sqrtu,
}

func divides(e *engine, args []element.I) (element.I, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return nil, err
	}

	q, ok := args[0].Divides(args[1])
	if !ok {
		return nil, errors.New("does not divide")
	}

	return q, nil
}

func exp(e *engine, args []element.I) (element.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return args[0].Exp()
}

func gcd(e *engine, args []element.I) (element.I, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return nil, err
	}

	return args[0].GCD(args[1]), nil
}

func inv(e *engine, args []element.I) (element.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return args[0].Inv()
}

func issquare(e *engine, args []element.I) (element.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	if args[0].IsSquare() {
		return e.domain.One(), nil
	}

	return e.domain.Zero(), nil
}

func logarithm(e *engine, args []element.I) (element.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return args[0].Log()
}

func sqrt(e *engine, args []element.I) (element.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return args[0].Sqrt()
}

func sqrtu(e *engine, args []element.I) (element.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return args[0].SqrtUnchecked(), nil
}
