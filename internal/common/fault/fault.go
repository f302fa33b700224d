// Released under an MIT license. See LICENSE.

// Package fault defines the error values shared by the numeric domains.
package fault

import (
	"errors"
)

// The three ways an operation on a field element can fail. Construction
// and exact division report DivisionByZero. A checked square root
// reports NotSquare. The exponential and logarithm report Domain for
// any point outside the single point where they are defined.
var (
	DivisionByZero = errors.New("division by zero")
	NotSquare      = errors.New("not a perfect square")
	Domain         = errors.New("argument outside domain")
)
