// Released under an MIT license. See LICENSE.

// Package element defines the interface for the values of a field.
//
// Generic algorithms (polynomial evaluation, matrix elimination, and
// the like) are written against this interface and instantiated over
// any domain that provides it.
package element

import (
	"github.com/michaelmacinnis/fields/internal/common/struct/expr"
)

// I (element) is a value belonging to some field.
//
// The Set* and *Eq methods mutate their receiver. They exist so that
// algorithms with a hot loop can reuse a destination value instead of
// allocating a result on every step. A destination may alias any of
// its operands within a single call; sharing a destination between
// concurrent calls is the caller's problem.
type I interface {
	Copy() I
	Equal(b I) bool
	Expr() *expr.T
	IsOne() bool
	IsZero() bool
	Name() string
	String() string

	Add(b I) I
	Div(b I) (I, error)
	Inv() (I, error)
	Mul(b I) I
	Neg() I
	Sub(b I) I

	// Divides reports whether b divides the receiver and, when it
	// does, returns the quotient.
	Divides(b I) (I, bool)

	// GCD returns zero only when the receiver and b are both zero;
	// which nonzero divisor it returns otherwise is the domain's
	// convention. GCDX returns g, s, and t with g = s*a + t*b.
	GCD(b I) I
	GCDX(b I) (g, s, t I)

	IsSquare() bool
	Sqrt() (I, error)
	SqrtUnchecked() I

	// Exp and Log are defined only at zero and one respectively.
	Exp() (I, error)
	Log() (I, error)

	AddEq(b I) I
	AddMul(b, c, scratch I) I
	SetAdd(b, c I) I
	SetMul(b, c I) I
	SetZero() I
}
