// Released under an MIT license. See LICENSE.

// Package flt provides a floating-point domain.
//
// Values carry a precision and rounding mode fixed when they are
// created, which every operation on them inherits. There is no
// normalization step here; the structure of the rational domain is
// mirrored, but trivially.
package flt

import (
	"math/big"

	"github.com/michaelmacinnis/fields/internal/common/fault"
	"github.com/michaelmacinnis/fields/internal/common/interface/element"
	"github.com/michaelmacinnis/fields/internal/common/interface/field"
	"github.com/michaelmacinnis/fields/internal/common/struct/expr"
)

const name = "float"

// T (flt) wraps Go's big.Float type.
type T big.Float

type flt = T

// The flt type is a field element.

// Add returns the sum of the flts a and c.
func (a *flt) Add(c element.I) element.I {
	z := like(a)

	z.Add(a.float(), To(c).float())

	return (*flt)(z)
}

// Copy returns a new flt with the same value, precision, and rounding
// mode as a.
func (a *flt) Copy() element.I {
	z := like(a)

	z.Set(a.float())

	return (*flt)(z)
}

// Div returns the quotient of the flts a and c. The divisor c must be
// nonzero.
func (a *flt) Div(c element.I) (element.I, error) {
	b := To(c)

	if b.float().Sign() == 0 {
		return nil, fault.DivisionByZero
	}

	z := like(a)

	z.Quo(a.float(), b.float())

	return (*flt)(z), nil
}

// Divides reports whether c divides a. Every nonzero float divides
// every other, so this fails only when c is zero.
func (a *flt) Divides(c element.I) (element.I, bool) {
	q, err := a.Div(c)
	if err != nil {
		return (*flt)(like(a)), false
	}

	return q, true
}

// Equal returns true if c is a flt with the same value as a.
func (a *flt) Equal(c element.I) bool {
	return Is(c) && a.float().Cmp(To(c).float()) == 0
}

// Exp returns e raised to the power a. Only exp(0) is defined.
func (a *flt) Exp() (element.I, error) {
	if a.float().Sign() != 0 {
		return nil, fault.Domain
	}

	return (*flt)(like(a).SetInt64(1)), nil
}

// Expr returns the structured form of a: a single value token.
func (a *flt) Expr() *expr.T {
	return expr.Value(a.String())
}

// GCD returns zero if the flts a and c are both exactly zero, and one
// otherwise.
func (a *flt) GCD(c element.I) element.I {
	z := like(a)

	if a.float().Sign() != 0 || To(c).float().Sign() != 0 {
		z.SetInt64(1)
	}

	return (*flt)(z)
}

// GCDX returns g, s, and t with g = s*a + t*c, using the trivial field
// witness: s = g/a when a is nonzero, else t = g/c when c is nonzero,
// else all three are zero.
func (a *flt) GCDX(c element.I) (g, s, t element.I) {
	b := To(c)

	g = a.GCD(c)

	switch {
	case a.float().Sign() != 0:
		q, err := g.Div(a)
		if err != nil {
			panic("unreachable")
		}

		s, t = q, (*flt)(like(a))
	case b.float().Sign() != 0:
		q, err := g.Div(c)
		if err != nil {
			panic("unreachable")
		}

		s, t = (*flt)(like(a)), q
	default:
		s, t = (*flt)(like(a)), (*flt)(like(a))
	}

	return g, s, t
}

// Inv returns the reciprocal of the flt a. The flt a must be nonzero.
func (a *flt) Inv() (element.I, error) {
	if a.float().Sign() == 0 {
		return nil, fault.DivisionByZero
	}

	z := like(a)

	z.Quo(like(a).SetInt64(1), a.float())

	return (*flt)(z), nil
}

// IsOne returns true if a is one.
func (a *flt) IsOne() bool {
	return a.float().Cmp(big.NewFloat(1)) == 0
}

// IsSquare returns true if a is the square of some float, that is, if
// a is not negative.
func (a *flt) IsSquare() bool {
	return a.float().Sign() >= 0
}

// IsZero returns true if a is zero.
func (a *flt) IsZero() bool {
	return a.float().Sign() == 0
}

// Log returns the natural logarithm of a. Only log(1) is defined.
func (a *flt) Log() (element.I, error) {
	if !a.IsOne() {
		return nil, fault.Domain
	}

	return (*flt)(like(a)), nil
}

// Mul returns the product of the flts a and c.
func (a *flt) Mul(c element.I) element.I {
	z := like(a)

	z.Mul(a.float(), To(c).float())

	return (*flt)(z)
}

// Name returns the type name for the flt a.
func (a *flt) Name() string {
	return name
}

// Neg returns the negation of the flt a.
func (a *flt) Neg() element.I {
	z := like(a)

	z.Neg(a.float())

	return (*flt)(z)
}

// Sqrt returns the square root of the flt a. A negative argument is
// handed to the underlying square root as is; its fault is not
// intercepted.
func (a *flt) Sqrt() (element.I, error) {
	return a.SqrtUnchecked(), nil
}

// SqrtUnchecked is Sqrt. Floats have no perfect-square check to skip.
func (a *flt) SqrtUnchecked() element.I {
	z := like(a)

	z.Sqrt(a.float())

	return (*flt)(z)
}

// String returns the text of the flt a.
func (a *flt) String() string {
	return a.float().Text('g', -1)
}

// Sub returns the difference of the flts a and c.
func (a *flt) Sub(c element.I) element.I {
	z := like(a)

	z.Sub(a.float(), To(c).float())

	return (*flt)(z)
}

// The mutating operations below delegate to the underlying primitives,
// which round at the destination's precision and mode and tolerate any
// aliasing between destination and operands.

// AddEq adds the flt c to a, in place.
func (a *flt) AddEq(c element.I) element.I {
	f := a.float()

	f.Add(f, To(c).float())

	return a
}

// AddMul adds the product b*c to a, holding the product in scratch.
// The underlying library has no fused multiply-add, so the product is
// rounded once at a's precision and mode before it is accumulated.
func (a *flt) AddMul(b, c, scratch element.I) element.I {
	f := a.float()

	var s *big.Float

	if scratch != nil && To(scratch) != a {
		s = To(scratch).float()
	} else {
		s = new(big.Float)
	}

	s.SetPrec(f.Prec())
	s.SetMode(f.Mode())

	s.Mul(To(b).float(), To(c).float())
	f.Add(f, s)

	return a
}

// SetAdd computes the sum of the flts b and c into a's storage.
func (a *flt) SetAdd(b, c element.I) element.I {
	a.float().Add(To(b).float(), To(c).float())

	return a
}

// SetMul computes the product of the flts b and c into a's storage.
func (a *flt) SetMul(b, c element.I) element.I {
	a.float().Mul(To(b).float(), To(c).float())

	return a
}

// SetZero overwrites a with zero, keeping its precision and mode.
func (a *flt) SetZero() element.I {
	a.float().SetInt64(0)

	return a
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c element.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; otherwise it panics.
func To(c element.I) *T {
	if a, ok := c.(*T); ok {
		return a
	}

	panic(c.Name() + " is not a " + name)
}

func (a *flt) float() *big.Float {
	return (*big.Float)(a)
}

// like returns a fresh zero with the precision and rounding mode of a.
func like(a *flt) *big.Float {
	f := a.float()

	return new(big.Float).SetPrec(f.Prec()).SetMode(f.Mode())
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The flt type is a field element.
	_ = element.I(&t)

	// The flt Field is a field descriptor.
	_ = field.I(Field{})
}
