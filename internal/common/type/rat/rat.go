// Released under an MIT license. See LICENSE.

// Package rat provides the field of fractions of the integers.
//
// A rational is held in lowest terms with a positive denominator and
// the sign carried by the numerator. Zero is always 0/1. Every
// operation that produces a rational re-derives the same reduction
// step on the numerator and denominator it has already computed,
// rather than routing through a shared constructor, so that no
// intermediate copies are made.
package rat

import (
	"errors"
	"math/big"
	"strings"

	"github.com/michaelmacinnis/fields/internal/common/fault"
	"github.com/michaelmacinnis/fields/internal/common/interface/element"
	"github.com/michaelmacinnis/fields/internal/common/interface/field"
	"github.com/michaelmacinnis/fields/internal/common/struct/expr"
)

const name = "rational"

//nolint:gochecknoglobals
var one = big.NewInt(1)

// T (rat) is an exact rational number.
type T struct {
	num big.Int
	den big.Int
}

type rat = T

// Int creates a rat with the value of the integer n.
func Int(n *big.Int) *rat {
	z := &rat{}

	z.num.Set(n)
	z.den.Set(one)

	return z
}

// Int64 creates a rat with the value of the integer n.
func Int64(n int64) *rat {
	z := &rat{}

	z.num.SetInt64(n)
	z.den.Set(one)

	return z
}

// New creates a rat from a string of the form "n" or "n/d".
func New(s string) (*rat, error) {
	ns, ds, quotient := strings.Cut(s, "/")

	var n, d big.Int

	if _, ok := n.SetString(ns, 10); !ok {
		return nil, errors.New("'" + s + "' is not a rational constant")
	}

	if !quotient {
		return Int(&n), nil
	}

	if _, ok := d.SetString(ds, 10); !ok {
		return nil, errors.New("'" + s + "' is not a rational constant")
	}

	return Pair(&n, &d)
}

// Pair creates the rat n/d in lowest terms. The denominator d must be
// nonzero.
func Pair(n, d *big.Int) (*rat, error) {
	if d.Sign() == 0 {
		return nil, fault.DivisionByZero
	}

	z := &rat{}

	z.num.Set(n)
	z.den.Set(d)

	if z.den.Sign() < 0 {
		z.num.Neg(&z.num)
		z.den.Neg(&z.den)
	}

	// Reduce: divide out the gcd, then pin zero to 0/1.
	g := new(big.Int).GCD(nil, nil, &z.num, &z.den)
	if z.den.Cmp(one) != 0 && z.num.Sign() != 0 {
		z.num.Quo(&z.num, g)
		z.den.Quo(&z.den, g)
	}

	if z.num.Sign() == 0 {
		z.den.Set(one)
	}

	return z, nil
}

// The rat type is a field element.

// Add returns the sum of the rats a and c.
func (a *rat) Add(c element.I) element.I {
	b := To(c)

	z := &rat{}

	var t big.Int

	z.num.Mul(&a.num, &b.den)
	t.Mul(&b.num, &a.den)
	z.num.Add(&z.num, &t)
	z.den.Mul(&a.den, &b.den)

	// Reduce: divide out the gcd, then pin zero to 0/1.
	g := new(big.Int).GCD(nil, nil, &z.num, &z.den)
	if z.den.Cmp(one) != 0 && z.num.Sign() != 0 {
		z.num.Quo(&z.num, g)
		z.den.Quo(&z.den, g)
	}

	if z.num.Sign() == 0 {
		z.den.Set(one)
	}

	return z
}

// Cmp compares the rats a and b. It returns -1, 0, or 1.
func (a *rat) Cmp(b *T) int {
	var u, v big.Int

	u.Mul(&a.num, &b.den)
	v.Mul(&b.num, &a.den)

	return u.Cmp(&v)
}

// Copy returns a new rat with the same value as a.
func (a *rat) Copy() element.I {
	z := &rat{}

	z.num.Set(&a.num)
	z.den.Set(&a.den)

	return z
}

// Den returns a copy of the denominator of a.
func (a *rat) Den() *big.Int {
	return new(big.Int).Set(&a.den)
}

// Div returns the quotient of the rats a and c. The divisor c must be
// nonzero.
func (a *rat) Div(c element.I) (element.I, error) {
	b := To(c)

	if b.num.Sign() == 0 {
		return nil, fault.DivisionByZero
	}

	z := &rat{}

	z.num.Mul(&a.num, &b.den)
	z.den.Mul(&a.den, &b.num)

	if z.den.Sign() < 0 {
		z.num.Neg(&z.num)
		z.den.Neg(&z.den)
	}

	// Reduce: divide out the gcd, then pin zero to 0/1.
	g := new(big.Int).GCD(nil, nil, &z.num, &z.den)
	if z.den.Cmp(one) != 0 && z.num.Sign() != 0 {
		z.num.Quo(&z.num, g)
		z.den.Quo(&z.den, g)
	}

	if z.num.Sign() == 0 {
		z.den.Set(one)
	}

	return z, nil
}

// Divides reports whether c divides a. Every nonzero rational divides
// every other, so this fails only when c is zero.
func (a *rat) Divides(c element.I) (element.I, bool) {
	if To(c).num.Sign() == 0 {
		return zero(), false
	}

	q, err := a.Div(c)
	if err != nil {
		panic("unreachable")
	}

	return q, true
}

// Equal returns true if c is a rat with the same value as a.
func (a *rat) Equal(c element.I) bool {
	return Is(c) && a.Cmp(To(c)) == 0
}

// Exp returns e raised to the power a. Only exp(0), which stays inside
// the rationals, is defined.
func (a *rat) Exp() (element.I, error) {
	if a.num.Sign() != 0 {
		return nil, fault.Domain
	}

	return Int64(1), nil
}

// Expr returns the structured form of a: a value token for an integer,
// a quotient of two value tokens otherwise.
func (a *rat) Expr() *expr.T {
	if a.den.Cmp(one) == 0 {
		return expr.Value(a.num.String())
	}

	return expr.Div(expr.Value(a.num.String()), expr.Value(a.den.String()))
}

// GCD returns the greatest common divisor of the rats a and c:
// gcd(p/q, r/s) is gcd(p*s, q*r)/(q*s), which is zero only when both
// a and c are zero.
func (a *rat) GCD(c element.I) element.I {
	b := To(c)

	z := &rat{}

	var u, v big.Int

	u.Mul(&a.num, &b.den)
	v.Mul(&a.den, &b.num)
	z.num.GCD(nil, nil, &u, &v)
	z.den.Mul(&a.den, &b.den)

	// Reduce: divide out the gcd, then pin zero to 0/1.
	g := new(big.Int).GCD(nil, nil, &z.num, &z.den)
	if z.den.Cmp(one) != 0 && z.num.Sign() != 0 {
		z.num.Quo(&z.num, g)
		z.den.Quo(&z.den, g)
	}

	if z.num.Sign() == 0 {
		z.den.Set(one)
	}

	return z
}

// GCDX returns g, s, and t with g = s*a + t*c. In a field any nonzero
// element is a unit, so a trivial witness suffices: s = g/a when a is
// nonzero, else t = g/c when c is nonzero, else all three are zero.
// This is not the integer extended-gcd algorithm.
func (a *rat) GCDX(c element.I) (g, s, t element.I) {
	b := To(c)

	g = a.GCD(c)

	switch {
	case a.num.Sign() != 0:
		q, err := g.Div(a)
		if err != nil {
			panic("unreachable")
		}

		s, t = q, zero()
	case b.num.Sign() != 0:
		q, err := g.Div(c)
		if err != nil {
			panic("unreachable")
		}

		s, t = zero(), q
	default:
		s, t = zero(), zero()
	}

	return g, s, t
}

// Inv returns the reciprocal of the rat a. The rat a must be nonzero.
func (a *rat) Inv() (element.I, error) {
	if a.num.Sign() == 0 {
		return nil, fault.DivisionByZero
	}

	z := &rat{}

	z.num.Set(&a.den)
	z.den.Set(&a.num)

	if z.den.Sign() < 0 {
		z.num.Neg(&z.num)
		z.den.Neg(&z.den)
	}

	return z, nil
}

// IsOne returns true if a is one.
func (a *rat) IsOne() bool {
	return a.num.Cmp(one) == 0 && a.den.Cmp(one) == 0
}

// IsSquare returns true if both the numerator and denominator of a are
// perfect squares.
func (a *rat) IsSquare() bool {
	if _, ok := root(&a.num); !ok {
		return false
	}

	_, ok := root(&a.den)

	return ok
}

// IsZero returns true if a is zero.
func (a *rat) IsZero() bool {
	return a.num.Sign() == 0
}

// Log returns the natural logarithm of a. Only log(1), which stays
// inside the rationals, is defined.
func (a *rat) Log() (element.I, error) {
	if !a.IsOne() {
		return nil, fault.Domain
	}

	return zero(), nil
}

// Mul returns the product of the rats a and c.
func (a *rat) Mul(c element.I) element.I {
	b := To(c)

	z := &rat{}

	z.num.Mul(&a.num, &b.num)
	z.den.Mul(&a.den, &b.den)

	// Reduce: divide out the gcd, then pin zero to 0/1.
	g := new(big.Int).GCD(nil, nil, &z.num, &z.den)
	if z.den.Cmp(one) != 0 && z.num.Sign() != 0 {
		z.num.Quo(&z.num, g)
		z.den.Quo(&z.den, g)
	}

	if z.num.Sign() == 0 {
		z.den.Set(one)
	}

	return z
}

// Name returns the type name for the rat a.
func (a *rat) Name() string {
	return name
}

// Neg returns the negation of the rat a.
func (a *rat) Neg() element.I {
	z := &rat{}

	z.num.Neg(&a.num)
	z.den.Set(&a.den)

	return z
}

// Num returns a copy of the numerator of a.
func (a *rat) Num() *big.Int {
	return new(big.Int).Set(&a.num)
}

// Sqrt returns the square root of the rat a, computed on the numerator
// and denominator independently. It fails unless both are perfect
// squares.
func (a *rat) Sqrt() (element.I, error) {
	n, ok := root(&a.num)
	if !ok {
		return nil, fault.NotSquare
	}

	d, ok := root(&a.den)
	if !ok {
		return nil, fault.NotSquare
	}

	// The roots of two coprime perfect squares are coprime.
	z := &rat{}

	z.num.Set(n)
	z.den.Set(d)

	return z, nil
}

// SqrtUnchecked is Sqrt without the perfect-square check. For input
// that is not a square of a rational the result is unspecified.
func (a *rat) SqrtUnchecked() element.I {
	z := &rat{}

	var t big.Int

	t.Abs(&a.num)
	z.num.Sqrt(&t)
	z.den.Sqrt(&a.den)

	// Reduce: divide out the gcd, then pin zero to 0/1.
	g := new(big.Int).GCD(nil, nil, &z.num, &z.den)
	if z.den.Cmp(one) != 0 && z.num.Sign() != 0 {
		z.num.Quo(&z.num, g)
		z.den.Quo(&z.den, g)
	}

	if z.num.Sign() == 0 {
		z.den.Set(one)
	}

	return z
}

// String returns the text of the rat a.
func (a *rat) String() string {
	if a.den.Cmp(one) == 0 {
		return a.num.String()
	}

	return a.num.String() + "/" + a.den.String()
}

// Sub returns the difference of the rats a and c.
func (a *rat) Sub(c element.I) element.I {
	b := To(c)

	z := &rat{}

	var t big.Int

	z.num.Mul(&a.num, &b.den)
	t.Mul(&b.num, &a.den)
	z.num.Sub(&z.num, &t)
	z.den.Mul(&a.den, &b.den)

	// Reduce: divide out the gcd, then pin zero to 0/1.
	g := new(big.Int).GCD(nil, nil, &z.num, &z.den)
	if z.den.Cmp(one) != 0 && z.num.Sign() != 0 {
		z.num.Quo(&z.num, g)
		z.den.Quo(&z.den, g)
	}

	if z.num.Sign() == 0 {
		z.den.Set(one)
	}

	return z
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

// root returns the integer square root of x and whether x is a perfect
// square.
func root(x *big.Int) (*big.Int, bool) {
	if x.Sign() < 0 {
		return nil, false
	}

	r := new(big.Int).Sqrt(x)

	var c big.Int
	c.Mul(r, r)

	return r, c.Cmp(x) == 0
}

func zero() *rat {
	z := &rat{}

	z.den.Set(one)

	return z
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The rat type is a field element.
	_ = element.I(&t)

	// The rat Field is a field descriptor.
	_ = field.I(Field{})
}
