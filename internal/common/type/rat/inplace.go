// Released under an MIT license. See LICENSE.

package rat

import (
	"math/big"

	"github.com/michaelmacinnis/fields/internal/common/interface/element"
)

// The mutating operations below overwrite the storage of their
// receiver. They exist so that a caller with exclusive access to a
// value can run a long accumulation without allocating on every step.
// A receiver that aliases an operand is detected and handled; none of
// these operations can fail on values with a valid (nonzero, positive)
// denominator.

// AddEq adds the rat c to a, in place.
func (a *rat) AddEq(c element.I) element.I {
	b := To(c)

	if a == b {
		// Doubling in place. When the denominator is even, halving
		// it gives the same value without a gcd pass to remove the
		// factor of two. The numerator stays coprime to it either
		// way.
		if a.den.Bit(0) == 0 {
			a.den.Rsh(&a.den, 1)
		} else {
			a.num.Lsh(&a.num, 1)
		}

		return a
	}

	var t big.Int

	t.Mul(&b.num, &a.den)
	a.num.Mul(&a.num, &b.den)
	a.num.Add(&a.num, &t)
	a.den.Mul(&a.den, &b.den)

	// Reduce: divide out the gcd, then pin zero to 0/1.
	g := new(big.Int).GCD(nil, nil, &a.num, &a.den)
	if a.den.Cmp(one) != 0 && a.num.Sign() != 0 {
		a.num.Quo(&a.num, g)
		a.den.Quo(&a.den, g)
	}

	if a.num.Sign() == 0 {
		a.den.Set(one)
	}

	return a
}

// AddMul adds the product b*c to a, holding the product in scratch.
// When scratch is nil or is a itself, a temporary stands in for it.
func (a *rat) AddMul(b, c, scratch element.I) element.I {
	var s *rat

	if scratch != nil {
		s = To(scratch)
	}

	if s == nil || s == a {
		s = zero()
	}

	s.SetMul(b, c)

	return a.AddEq(s)
}

// SetAdd computes the sum of the rats b and c into a's storage.
func (a *rat) SetAdd(bi, ci element.I) element.I {
	b, c := To(bi), To(ci)

	// Writing the first cross product into a would corrupt an
	// aliased operand, so route those cases through AddEq.
	if a == b {
		return a.AddEq(c)
	}

	if a.Cmp(c) == 0 {
		return a.AddEq(b)
	}

	var t big.Int

	a.num.Mul(&b.num, &c.den)
	t.Mul(&c.num, &b.den)
	a.num.Add(&a.num, &t)
	a.den.Mul(&b.den, &c.den)

	// Reduce: divide out the gcd, then pin zero to 0/1.
	g := new(big.Int).GCD(nil, nil, &a.num, &a.den)
	if a.den.Cmp(one) != 0 && a.num.Sign() != 0 {
		a.num.Quo(&a.num, g)
		a.den.Quo(&a.den, g)
	}

	if a.num.Sign() == 0 {
		a.den.Set(one)
	}

	return a
}

// SetMul computes the product of the rats b and c into a's storage.
// Each component of b and c is read exactly once before the matching
// component of a is written, so any aliasing is harmless.
func (a *rat) SetMul(bi, ci element.I) element.I {
	b, c := To(bi), To(ci)

	a.num.Mul(&b.num, &c.num)
	a.den.Mul(&b.den, &c.den)

	// Reduce: divide out the gcd, then pin zero to 0/1.
	g := new(big.Int).GCD(nil, nil, &a.num, &a.den)
	if a.den.Cmp(one) != 0 && a.num.Sign() != 0 {
		a.num.Quo(&a.num, g)
		a.den.Quo(&a.den, g)
	}

	if a.num.Sign() == 0 {
		a.den.Set(one)
	}

	return a
}

// SetZero overwrites a with zero. The denominator is only touched when
// it is not already one.
func (a *rat) SetZero() element.I {
	a.num.SetInt64(0)

	if a.den.Cmp(one) != 0 {
		a.den.Set(one)
	}

	return a
}
