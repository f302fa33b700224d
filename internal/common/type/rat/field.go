// Released under an MIT license. See LICENSE.

package rat

import (
	"math/big"
	"math/rand"

	"github.com/michaelmacinnis/fields/internal/common/interface/element"
)

// Field is the descriptor for the field of fractions of the integers.
// It is stateless; the zero value is ready to use.
type Field struct{}

// BaseRing returns the name of the ring this field is the fraction
// field of.
func (Field) BaseRing() string {
	return "integer"
}

// Characteristic returns zero. No sum of ones is zero here.
func (Field) Characteristic() *big.Int {
	return new(big.Int)
}

// FromInt64 creates the rat n/1.
func (Field) FromInt64(n int64) element.I {
	return Int64(n)
}

// FromString creates a rat from a string of the form "n" or "n/d".
func (Field) FromString(s string) (element.I, error) {
	return New(s)
}

// Name returns the name of this field.
func (Field) Name() string {
	return name
}

// One returns the rat 1/1.
func (Field) One() element.I {
	return Int64(1)
}

// Rand draws a rat whose numerator and denominator both come from the
// range [lo, hi]. Denominator candidates are drawn until one is
// nonzero, so the range must contain a nonzero integer.
func (Field) Rand(r *rand.Rand, lo, hi int64) element.I {
	span := hi - lo + 1

	var d int64
	for d == 0 {
		d = lo + r.Int63n(span)
	}

	n := lo + r.Int63n(span)

	z, err := Pair(big.NewInt(n), big.NewInt(d))
	if err != nil {
		panic("unreachable")
	}

	return z
}

// Zero returns the rat 0/1.
func (Field) Zero() element.I {
	return zero()
}
