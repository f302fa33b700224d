// Released under an MIT license. See LICENSE.

package flt

import (
	"errors"
	"math/big"
	"math/rand"

	"github.com/michaelmacinnis/fields/internal/common/interface/element"
)

// Field is the descriptor for a floating-point domain. Every value it
// creates shares the precision and rounding mode given to NewField.
type Field struct {
	mode big.RoundingMode
	prec uint
}

// NewField creates a descriptor for floats with prec bits of mantissa,
// rounded according to mode.
func NewField(prec uint, mode big.RoundingMode) Field {
	return Field{mode: mode, prec: prec}
}

// Characteristic returns zero. No sum of ones is zero here.
func (Field) Characteristic() *big.Int {
	return new(big.Int)
}

// FromInt64 creates a flt with the value of the integer n.
func (f Field) FromInt64(n int64) element.I {
	return (*flt)(f.make().SetInt64(n))
}

// FromString creates a flt from the text s.
func (f Field) FromString(s string) (element.I, error) {
	z, ok := f.make().SetString(s)
	if !ok {
		return nil, errors.New("'" + s + "' is not a float constant")
	}

	return (*flt)(z), nil
}

// Mode returns the rounding mode of this field's values.
func (f Field) Mode() big.RoundingMode {
	return f.mode
}

// Name returns the name of this field.
func (Field) Name() string {
	return name
}

// One returns one.
func (f Field) One() element.I {
	return f.FromInt64(1)
}

// Prec returns the precision, in mantissa bits, of this field's values.
func (f Field) Prec() uint {
	return f.prec
}

// Rand draws a flt uniformly from [lo, hi) by interpolating a draw
// from [0, 1): lo + u*(hi-lo).
func (f Field) Rand(r *rand.Rand, lo, hi int64) element.I {
	z := f.make().SetInt64(lo)

	u := f.make().SetFloat64(r.Float64())
	u.Mul(u, f.make().SetInt64(hi-lo))

	z.Add(z, u)

	return (*flt)(z)
}

// Zero returns zero.
func (f Field) Zero() element.I {
	return (*flt)(f.make())
}

func (f Field) make() *big.Float {
	return new(big.Float).SetPrec(f.prec).SetMode(f.mode)
}
