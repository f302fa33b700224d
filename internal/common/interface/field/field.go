// Released under an MIT license. See LICENSE.

// Package field defines the interface for a field descriptor.
package field

import (
	"math/big"
	"math/rand"

	"github.com/michaelmacinnis/fields/internal/common/interface/element"
)

// I (field) identifies an algebraic domain and acts as a factory for
// its values. Descriptors are stateless; a single value serves every
// caller.
type I interface {
	Name() string

	// Characteristic is always zero for the domains provided here.
	Characteristic() *big.Int

	One() element.I
	Zero() element.I

	FromInt64(n int64) element.I
	FromString(s string) (element.I, error)

	// Rand draws a value using the range [lo, hi]. How the range is
	// interpreted is up to the domain.
	Rand(r *rand.Rand, lo, hi int64) element.I
}
