// Released under an MIT license. See LICENSE.

package rat

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/michaelmacinnis/fields/internal/common/fault"
)

func mk(t *testing.T, n, d int64) *T {
	t.Helper()

	z, err := Pair(big.NewInt(n), big.NewInt(d))
	if err != nil {
		t.Fatalf("%d/%d: %s", n, d, err)
	}

	return z
}

func wellFormed(t *testing.T, a *T) {
	t.Helper()

	if a.den.Sign() <= 0 {
		t.Fatalf("%s: denominator not positive", a)
	}

	var g big.Int
	g.GCD(nil, nil, &a.num, &a.den)

	if a.num.Sign() == 0 {
		if a.den.Cmp(one) != 0 {
			t.Fatalf("%s: zero not canonical", a)
		}
	} else if g.Cmp(one) != 0 {
		t.Fatalf("%s: not in lowest terms", a)
	}
}

func TestNormalization(t *testing.T) {
	for _, c := range []struct {
		n, d int64
		s    string
	}{
		{4, 8, "1/2"},
		{-4, 8, "-1/2"},
		{4, -8, "-1/2"},
		{-4, -8, "1/2"},
		{0, 5, "0"},
		{7, 1, "7"},
		{21, 14, "3/2"},
	} {
		z := mk(t, c.n, c.d)

		wellFormed(t, z)

		if z.String() != c.s {
			t.Errorf("%d/%d: expected %s, got %s", c.n, c.d, c.s, z)
		}
	}
}

func TestZeroDenominator(t *testing.T) {
	_, err := Pair(big.NewInt(1), big.NewInt(0))
	if !errors.Is(err, fault.DivisionByZero) {
		t.Errorf("expected division by zero, got %v", err)
	}

	if _, err := New("3/0"); !errors.Is(err, fault.DivisionByZero) {
		t.Errorf("expected division by zero, got %v", err)
	}
}

func TestNew(t *testing.T) {
	z, err := New("-6/8")
	if err != nil {
		t.Fatal(err)
	}

	if z.String() != "-3/4" {
		t.Errorf("expected -3/4, got %s", z)
	}

	if _, err := New("seven"); err == nil {
		t.Error("expected an error for a non-numeric string")
	}
}

func TestIdentities(t *testing.T) {
	f := Field{}

	for _, a := range []*T{mk(t, 3, 4), mk(t, -7, 5), mk(t, 0, 1)} {
		if !a.Add(f.Zero()).Equal(a) {
			t.Errorf("%s + 0 != %s", a, a)
		}

		if !a.Mul(f.One()).Equal(a) {
			t.Errorf("%s * 1 != %s", a, a)
		}
	}
}

func TestDivRoundTrip(t *testing.T) {
	for _, c := range []struct{ an, ad, bn, bd int64 }{
		{3, 4, 2, 3},
		{-5, 6, 7, 2},
		{0, 1, 1, 3},
		{22, 7, -22, 7},
	} {
		a, b := mk(t, c.an, c.ad), mk(t, c.bn, c.bd)

		q, err := a.Div(b)
		if err != nil {
			t.Fatal(err)
		}

		wellFormed(t, To(q))

		if !q.Mul(b).Equal(a) {
			t.Errorf("(%s / %s) * %s != %s", a, b, b, a)
		}
	}

	if _, err := mk(t, 1, 2).Div(mk(t, 0, 1)); !errors.Is(err, fault.DivisionByZero) {
		t.Errorf("expected division by zero, got %v", err)
	}
}

func TestArithmetic(t *testing.T) {
	a, b := mk(t, 1, 2), mk(t, 1, 3)

	if s := a.Add(b).String(); s != "5/6" {
		t.Errorf("1/2 + 1/3: expected 5/6, got %s", s)
	}

	if s := a.Sub(b).String(); s != "1/6" {
		t.Errorf("1/2 - 1/3: expected 1/6, got %s", s)
	}

	if s := a.Mul(b).String(); s != "1/6" {
		t.Errorf("1/2 * 1/3: expected 1/6, got %s", s)
	}

	if s := mk(t, 2, 3).Add(mk(t, 1, 3)).String(); s != "1" {
		t.Errorf("2/3 + 1/3: expected 1, got %s", s)
	}

	if s := a.Neg().String(); s != "-1/2" {
		t.Errorf("-(1/2): expected -1/2, got %s", s)
	}

	v, err := mk(t, -3, 7).Inv()
	if err != nil {
		t.Fatal(err)
	}

	if s := v.String(); s != "-7/3" {
		t.Errorf("inv(-3/7): expected -7/3, got %s", s)
	}

	if _, err := mk(t, 0, 1).Inv(); !errors.Is(err, fault.DivisionByZero) {
		t.Errorf("expected division by zero, got %v", err)
	}
}

func TestGCD(t *testing.T) {
	z := mk(t, 0, 1).GCD(mk(t, 0, 1))

	wellFormed(t, To(z))

	if !z.IsZero() {
		t.Errorf("gcd(0, 0): expected 0, got %s", z)
	}

	// gcd(a/b, c/d) = gcd(ad, bc)/(bd), reduced.
	for _, c := range []struct {
		an, ad, bn, bd int64
		s              string
	}{
		{1, 2, 1, 3, "1/6"},
		{-4, 9, 2, 3, "2/9"},
		{5, 7, 5, 7, "5/7"},
		{4, 1, 6, 1, "2"},
		{1, 1, 1, 1, "1"},
	} {
		g := mk(t, c.an, c.ad).GCD(mk(t, c.bn, c.bd))

		wellFormed(t, To(g))

		if g.String() != c.s {
			t.Errorf("gcd(%d/%d, %d/%d): expected %s, got %s",
				c.an, c.ad, c.bn, c.bd, c.s, g)
		}
	}

	// With one operand zero the gcd is the other, sign discarded.
	if s := mk(t, 0, 1).GCD(mk(t, -5, 7)).String(); s != "5/7" {
		t.Errorf("gcd(0, -5/7): expected 5/7, got %s", s)
	}
}

func TestGCDX(t *testing.T) {
	for _, c := range []struct{ an, ad, bn, bd int64 }{
		{3, 4, 2, 5},
		{0, 1, 2, 5},
		{3, 4, 0, 1},
		{0, 1, 0, 1},
	} {
		a, b := mk(t, c.an, c.ad), mk(t, c.bn, c.bd)

		g, s, u := a.GCDX(b)

		if !s.Mul(a).Add(u.Mul(b)).Equal(g) {
			t.Errorf("gcdx(%s, %s): %s != %s*%s + %s*%s", a, b, g, s, a, u, b)
		}

		if a.IsZero() && b.IsZero() && !g.IsZero() {
			t.Errorf("gcdx(0, 0): expected 0, got %s", g)
		}
	}
}

func TestDivides(t *testing.T) {
	a := mk(t, 3, 4)

	if q, ok := a.Divides(mk(t, 0, 1)); ok || !q.IsZero() {
		t.Errorf("divides by zero: expected (0, false), got (%s, %v)", q, ok)
	}

	q, ok := a.Divides(mk(t, 2, 5))
	if !ok {
		t.Fatal("divides by a nonzero rational: expected true")
	}

	if s := q.String(); s != "15/8" {
		t.Errorf("(3/4) / (2/5): expected 15/8, got %s", s)
	}
}

func TestSqrt(t *testing.T) {
	if _, err := mk(t, 3, 4).Sqrt(); !errors.Is(err, fault.NotSquare) {
		t.Errorf("sqrt(3/4): expected not a perfect square, got %v", err)
	}

	if _, err := mk(t, -4, 9).Sqrt(); !errors.Is(err, fault.NotSquare) {
		t.Errorf("sqrt(-4/9): expected not a perfect square, got %v", err)
	}

	z, err := mk(t, 4, 9).Sqrt()
	if err != nil {
		t.Fatal(err)
	}

	if s := z.String(); s != "2/3" {
		t.Errorf("sqrt(4/9): expected 2/3, got %s", s)
	}

	if s := mk(t, 4, 9).SqrtUnchecked().String(); s != "2/3" {
		t.Errorf("unchecked sqrt(4/9): expected 2/3, got %s", s)
	}

	if !mk(t, 16, 25).IsSquare() {
		t.Error("16/25 is a square")
	}

	if mk(t, 3, 4).IsSquare() {
		t.Error("3/4 is not a square")
	}
}

func TestExpLog(t *testing.T) {
	z, err := mk(t, 0, 1).Exp()
	if err != nil {
		t.Fatal(err)
	}

	if !z.IsOne() {
		t.Errorf("exp(0): expected 1, got %s", z)
	}

	if _, err := mk(t, 2, 1).Exp(); !errors.Is(err, fault.Domain) {
		t.Errorf("exp(2): expected a domain error, got %v", err)
	}

	z, err = mk(t, 1, 1).Log()
	if err != nil {
		t.Fatal(err)
	}

	if !z.IsZero() {
		t.Errorf("log(1): expected 0, got %s", z)
	}

	if _, err := mk(t, 1, 2).Log(); !errors.Is(err, fault.Domain) {
		t.Errorf("log(1/2): expected a domain error, got %v", err)
	}
}

func TestExpr(t *testing.T) {
	n := mk(t, 1, 2).Expr()
	if !n.IsDiv() || n.Num().Value() != "1" || n.Den().Value() != "2" {
		t.Errorf("expected the quotient of 1 and 2, got %s", n)
	}

	n = mk(t, -3, 1).Expr()
	if n.IsDiv() || n.Value() != "-3" {
		t.Errorf("expected the value -3, got %s", n)
	}
}

func TestField(t *testing.T) {
	f := Field{}

	if f.Characteristic().Sign() != 0 {
		t.Error("expected characteristic 0")
	}

	if !f.Zero().IsZero() || !f.One().IsOne() {
		t.Error("malformed zero or one")
	}

	if s := f.FromInt64(-9).String(); s != "-9" {
		t.Errorf("expected -9, got %s", s)
	}

	v, err := f.FromString("10/4")
	if err != nil {
		t.Fatal(err)
	}

	if s := v.String(); s != "5/2" {
		t.Errorf("expected 5/2, got %s", s)
	}
}

func TestRand(t *testing.T) {
	f := Field{}
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		z := To(f.Rand(r, -9, 9))

		wellFormed(t, z)
	}
}
