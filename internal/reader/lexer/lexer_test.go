// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/michaelmacinnis/fields/internal/common/struct/token"
)

func collect(s string) []*token.T {
	l := New("test")

	l.Scan(s)

	ts := []*token.T{}

	for t := l.Token(); t != nil; t = l.Token() {
		ts = append(ts, t)
	}

	return ts
}

func match(t *testing.T, s string, expected ...string) {
	t.Helper()

	ts := collect(s)

	if len(ts) != len(expected) {
		t.Fatalf("scanning %q: expected %d tokens, got %v", s, len(expected), ts)
	}

	for i, v := range expected {
		if ts[i].Value() != v {
			t.Errorf("scanning %q: expected %q, got %q", s, v, ts[i].Value())
		}
	}
}

func TestOperators(t *testing.T) {
	match(t, "(1+2)*3\n", "(", "1", "+", "2", ")", "*", "3", "\n")
}

func TestRational(t *testing.T) {
	match(t, "3/4 + 1/6\n", "3", "/", "4", "+", "1", "/", "6", "\n")
}

func TestDecimal(t *testing.T) {
	match(t, "1.5e2 - .5\n", "1.5e2", "-", ".5", "\n")
}

func TestSymbols(t *testing.T) {
	match(t, "x1 = gcd(a, b)\n", "x1", "=", "gcd", "(", "a", ",", "b", ")", "\n")
}

func TestComment(t *testing.T) {
	match(t, "1 # the loneliest number\n2\n", "1", "\n", "2", "\n")
}

func TestClasses(t *testing.T) {
	ts := collect("x + 1\n")

	if len(ts) != 4 {
		t.Fatalf("expected 4 tokens, got %v", ts)
	}

	if !ts[0].Is(token.Symbol) || !ts[1].Is('+') || !ts[2].Is(token.Number) || !ts[3].Is('\n') {
		t.Errorf("unexpected classes in %v", ts)
	}
}

func TestError(t *testing.T) {
	ts := collect("1 @ 2\n")

	if len(ts) != 4 || !ts[1].Is(token.Error) {
		t.Errorf("expected an error token, got %v", ts)
	}
}
