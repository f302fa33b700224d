// Released under an MIT license. See LICENSE.

package parser

import (
	"testing"

	"github.com/michaelmacinnis/fields/internal/common/struct/ast"
	"github.com/michaelmacinnis/fields/internal/reader/lexer"
)

func parse(s string) []ast.T {
	l := lexer.New("test")

	l.Scan(s)

	ns := []ast.T{}

	New(func(n ast.T) {
		ns = append(ns, n)
	}, l.Token).Parse()

	return ns
}

func check(t *testing.T, s, expected string) {
	t.Helper()

	ns := parse(s)

	if len(ns) != 1 {
		t.Fatalf("parsing %q: expected 1 statement, got %d", s, len(ns))
	}

	if p := ns[0].String(); p != expected {
		t.Errorf("parsing %q: expected %s, got %s", s, expected, p)
	}
}

func TestPrecedence(t *testing.T) {
	check(t, "1 + 2 * 3\n", "(1 + (2 * 3))")
	check(t, "(1 + 2) * 3\n", "((1 + 2) * 3)")
	check(t, "3/4 + 1/6\n", "((3 / 4) + (1 / 6))")
}

func TestAssociativity(t *testing.T) {
	check(t, "1 - 2 - 3\n", "((1 - 2) - 3)")
	check(t, "8 / 4 / 2\n", "((8 / 4) / 2)")
}

func TestUnary(t *testing.T) {
	check(t, "-1 + 2\n", "((-1) + 2)")
	check(t, "2 * -3\n", "(2 * (-3))")
}

func TestCall(t *testing.T) {
	check(t, "gcd(1/2, 3/4)\n", "gcd((1 / 2), (3 / 4))")
	check(t, "sqrt(4/9)\n", "sqrt((4 / 9))")
}

func TestAssign(t *testing.T) {
	check(t, "x = 3/4\n", "x = (3 / 4)")

	ns := parse("1 = 2\n")
	if len(ns) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(ns))
	}

	if _, ok := ns[0].(*ast.Bad); !ok {
		t.Errorf("expected a failed parse, got %s", ns[0])
	}
}

func TestVariable(t *testing.T) {
	check(t, "x * x\n", "(x * x)")
}

func TestBad(t *testing.T) {
	for _, s := range []string{"1 +\n", "(1\n", "gcd(1,\n", ") 1\n", "1 @ 2\n"} {
		ns := parse(s)

		if len(ns) != 1 {
			t.Fatalf("parsing %q: expected 1 statement, got %d", s, len(ns))
		}

		if _, ok := ns[0].(*ast.Bad); !ok {
			t.Errorf("parsing %q: expected a failed parse, got %s", s, ns[0])
		}
	}
}

func TestMultiple(t *testing.T) {
	ns := parse("1 + 2\n3 * 4\n")

	if len(ns) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(ns))
	}

	if ns[0].String() != "(1 + 2)" || ns[1].String() != "(3 * 4)" {
		t.Errorf("unexpected statements %s and %s", ns[0], ns[1])
	}
}
