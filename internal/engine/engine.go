// Released under an MIT license. See LICENSE.

// Package engine evaluates parsed arithmetic over a single field.
package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/michaelmacinnis/fields/internal/common/interface/element"
	"github.com/michaelmacinnis/fields/internal/common/interface/field"
	"github.com/michaelmacinnis/fields/internal/common/struct/ast"
)

// T (engine) binds a field descriptor to a table of variables and
// evaluates statements against them.
type T struct {
	domain field.I
	failed bool
	sink   io.Writer
	trace  io.Writer
	vars   map[string]element.I
}

type engine = T

// New creates a new engine evaluating in the domain f.
func New(f field.I) *engine {
	return &engine{
		domain: f,
		sink:   os.Stdout,
		trace:  os.Stderr,
		vars:   map[string]element.I{},
	}
}

// Complete returns the function and variable names starting with
// prefix. (Command completion).
func (e *engine) Complete(prefix string) []string {
	cs := []string{}

	for name := range functions {
		if strings.HasPrefix(name, prefix) {
			cs = append(cs, name)
		}
	}

	for name := range e.vars {
		if strings.HasPrefix(name, prefix) {
			cs = append(cs, name)
		}
	}

	sort.Strings(cs)

	return cs
}

// Eval returns the value of the statement n.
func (e *engine) Eval(n ast.T) (element.I, error) {
	switch n := n.(type) {
	case *ast.Assign:
		v, err := e.Eval(n.X)
		if err != nil {
			return nil, err
		}

		e.vars[n.Name] = v

		return v, nil

	case *ast.Bad:
		return nil, n.Err

	case *ast.Call:
		f, ok := functions[n.Name]
		if !ok {
			return nil, errors.New(n.Name + " is not a function")
		}

		args := make([]element.I, len(n.Args))

		for i, a := range n.Args {
			v, err := e.Eval(a)
			if err != nil {
				return nil, err
			}

			args[i] = v
		}

		return f(e, args)

	case *ast.Infix:
		l, err := e.Eval(n.L)
		if err != nil {
			return nil, err
		}

		r, err := e.Eval(n.R)
		if err != nil {
			return nil, err
		}

		switch n.Op {
		case '+':
			return l.Add(r), nil
		case '-':
			return l.Sub(r), nil
		case '*':
			return l.Mul(r), nil
		case '/':
			return l.Div(r)
		}

	case *ast.Name:
		v, ok := e.vars[n.Text]
		if !ok {
			return nil, errors.New(n.Text + " is not defined")
		}

		return v, nil

	case *ast.Number:
		return e.domain.FromString(n.Text)

	case *ast.Prefix:
		v, err := e.Eval(n.X)
		if err != nil {
			return nil, err
		}

		return v.Neg(), nil
	}

	panic("cannot evaluate " + n.String())
}

// Evaluate evaluates the statement n, printing its value or reporting
// its error.
func (e *engine) Evaluate(n ast.T) {
	v, err := e.Eval(n)
	if err != nil {
		e.failed = true

		fmt.Fprintln(e.trace, "error:", err)

		return
	}

	fmt.Fprintln(e.sink, v.Expr())
}

// Failed returns true if any evaluated statement has failed.
func (e *engine) Failed() bool {
	return e.failed
}
