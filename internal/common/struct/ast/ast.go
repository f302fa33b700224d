// Released under an MIT license. See LICENSE.

// Package ast describes parsed arithmetic expressions.
package ast

import (
	"strings"
)

// T is a node in a parsed expression.
type T interface {
	String() string

	node()
}

// Assign binds the value of X to a name.
type Assign struct {
	Name string
	X    T
}

// Bad is a statement that could not be parsed.
type Bad struct {
	Err error
}

// Call applies the named function to its arguments.
type Call struct {
	Name string
	Args []T
}

// Infix applies a binary operator.
type Infix struct {
	Op   rune
	L, R T
}

// Name refers to a variable.
type Name struct {
	Text string
}

// Number is a numeric literal, uninterpreted until evaluation.
type Number struct {
	Text string
}

// Prefix applies a unary operator.
type Prefix struct {
	Op rune
	X  T
}

func (n *Assign) String() string {
	return n.Name + " = " + n.X.String()
}

func (n *Bad) String() string {
	return "error: " + n.Err.Error()
}

func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}

	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

func (n *Infix) String() string {
	return "(" + n.L.String() + " " + string(n.Op) + " " + n.R.String() + ")"
}

func (n *Name) String() string {
	return n.Text
}

func (n *Number) String() string {
	return n.Text
}

func (n *Prefix) String() string {
	return "(" + string(n.Op) + n.X.String() + ")"
}

func (*Assign) node() {}
func (*Bad) node()    {}
func (*Call) node()   {}
func (*Infix) node()  {}
func (*Name) node()   {}
func (*Number) node() {}
func (*Prefix) node() {}
