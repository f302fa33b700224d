// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for arithmetic
// expressions.
package parser

import (
	"errors"

	"github.com/michaelmacinnis/fields/internal/common/struct/ast"
	"github.com/michaelmacinnis/fields/internal/common/struct/token"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(ast.T)     // Function to call to emit a parsed statement.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of statements.
func New(emit func(ast.T), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits one statement per line until there
// are no more tokens.
func (p *T) Parse() {
	for t := p.peek(); t != nil; t = p.peek() {
		if t.Is('\n') {
			p.consume()

			continue
		}

		p.emit(p.statement())
	}
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead == 0 {
		p.token = p.item()
		p.ahead = 1
	}

	return p.token
}

// A statement is an expression, or a name, an equals sign, and an
// expression, ending at a newline. A failed parse produces an ast.Bad
// statement and skips the rest of the line.
func (p *T) statement() (n ast.T) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		for t := p.peek(); t != nil && !t.Is('\n'); t = p.peek() {
			p.consume()
		}

		switch r := r.(type) {
		case error:
			n = &ast.Bad{Err: r}
		case string:
			n = &ast.Bad{Err: errors.New(r)}
		default:
			panic(r)
		}
	}()

	n = p.expression()

	if t := p.peek(); t.Is('=') {
		p.consume()

		name, ok := n.(*ast.Name)
		if !ok {
			panic("the left side of = must be a name")
		}

		n = &ast.Assign{Name: name.Text, X: p.expression()}
	}

	if t := p.peek(); t != nil && !t.Is('\n') {
		panic("unexpected " + t.Value())
	}

	return n
}

func (p *T) expression() ast.T {
	n := p.term()

	for t := p.peek(); t.Is('+', '-'); t = p.peek() {
		op := rune(p.consume().Value()[0])

		n = &ast.Infix{Op: op, L: n, R: p.term()}
	}

	return n
}

func (p *T) term() ast.T {
	n := p.unary()

	for t := p.peek(); t.Is('*', '/'); t = p.peek() {
		op := rune(p.consume().Value()[0])

		n = &ast.Infix{Op: op, L: n, R: p.unary()}
	}

	return n
}

func (p *T) unary() ast.T {
	if t := p.peek(); t.Is('-') {
		p.consume()

		return &ast.Prefix{Op: '-', X: p.unary()}
	}

	return p.primary()
}

func (p *T) primary() ast.T {
	t := p.peek()

	switch {
	case t == nil:
		panic("unexpected end of input")
	case t.Is('\n'):
		panic("unexpected end of line")
	case t.Is(token.Number):
		return &ast.Number{Text: p.consume().Value()}
	case t.Is(token.Symbol):
		name := p.consume().Value()

		if p.peek().Is('(') {
			return &ast.Call{Name: name, Args: p.arguments()}
		}

		return &ast.Name{Text: name}
	case t.Is('('):
		p.consume()

		n := p.expression()

		if !p.peek().Is(')') {
			panic("expected )")
		}

		p.consume()

		return n
	}

	panic("unexpected " + t.Value())
}

func (p *T) arguments() []ast.T {
	p.consume() // The opening parenthesis.

	args := []ast.T{}

	if p.peek().Is(')') {
		p.consume()

		return args
	}

	for {
		args = append(args, p.expression())

		t := p.peek()

		switch {
		case t.Is(','):
			p.consume()
		case t.Is(')'):
			p.consume()

			return args
		default:
			panic("expected , or )")
		}
	}
}
