// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for arithmetic expressions.
//
// The lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/fields/internal/common/struct/loc"
	"github.com/michaelmacinnis/fields/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		// Because we update lines here, if we emit a newline
		// it will be reported as being part of the next line.
		// We fix this when emitting the newline.
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source
	if c == '\n' {
		// Report newline as part of previous line.
		source.Line--
	}

	t := token.New(c, v, &source)

	l.tokens <- t
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.source.Char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func scanExponent(l *T) action {
	r, w := l.peek()

	if r == '+' || r == '-' {
		l.accept(r, w)
	}

	for {
		r, w := l.peek()
		if !digit(r) {
			break
		}

		l.accept(r, w)
	}

	l.emit(token.Number, l.Text())

	return skipWhitespace
}

func scanNumber(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case digit(r) || r == '.':
			l.accept(r, w)
		case r == 'e' || r == 'E':
			l.accept(r, w)
			return scanExponent
		default:
			l.emit(token.Number, l.Text())
			return skipWhitespace
		}
	}
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		if !symbolic(r) && !digit(r) {
			l.emit(token.Symbol, l.Text())
			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()
			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\r', ' ':
			l.accept(r, w)
			l.skip()
		case '\n', '(', ')', '*', '+', ',', '-', '/', '=':
			l.accept(r, w)
			l.emit(r, l.Text())

			return skipWhitespace
		case '#':
			l.accept(r, w)

			return skipComment
		default:
			switch {
			case digit(r) || r == '.':
				l.accept(r, w)
				return scanNumber
			case symbolic(r):
				l.accept(r, w)
				return scanSymbol
			default:
				l.accept(r, w)
				l.emit(token.Error, l.Text())

				return skipWhitespace
			}
		}
	}
}

func digit(r token.Class) bool {
	return '0' <= r && r <= '9'
}

func symbolic(r token.Class) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
