// Released under an MIT license. See LICENSE.

// Package ui provides the interactive interface for fields.
package ui

import (
	"os"
	"strings"

	"github.com/michaelmacinnis/fields/internal/common/struct/ast"
	"github.com/michaelmacinnis/fields/internal/common/struct/token"
	"github.com/michaelmacinnis/fields/internal/reader/lexer"
	"github.com/michaelmacinnis/fields/internal/reader/parser"
	"github.com/michaelmacinnis/fields/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process parsed
// statements.
type Evaluator interface {
	Complete(prefix string) []string
	Evaluate(n ast.T)
}

// Run launches the UI which sends statements to the Evaluator.
func Run(e Evaluator) {
	cooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cli := liner.NewLiner()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cli.SetCtrlCAborts(true)

	// A missing history file is not worth a complaint.
	_ = history.Load(cli.ReadHistory)

start:
	restart := false

	l := lexer.New("fields")

	p := parser.New(e.Evaluate, func() *token.T {
		for {
			t := l.Token()
			if t != nil {
				return t
			}

			merr := uncooked.ApplyMode()
			if merr != nil {
				println(merr.Error())
				os.Exit(1)
			}

			line, err := cli.Prompt("> ")

			merr = cooked.ApplyMode()
			if merr != nil {
				println(merr.Error())
				os.Exit(1)
			}

			switch err {
			case nil:
				cli.AppendHistory(line)
			case liner.ErrPromptAborted:
				restart = true
				return nil
			default:
				os.Stdout.Write([]byte("\n"))
				return nil
			}

			l.Scan(line + "\n")
		}
	})

	complete := func(s string, n int) (h string, cs []string, t string) {
		h = s[:n]
		t = s[n:]

		// The word being completed starts after the last operator,
		// separator, or space.
		word := h
		if i := strings.LastIndexAny(h, "\t ()*+,-/="); i >= 0 {
			word = h[i+1:]
		}

		h = h[:len(h)-len(word)]

		cs = e.Complete(word)

		if len(cs) == 0 && word != "" {
			cs = []string{word}
		}

		return h, cs, t
	}

	cli.SetWordCompleter(complete)

	p.Parse()

	if restart {
		goto start
	}

	_ = history.Save(cli.WriteHistory)
}
