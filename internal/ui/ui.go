// Released under an MIT license. See LICENSE.

// Package ui provides an interactive loop for the diy language.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/peterh/liner"

	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/common/interface/literal"
	"github.com/diylisp/diy/internal/reader"
	"github.com/diylisp/diy/internal/system/history"
)

const (
	prompt       = "> "
	continuation = "... "
)

// Evaluator is the interface for things that want to process parsed expressions.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
	Lookup(k string) (cell.I, bool)
	Names() []string
}

// Run launches the interactive loop which sends expressions to e. Results
// are written to stdout and errors to stderr. Run returns when input ends.
func Run(e Evaluator, stdout, stderr io.Writer) {
	cli := liner.NewLiner()
	defer cli.Close()

	if err := history.Load(cli.ReadHistory); err != nil {
		fmt.Fprintln(stderr, "history: "+err.Error())
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(e, line, pos)
	})

	r := reader.New("stdin")

	for {
		p := prompt
		if r.Pending() {
			p = continuation
		}

		line, err := cli.Prompt(p)

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			r.Reset()

			continue
		default:
			fmt.Fprintln(stdout)

			if err := history.Save(cli.WriteHistory); err != nil {
				fmt.Fprintln(stderr, "history: "+err.Error())
			}

			return
		}

		if strings.TrimSpace(line) == "" && !r.Pending() {
			continue
		}

		cli.AppendHistory(line)

		if !r.Pending() {
			handled, quit := command(e, line, stdout, stderr)
			if quit {
				if err := history.Save(cli.WriteHistory); err != nil {
					fmt.Fprintln(stderr, "history: "+err.Error())
				}

				return
			}

			if handled {
				continue
			}
		}

		Print(e, r, line, stdout, stderr)
	}
}

// Print scans line with r and evaluates every complete expression,
// writing each result to stdout. It stops at the first error.
func Print(e Evaluator, r *reader.T, line string, stdout, stderr io.Writer) bool {
	cs, err := r.Scan(line)
	if err != nil {
		fmt.Fprintln(stderr, "error: "+err.Error())

		return false
	}

	for _, c := range cs {
		v, err := e.Evaluate(c)
		if err != nil {
			fmt.Fprintln(stderr, "error: "+err.Error())

			return false
		}

		fmt.Fprintln(stdout, literal.String(v))
	}

	return true
}

// command handles meta commands. A meta command starts with ':'.
func command(e Evaluator, line string, stdout, stderr io.Writer) (handled, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], ":") {
		return false, false
	}

	switch fields[0] {
	case ":env":
		pattern := "*"
		if len(fields) > 1 {
			pattern = fields[1]
		}

		for _, k := range e.Names() {
			ok, err := adapted.Match(pattern, k)
			if err != nil {
				fmt.Fprintln(stderr, "error: "+err.Error())

				return true, false
			}

			if ok {
				v, _ := e.Lookup(k)
				fmt.Fprintln(stdout, k+" = "+literal.String(v))
			}
		}

	case ":quit":
		return true, true

	default:
		fmt.Fprintln(stderr, "error: unknown command "+fields[0])
	}

	return true, false
}

// complete offers special forms and bound names that extend the word before pos.
func complete(e Evaluator, line string, pos int) (head string, cs []string, tail string) {
	head = line[:pos]
	tail = line[pos:]

	i := strings.LastIndexAny(head, " \t()'") + 1
	word := head[i:]
	head = head[:i]

	if word == "" {
		return head, nil, tail
	}

	candidates := append([]string{
		"atom", "define", "eq", "if", "lambda", "mod", "quote",
	}, e.Names()...)

	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			cs = append(cs, c)
		}
	}

	return head, cs, tail
}
