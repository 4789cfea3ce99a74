// Released under an MIT license. See LICENSE.

/*
Diy is a small S-expression language. The following forms behave as expected:

	(define square (lambda (x) (* x x)))
	(square 12)
	(if (> 3 2) 'yes 'no)
	(atom '(1 2))
	(eq 'a 'a)

Integers have no fixed width. The special forms are quote, atom, eq,
define, if, lambda and the arithmetic forms +, -, *, /, mod and >.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/diylisp/diy/internal/common/interface/literal"
	"github.com/diylisp/diy/internal/engine"
	"github.com/diylisp/diy/internal/engine/boot"
	"github.com/diylisp/diy/internal/reader/parser"
	"github.com/diylisp/diy/internal/system/options"
	"github.com/diylisp/diy/internal/ui"
)

func main() {
	os.Exit(run(options.Parse(os.Args[1:]), os.Stdin, os.Stdout, os.Stderr))
}

func run(o *options.T, stdin io.Reader, stdout, stderr io.Writer) int {
	e := engine.New()

	if !o.Bare {
		if err := boot.Load(e.Global()); err != nil {
			fmt.Fprintln(stderr, "boot: "+err.Error())

			return 1
		}
	}

	for _, path := range o.Scripts {
		b, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())

			return 1
		}

		if !source(e, path, string(b), nil, stderr) {
			return 1
		}
	}

	switch {
	case o.Command != "":
		if !source(e, "command", o.Command, stdout, stderr) {
			return 1
		}
	case o.Interactive:
		ui.Run(e, stdout, stderr)
	case o.Stdin:
		b, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())

			return 1
		}

		if !source(e, "stdin", string(b), nil, stderr) {
			return 1
		}
	}

	return 0
}

// source evaluates every expression in text. If stdout is not nil each
// result is printed to it.
func source(e *engine.T, label, text string, stdout, stderr io.Writer) bool {
	cs, err := parser.New(label, text).ParseMultiple()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())

		return false
	}

	for _, c := range cs {
		v, err := e.Evaluate(c)
		if err != nil {
			fmt.Fprintln(stderr, label+": "+err.Error())

			return false
		}

		if stdout != nil {
			fmt.Fprintln(stdout, literal.String(v))
		}
	}

	return true
}
