// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the diy language.
package parser

import (
	"regexp"

	"github.com/diylisp/diy/internal/common/failure"
	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/common/interface/literal"
	"github.com/diylisp/diy/internal/common/struct/token"
	"github.com/diylisp/diy/internal/common/type/boolean"
	"github.com/diylisp/diy/internal/common/type/float"
	"github.com/diylisp/diy/internal/common/type/integer"
	"github.com/diylisp/diy/internal/common/type/list"
	"github.com/diylisp/diy/internal/common/type/sym"
	"github.com/diylisp/diy/internal/reader/lexer"
)

//nolint:gochecknoglobals
var (
	decimal = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)
	digits  = regexp.MustCompile(`^[0-9]+$`)
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	text  string          // Source being parsed.
	token *token.T        // Token lookahead.
}

// New creates a new parser for text. Label names the source in errors.
func New(label, text string) *T {
	l := lexer.New(label)
	l.Scan(text)

	return &T{item: l.Token, text: text}
}

// Parse parses text containing exactly one expression.
func Parse(text string) (cell.I, error) {
	return New("input", text).Parse()
}

// ParseMultiple parses text containing any number of expressions.
func ParseMultiple(text string) ([]cell.I, error) {
	return New("input", text).ParseMultiple()
}

// Unparse returns the source text for c.
// Parsing the result produces a cell equal to c.
func Unparse(c cell.I) string {
	return literal.String(c)
}

// Parse consumes every token and returns the single expression they form.
func (p *T) Parse() (c cell.I, err error) {
	defer p.recover(&err)

	t := p.peek()
	if t == nil {
		return nil, failure.Incomplete(p.text, nil)
	}

	c = p.expression()

	if t = p.peek(); t != nil {
		return nil, p.trailing(t)
	}

	return c, nil
}

// ParseMultiple consumes every token and returns the expressions they form.
func (p *T) ParseMultiple() (cs []cell.I, err error) {
	defer p.recover(&err)

	for p.peek() != nil {
		cs = append(cs, p.expression())
	}

	return cs, nil
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

func (p *T) fragment(t *token.T) string {
	return p.text[t.Source().Offset:]
}

func (p *T) incomplete(t *token.T) *failure.T {
	return failure.Incomplete(p.fragment(t), t.Source())
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func (p *T) recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	f, ok := r.(*failure.T)
	if !ok {
		panic(r)
	}

	*err = f
}

func (p *T) trailing(t *token.T) *failure.T {
	return failure.Trailing(p.fragment(t), t.Source())
}

// T state functions.

// <expression> ::= '\'' <expression> | '(' <expression>* ')' | Atom .
func (p *T) expression() cell.I {
	t := p.consume()

	switch {
	case t.Is('\''):
		if p.peek() == nil {
			panic(p.incomplete(t))
		}

		return list.New(sym.Quote, p.expression())

	case t.Is('('):
		var cs []cell.I

		for !p.peek().Is(')') {
			if p.peek() == nil {
				panic(p.incomplete(t))
			}

			cs = append(cs, p.expression())
		}

		p.consume()

		return list.New(cs...)

	case t.Is(')'):
		panic(p.trailing(t))
	}

	return atom(t.Value())
}

func atom(s string) cell.I {
	if c, ok := boolean.New(s); ok {
		return c
	}

	if digits.MatchString(s) {
		if c, ok := integer.New(s); ok {
			return c
		}
	}

	if decimal.MatchString(s) {
		if c, ok := float.New(s); ok {
			return c
		}
	}

	return sym.New(s)
}
