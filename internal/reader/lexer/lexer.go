// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the diy language.
//
// The diy lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"unicode/utf8"

	"github.com/diylisp/diy/internal/common/struct/loc"
	"github.com/diylisp/diy/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes  string     // Buffer being scanned.
	first  int        // Index of the current token's first byte.
	index  int        // Index of the current byte.
	runes  int        // Runes scanned on the current line.
	state  action     // Current action.
	tokens []*token.T // Tokens scanned but not yet returned.

	source loc.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Scan passes a text buffer to the lexer for scanning. The text is
// appended to anything passed previously.
func (l *T) Scan(text string) {
	l.bytes += text

	if l.state == nil {
		l.state = skipWhitespace
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class) {
	source := l.source
	source.Offset = l.first

	l.tokens = append(l.tokens, token.New(c, l.Text(), source))
	l.skip()
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
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

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.emit(token.Atom)
			return nil
		case '\t', '\n', '\r', ' ', '\'', '(', ')', ';':
			l.emit(token.Atom)
			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func skipComment(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()
			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.skip()
			return nil
		case '\t', '\n', '\r', ' ':
			l.accept(r, w)
			l.skip()
		case ';':
			return skipComment
		case '\'', '(', ')':
			l.accept(r, w)
			l.emit(r)
		default:
			return scanAtom
		}
	}
}
