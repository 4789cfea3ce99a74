package lexer

import (
	"testing"

	"github.com/diylisp/diy/internal/common/struct/loc"
	"github.com/diylisp/diy/internal/common/struct/token"
)

func TestAtoms(t *testing.T) {
	h := setup(t, "Atoms")

	h.scan("#t 42 3.14 foo",
		h.atom("#t"),
		h.skipped(" "),
		h.atom("42"),
		h.skipped(" "),
		h.atom("3.14"),
		h.skipped(" "),
		h.atom("foo"),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("(a ; b c\n d) ; trailing",
		h.literal("("),
		h.atom("a"),
		h.skipped(" ; b c\n "),
		h.atom("d"),
		h.literal(")"),
		nil,
	)
}

func TestDelimiters(t *testing.T) {
	h := setup(t, "Delimiters")

	h.scan("a(b'c)d;e",
		h.atom("a"),
		h.literal("("),
		h.atom("b"),
		h.literal("'"),
		h.atom("c"),
		h.literal(")"),
		h.atom("d"),
		nil,
	)
}

func TestNested(t *testing.T) {
	h := setup(t, "Nested")

	h.scan("((lambda (x) x) 1)",
		h.literal("("),
		h.literal("("),
		h.atom("lambda"),
		h.skipped(" "),
		h.literal("("),
		h.atom("x"),
		h.literal(")"),
		h.skipped(" "),
		h.atom("x"),
		h.literal(")"),
		h.skipped(" "),
		h.atom("1"),
		h.literal(")"),
		nil,
	)
}

func TestQuote(t *testing.T) {
	h := setup(t, "Quote")

	h.scan("'(1 2)\n",
		h.literal("'"),
		h.literal("("),
		h.atom("1"),
		h.skipped(" "),
		h.atom("2"),
		h.literal(")"),
		nil,
	)
}

func TestScanAppends(t *testing.T) {
	l := New("ScanAppends")

	l.Scan("(foo")

	for _, v := range []string{"(", "foo"} {
		if tok := l.Token(); tok == nil || tok.Value() != v {
			t.Fatalf("Expected %q; got %v", v, tok)
		}
	}

	if tok := l.Token(); tok != nil {
		t.Fatalf("Expected no tokens; got %v", tok)
	}

	l.Scan(" bar)")

	for _, v := range []string{"bar", ")"} {
		if tok := l.Token(); tok == nil || tok.Value() != v {
			t.Fatalf("Expected %q; got %v", v, tok)
		}
	}
}

func TestWhitespace(t *testing.T) {
	h := setup(t, "Whitespace")

	h.scan(" \t\r\n  ",
		nil,
	)
}

var skip = token.New(token.Error, "", loc.T{}) //nolint:gochecknoglobals

type harness struct {
	lexer  *T
	source loc.T
	t      *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{
		lexer: New(label),
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer.Scan(s)

	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == e:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) atom(s string) *token.T {
	return h.token(token.Atom, s)
}

func (h *harness) literal(s string) *token.T {
	return h.token(token.Class(s[0]), s)
}

// skipped advances past s, which the lexer does not emit.
func (h *harness) skipped(s string) *token.T {
	for _, r := range s {
		if r == '\n' {
			h.source.Line++
			h.source.Char = 1
		} else {
			h.source.Char++
		}
	}

	h.source.Offset += len(s)

	return skip
}

func (h *harness) token(c token.Class, s string) *token.T {
	t := token.New(c, s, h.source)

	h.source.Char += len(s)
	h.source.Offset += len(s)

	return t
}
