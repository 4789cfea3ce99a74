package parser

import (
	"errors"
	"math/big"
	"testing"

	"github.com/diylisp/diy/internal/common/failure"
	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/common/type/boolean"
	"github.com/diylisp/diy/internal/common/type/closure"
	"github.com/diylisp/diy/internal/common/type/env"
	"github.com/diylisp/diy/internal/common/type/float"
	"github.com/diylisp/diy/internal/common/type/integer"
	"github.com/diylisp/diy/internal/common/type/list"
	"github.com/diylisp/diy/internal/common/type/sym"
)

// check parses s, unparses the result and parses that again.
// Both parses must produce the same cell and canonical s must survive.
func check(t *testing.T, s string) {
	t.Helper()

	p, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}

	u := Unparse(p)
	if u != s {
		t.Fatalf("Unparse(Parse(%q)) = %q", s, u)
	}

	r, err := Parse(u)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", u, err)
	}

	if !p.Equal(r) {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", s, u)
	}
}

func TestAtoms(t *testing.T) {
	for s, want := range map[string]cell.I{
		"#t":     boolean.True,
		"#f":     boolean.False,
		"0":      integer.Int(0),
		"1337":   integer.Int(1337),
		"1.5":    mustFloat(t, "1.5"),
		"foo":    sym.New("foo"),
		"-5":     sym.New("-5"),
		"1.":     sym.New("1."),
		"#true":  sym.New("#true"),
		"quote":  sym.New("quote"),
		"mod":    sym.New("mod"),
		"a-b?!*": sym.New("a-b?!*"),
	} {
		c, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}

		if !c.Equal(want) || c.Name() != want.Name() {
			t.Fatalf("Parse(%q) = %s %v, expected %s %v",
				s, c.Name(), c, want.Name(), want)
		}
	}
}

func TestBigInteger(t *testing.T) {
	s := "123456789012345678901234567890"

	c, err := Parse(s)
	if err != nil {
		t.Fatal(err)
	}

	want, _ := (&big.Int{}).SetString(s, 10)
	if integer.To(c).Int().Cmp(want) != 0 {
		t.Fatalf("Parse(%q) = %v", s, c)
	}
}

func TestCommentsAndWhitespace(t *testing.T) {
	c, err := Parse(`
; A comment.
(define   x   ; the name
	42)   ; the value
`)
	if err != nil {
		t.Fatal(err)
	}

	want := list.New(sym.New("define"), sym.New("x"), integer.Int(42))
	if !c.Equal(want) {
		t.Fatalf("Expected %s; got %s", Unparse(want), Unparse(c))
	}
}

func TestEmptyList(t *testing.T) {
	c, err := Parse("()")
	if err != nil {
		t.Fatal(err)
	}

	if !c.Equal(list.Null) {
		t.Fatalf("Expected (); got %s", Unparse(c))
	}
}

func TestIncomplete(t *testing.T) {
	for _, s := range []string{
		"(+ 1 2",
		"((foo)",
		"'",
		"(a '",
		"",
		"  ; only a comment",
	} {
		_, err := Parse(s)
		if !errors.Is(err, failure.ErrIncomplete) {
			t.Fatalf("Parse(%q): expected incomplete expression; got %v", s, err)
		}
	}
}

func TestIncompleteFragment(t *testing.T) {
	_, err := Parse("(a (b c")

	var f *failure.T
	if !errors.As(err, &f) {
		t.Fatalf("Expected a failure; got %v", err)
	}

	if f.Source != "(b c" {
		t.Fatalf("Expected fragment %q; got %q", "(b c", f.Source)
	}

	if f.Where == nil || f.Where.Line != 1 || f.Where.Char != 4 {
		t.Fatalf("Expected location input:1:4; got %v", f.Where)
	}
}

func TestMultiple(t *testing.T) {
	cs, err := ParseMultiple(`
(define x 1) ; one
'y
(foo (bar 2))
#t
`)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"(define x 1)", "'y", "(foo (bar 2))", "#t"}
	if len(cs) != len(want) {
		t.Fatalf("Expected %d expressions; got %d", len(want), len(cs))
	}

	for i, c := range cs {
		if s := Unparse(c); s != want[i] {
			t.Fatalf("Expected %q; got %q", want[i], s)
		}
	}
}

func TestMultipleEmpty(t *testing.T) {
	cs, err := ParseMultiple("  ; nothing here\n")
	if err != nil || len(cs) != 0 {
		t.Fatalf("Expected nothing; got %v, %v", cs, err)
	}
}

func TestMultipleErrors(t *testing.T) {
	if _, err := ParseMultiple("(a) (b"); !errors.Is(err, failure.ErrIncomplete) {
		t.Fatalf("Expected incomplete expression; got %v", err)
	}

	if _, err := ParseMultiple("(a) b)"); !errors.Is(err, failure.ErrTrailing) {
		t.Fatalf("Expected unexpected trailing input; got %v", err)
	}
}

func TestQuoteSugar(t *testing.T) {
	c, err := Parse("'(1 'a)")
	if err != nil {
		t.Fatal(err)
	}

	want := list.New(sym.Quote, list.New(
		integer.Int(1),
		list.New(sym.New("quote"), sym.New("a")),
	))

	if !c.Equal(want) {
		t.Fatalf("Expected %s; got %s", Unparse(want), Unparse(c))
	}
}

func TestTrailing(t *testing.T) {
	for s, fragment := range map[string]string{
		"(+ 1 2))":  ")",
		"(a) (b)":   "(b)",
		"foo bar":   "bar",
		")":         ")",
		"'a b":      "b",
		"(a)\n  #t": "#t",
	} {
		_, err := Parse(s)
		if !errors.Is(err, failure.ErrTrailing) {
			t.Fatalf("Parse(%q): expected unexpected trailing input; got %v", s, err)
		}

		var f *failure.T
		if errors.As(err, &f); f.Source != fragment {
			t.Fatalf("Parse(%q): expected fragment %q; got %q", s, fragment, f.Source)
		}
	}
}

func TestUnparse(t *testing.T) {
	e := env.New(nil)

	f, err := closure.New(e, list.New(sym.New("a"), sym.New("b")), sym.New("a"))
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		c    cell.I
		want string
	}{
		{boolean.True, "#t"},
		{boolean.False, "#f"},
		{integer.Int(-7), "-7"},
		{mustFloat(t, "2.0"), "2.0"},
		{list.Null, "()"},
		{list.New(sym.Quote), "(quote)"},
		{list.New(sym.Quote, sym.New("a"), sym.New("b")), "(quote a b)"},
		{list.New(sym.Quote, list.Null), "'()"},
		{f, "<closure/2>"},
	} {
		if s := Unparse(tc.c); s != tc.want {
			t.Fatalf("Expected %q; got %q", tc.want, s)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"#t",
		"42",
		"3.25",
		"foo",
		"()",
		"'x",
		"''x",
		"'()",
		"(quote x y)",
		"(define fact (lambda (n) (if (> n 1) (* n (fact (- n 1))) 1)))",
		"((lambda (x) x) '(1 2 #f))",
		"(a (b (c (d ()))))",
	} {
		check(t, s)
	}
}

func mustFloat(t *testing.T, s string) cell.I {
	c, ok := float.New(s)
	if !ok {
		t.Fatalf("%q is not a float", s)
	}

	return c
}
