package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/diylisp/diy/internal/engine"
	"github.com/diylisp/diy/internal/reader"
)

func TestCommandEnv(t *testing.T) {
	e := engine.New()
	r := reader.New("test")

	var stdout, stderr bytes.Buffer

	Print(e, r, "(define alpha 1) (define beta 2) (define alps '(x))", &stdout, &stderr)
	stdout.Reset()

	handled, quit := command(e, ":env al*", &stdout, &stderr)
	if !handled || quit {
		t.Fatalf("Expected :env to be handled; got %v, %v", handled, quit)
	}

	want := "alpha = 1\nalps = (x)\n"
	if stdout.String() != want {
		t.Fatalf("Expected %q; got %q", want, stdout.String())
	}

	stdout.Reset()
	command(e, ":env", &stdout, &stderr)

	if n := strings.Count(stdout.String(), "\n"); n != 3 {
		t.Fatalf("Expected 3 bindings; got %q", stdout.String())
	}

	command(e, ":env [", &stdout, &stderr)

	if !strings.Contains(stderr.String(), "error:") {
		t.Fatalf("Expected a pattern error; got %q", stderr.String())
	}
}

func TestCommandOther(t *testing.T) {
	e := engine.New()

	var stdout, stderr bytes.Buffer

	if handled, quit := command(e, "(quote x)", &stdout, &stderr); handled || quit {
		t.Fatal("Expressions are not meta commands")
	}

	if handled, quit := command(e, ":quit", &stdout, &stderr); !handled || !quit {
		t.Fatal("Expected :quit to quit")
	}

	if handled, _ := command(e, ":nope", &stdout, &stderr); !handled {
		t.Fatal("Expected unknown commands to be handled")
	}

	if !strings.Contains(stderr.String(), "unknown command :nope") {
		t.Fatalf("Unexpected error output %q", stderr.String())
	}
}

func TestComplete(t *testing.T) {
	e := engine.New()
	r := reader.New("test")

	var stdout, stderr bytes.Buffer

	Print(e, r, "(define lambada 1)", &stdout, &stderr)

	line := "(foo (lam x)"
	head, cs, tail := complete(e, line, 9)

	if head != "(foo (" || tail != " x)" {
		t.Fatalf("Unexpected split %q %q", head, tail)
	}

	if len(cs) != 2 || cs[0] != "lambda" || cs[1] != "lambada" {
		t.Fatalf("Unexpected completions %v", cs)
	}

	if _, cs, _ = complete(e, "(", 1); cs != nil {
		t.Fatalf("Expected no completions for an empty word; got %v", cs)
	}
}

func TestPrint(t *testing.T) {
	e := engine.New()
	r := reader.New("test")

	var stdout, stderr bytes.Buffer

	if !Print(e, r, "(define sq (lambda (x) (* x x))) (sq 12)", &stdout, &stderr) {
		t.Fatalf("Unexpected failure: %s", stderr.String())
	}

	if stdout.String() != "sq\n144\n" {
		t.Fatalf("Unexpected output %q", stdout.String())
	}

	stdout.Reset()

	if !Print(e, r, "(sq", &stdout, &stderr) || stdout.Len() != 0 {
		t.Fatal("Incomplete input must wait for more")
	}

	if !Print(e, r, "3)", &stdout, &stderr) || stdout.String() != "9\n" {
		t.Fatalf("Unexpected output %q", stdout.String())
	}

	if Print(e, r, "(sq 1 2) (define never 1)", &stdout, &stderr) {
		t.Fatal("Expected failure")
	}

	if !strings.HasPrefix(stderr.String(), "error: wrong number of arguments") {
		t.Fatalf("Unexpected error output %q", stderr.String())
	}

	if _, ok := e.Lookup("never"); ok {
		t.Fatal("Evaluation must stop at the first error")
	}
}
