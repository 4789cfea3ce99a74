// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed diy code.
//
// Evaluation is a direct recursive reduction with no tail call
// elimination. Deeply recursive programs are limited by the goroutine's
// maximum stack size and exceeding it is fatal.
package engine

import (
	"github.com/diylisp/diy/internal/common/failure"
	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/common/interface/literal"
	"github.com/diylisp/diy/internal/common/type/closure"
	"github.com/diylisp/diy/internal/common/type/env"
	"github.com/diylisp/diy/internal/common/type/list"
	"github.com/diylisp/diy/internal/common/type/sym"
)

// T (engine) is a facade that pairs the evaluator with a global env.
type T struct {
	global *env.T
}

// New creates a new T with an empty global env.
func New() *T {
	return &T{global: env.New(nil)}
}

// Evaluate evaluates c in the global env.
func (t *T) Evaluate(c cell.I) (cell.I, error) {
	return Evaluate(c, t.global)
}

// Global returns the global env.
func (t *T) Global() *env.T {
	return t.global
}

// Lookup returns the global value for the name k.
func (t *T) Lookup(k string) (cell.I, bool) {
	return t.global.Lookup(k)
}

// Names returns every globally bound name.
func (t *T) Names() []string {
	return t.global.Names()
}

// Evaluate reduces the expression c in the env e and returns its value.
// Definitions made at the top level of c are added to e.
func Evaluate(c cell.I, e *env.T) (v cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		f, ok := r.(*failure.T)
		if !ok {
			panic(r)
		}

		v, err = nil, f
	}()

	return eval(c, e), nil
}

// EvaluateAll evaluates each expression in cs in order and returns the
// value of the last. It stops at the first failure.
func EvaluateAll(cs []cell.I, e *env.T) (v cell.I, err error) {
	v = list.Null

	for _, c := range cs {
		v, err = Evaluate(c, e)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func eval(c cell.I, e *env.T) cell.I {
	switch {
	case sym.Is(c):
		k := sym.To(c).String()

		v, ok := e.Lookup(k)
		if !ok {
			panic(failure.Undefined(k))
		}

		return v

	case list.Is(c):
		return combination(list.To(c), e)
	}

	// Everything else evaluates to itself.
	return c
}

func combination(l *list.T, e *env.T) cell.I {
	head := l.Head()
	if head == nil {
		return l
	}

	args := l.Tail()

	if s, ok := head.(*sym.T); ok {
		if form := special(s.String()); form != nil {
			return form(s.String(), args, e)
		}
	}

	f := eval(head, e)
	if !closure.Is(f) {
		panic(failure.Type(literal.String(head), "not a function: "+literal.String(f)))
	}

	return apply(closure.To(f), args, e)
}

// apply calls f with the unevaluated args. Each argument is evaluated in a
// scope where the parameters bound so far shadow the caller's env e.
func apply(f *closure.T, args []cell.I, e *env.T) cell.I {
	params := f.Params()
	if len(args) != len(params) {
		panic(failure.Arity(f.Literal(), len(params), len(args)))
	}

	scope := env.New(f.Env())
	seen := env.New(e)

	for i, p := range params {
		v := eval(args[i], seen)

		define(seen, p, v)
		define(scope, p, v)
	}

	return eval(f.Body(), scope)
}

func define(e *env.T, k string, v cell.I) {
	if err := e.Define(k, v); err != nil {
		panic(err)
	}
}
