// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/diylisp/diy/internal/common/failure"
	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/common/interface/truth"
	"github.com/diylisp/diy/internal/common/type/boolean"
	"github.com/diylisp/diy/internal/common/type/closure"
	"github.com/diylisp/diy/internal/common/type/env"
	"github.com/diylisp/diy/internal/common/type/list"
	"github.com/diylisp/diy/internal/common/type/sym"
	"github.com/diylisp/diy/internal/common/validate"
)

type form func(name string, args []cell.I, e *env.T) cell.I

// special returns the rule for the special form name or nil.
func special(name string) form {
	switch name {
	case "quote":
		return quote
	case "atom":
		return atom
	case "eq":
		return eq
	case "define":
		return def
	case "if":
		return cond
	case "lambda":
		return lambda
	case "+", "-", "*", "/", "mod", ">":
		return arithmetic
	}

	return nil
}

func atom(name string, args []cell.I, e *env.T) cell.I {
	v := validate.Fixed(name, args, 1)

	return boolean.Bool(!list.Is(eval(v[0], e)))
}

func cond(name string, args []cell.I, e *env.T) cell.I {
	v := validate.Fixed(name, args, 3)

	if truth.Value(eval(v[0], e)) {
		return eval(v[1], e)
	}

	return eval(v[2], e)
}

func def(name string, args []cell.I, e *env.T) cell.I {
	v := validate.Fixed(name, args, 2)

	if !sym.Is(v[0]) {
		panic(failure.Type(name, "cannot define a non-symbol"))
	}

	define(e, sym.To(v[0]).String(), eval(v[1], e))

	return v[0]
}

func eq(name string, args []cell.I, e *env.T) cell.I {
	v := validate.Fixed(name, args, 2)

	a := eval(v[0], e)
	b := eval(v[1], e)

	return boolean.Bool(!list.Is(a) && !list.Is(b) && a.Equal(b))
}

func lambda(name string, args []cell.I, e *env.T) cell.I {
	v := validate.Fixed(name, args, 2)

	f, err := closure.New(e, v[0], v[1])
	if err != nil {
		panic(err)
	}

	return f
}

func quote(name string, args []cell.I, _ *env.T) cell.I {
	return validate.Fixed(name, args, 1)[0]
}
