// Released under an MIT license. See LICENSE.

// Package closure provides diy's closure type.
package closure

import (
	"strconv"

	"github.com/diylisp/diy/internal/common/failure"
	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/common/interface/literal"
	"github.com/diylisp/diy/internal/common/type/env"
	"github.com/diylisp/diy/internal/common/type/list"
	"github.com/diylisp/diy/internal/common/type/sym"
)

const name = "closure"

// T (closure) pairs a body with its parameters and the env where it was created.
type T struct {
	body   cell.I
	env    *env.T
	params []string
}

type closure = T

// New creates a closure. The params cell must be a list of symbols.
func New(e *env.T, params, body cell.I) (*T, error) {
	if !list.Is(params) {
		return nil, failure.Closure("parameters must be a list, not " +
			literal.String(params))
	}

	ps := list.To(params).Slice()
	names := make([]string, len(ps))

	for i, p := range ps {
		if !sym.Is(p) {
			return nil, failure.Closure("parameter " + literal.String(p) +
				" is not a symbol")
		}

		names[i] = sym.To(p).String()

		for _, n := range names[:i] {
			if n == names[i] {
				return nil, failure.Closure("parameter " + n +
					" appears more than once")
			}
		}
	}

	return &closure{body: body, env: e, params: names}, nil
}

// Equal returns true if c is the same closure as f.
func (f *closure) Equal(c cell.I) bool {
	return Is(c) && f == To(c)
}

// Literal returns the literal representation of the closure f.
func (f *closure) Literal() string {
	return "<" + name + "/" + strconv.Itoa(len(f.params)) + ">"
}

// Name returns the type name for the closure f.
func (f *closure) Name() string {
	return name
}

// String returns the text representation of the closure f.
func (f *closure) String() string {
	return f.Literal()
}

// Methods specific to closure.

// Body returns the closure's unevaluated body.
func (f *closure) Body() cell.I {
	return f.body
}

// Env returns the env captured when the closure was created.
func (f *closure) Env() *env.T {
	return f.env
}

// Params returns the closure's parameter names. The result must not be modified.
func (f *closure) Params() []string {
	return f.params
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)
}
