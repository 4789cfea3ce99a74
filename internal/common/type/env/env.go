// Released under an MIT license. See LICENSE.

// Package env provides diy's environment type.
//
// An environment is a scope of single-assignment bindings with a link to
// its enclosing scope. Bindings are never changed or removed once made, so
// a scope linked from a closure behaves like a snapshot of its bindings.
package env

import (
	"sort"

	"github.com/diylisp/diy/internal/common/failure"
	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/common/struct/hash"
)

const name = "environment"

// T (env) maps names to values.
type T struct {
	bindings *hash.T
	previous *T
}

type env = T

// New creates a new env enclosed by previous. A nil previous creates a
// global env.
func New(previous *T) *T {
	return &env{
		bindings: hash.New(),
		previous: previous,
	}
}

// Define associates the name k with the cell v in the env e.
// It fails if k is already bound in e itself. Bindings in enclosing
// scopes may be shadowed.
func (e *env) Define(k string, v cell.I) error {
	if e.bindings.Has(k) {
		return failure.Duplicate(k)
	}

	e.bindings.Set(k, v)

	return nil
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() *T {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	o, ok := c.(*env)

	return ok && o == e
}

// Local returns the names bound in the env e itself in sorted order.
func (e *env) Local() []string {
	return e.bindings.Names()
}

// Lookup retrieves the value associated with the name k in the env e or
// any of its enclosing scopes.
func (e *env) Lookup(k string) (cell.I, bool) {
	for s := e; s != nil; s = s.previous {
		if v := s.bindings.Get(k); v != nil {
			return v, true
		}
	}

	return nil, false
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Names returns every name visible from the env e in sorted order.
func (e *env) Names() []string {
	seen := map[string]bool{}

	for s := e; s != nil; s = s.previous {
		for _, k := range s.bindings.Names() {
			seen[k] = true
		}
	}

	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)
}
