// Released under an MIT license. See LICENSE.

// Package sym provides diy's symbol cell type.
package sym

import (
	"sync"

	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/common/interface/literal"
)

const (
	name  = "symbol"
	short = 6
)

// T (sym) wraps Go's string type. Short and common strings are interned.
type T string

type sym = T

// Quote is the symbol that the reader uses for 'x.
var Quote cell.I //nolint:gochecknoglobals

// New creates a sym cell.
func New(v string) cell.I {
	return symnew(v)
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Functions specific to sym.

// Named returns true if c is a sym with the text v.
func Named(c cell.I, v string) bool {
	s, ok := c.(*sym)

	return ok && string(*s) == v
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func init() { //nolint:gochecknoinits
	for _, v := range []string{
		"quote", "atom", "eq", "define", "if", "lambda",
		"+", "-", "*", "/", "mod", ">",
	} {
		s := sym(v)
		cache[v] = &s
	}

	Quote = cache["quote"]
}

func symnew(v string) *sym {
	p, ok, cacheable := symtry(v)
	if !ok {
		if cacheable {
			cachel.Lock()
			defer cachel.Unlock()

			if p, ok = cache[v]; ok {
				return p
			}
		}

		s := sym(v)
		p = &s

		if cacheable {
			cache[v] = p
		}
	}

	return p
}

func symtry(v string) (p *sym, ok bool, cacheable bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	cacheable = len(v) <= short

	p, ok = cache[v]

	return
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)
}
