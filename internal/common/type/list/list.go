// Released under an MIT license. See LICENSE.

// Package list provides diy's list type. A list is an ordered, immutable
// sequence of cells. The empty list is a valid value.
package list

import (
	"strings"

	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/common/interface/literal"
	"github.com/diylisp/diy/internal/common/interface/truth"
	"github.com/diylisp/diy/internal/common/type/sym"
)

const name = "list"

// T (list) holds the elements of a list.
type T struct {
	items []cell.I
}

type list = T

// Null is the empty list.
var Null cell.I = &list{} //nolint:gochecknoglobals

// New creates a list from elements. The list keeps its own copy.
func New(elements ...cell.I) cell.I {
	if len(elements) == 0 {
		return Null
	}

	items := make([]cell.I, len(elements))
	copy(items, elements)

	return &list{items: items}
}

// Bool returns the boolean value of the list l. Only the empty list is false.
func (l *list) Bool() bool {
	return len(l.items) > 0
}

// Equal returns true if c is a list with elements that are equal to l's.
func (l *list) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(l.items) != len(o.items) {
		return false
	}

	for i, e := range l.items {
		if !e.Equal(o.items[i]) {
			return false
		}
	}

	return true
}

// Literal returns the literal representation of the list l.
// A quote form is written with the ' shorthand.
func (l *list) Literal() string {
	if len(l.items) == 2 && sym.Named(l.items[0], "quote") {
		return "'" + literal.String(l.items[1])
	}

	s := make([]string, len(l.items))
	for i, e := range l.items {
		s[i] = literal.String(e)
	}

	return "(" + strings.Join(s, " ") + ")"
}

// Name returns the type name for the list l.
func (l *list) Name() string {
	return name
}

// String returns the text representation of the list l.
func (l *list) String() string {
	return l.Literal()
}

// Methods specific to list.

// Head returns the first element of the list l or nil if l is empty.
func (l *list) Head() cell.I {
	if len(l.items) == 0 {
		return nil
	}

	return l.items[0]
}

// Len returns the number of elements in the list l.
func (l *list) Len() int {
	return len(l.items)
}

// Slice returns a copy of the elements of the list l.
func (l *list) Slice() []cell.I {
	s := make([]cell.I, len(l.items))
	copy(s, l.items)

	return s
}

// Tail returns the elements of l after the first. The result must not be modified.
func (l *list) Tail() []cell.I {
	if len(l.items) == 0 {
		return nil
	}

	return l.items[1:]
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)

	// The list type has a truth value.
	_ = truth.I(&t)
}
