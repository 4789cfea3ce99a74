// Released under an MIT license. See LICENSE.

// Package literal defines the interface for diy types that can be expressed as literals.
package literal

import (
	"github.com/diylisp/diy/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell.
// Every diy type has one so, unlike a type assertion, this never fails.
func String(c cell.I) string {
	l, ok := c.(I)
	if !ok {
		return "<" + c.Name() + ">"
	}

	return l.Literal()
}
