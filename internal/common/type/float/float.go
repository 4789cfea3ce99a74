// Released under an MIT license. See LICENSE.

// Package float provides diy's floating point type.
// Floats can be read and printed but do not take part in arithmetic.
package float

import (
	"strconv"
	"strings"

	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/common/interface/literal"
	"github.com/diylisp/diy/internal/common/interface/truth"
)

const name = "float"

// T (float) wraps Go's float64 type.
type T float64

type float = T

// New creates a float cell from a string.
func New(s string) (cell.I, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}

	f := float(v)

	return &f, true
}

// Bool returns the boolean value of the float f. Only zero is false.
func (f *float) Bool() bool {
	return *f != 0
}

// Equal returns true if c is a float with the same value as f.
func (f *float) Equal(c cell.I) bool {
	return Is(c) && *f == *To(c)
}

// Literal returns the literal representation of the float f.
// There is always a fractional part so that it reads back as a float.
func (f *float) Literal() string {
	s := strconv.FormatFloat(float64(*f), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// Name returns the type name for the float f.
func (f *float) Name() string {
	return name
}

// String returns the text of the float f.
func (f *float) String() string {
	return f.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t float

	// The float type is a cell.
	_ = cell.I(&t)

	// The float type has a literal representation.
	_ = literal.I(&t)

	// The float type has a truth value.
	_ = truth.I(&t)
}
