// Released under an MIT license. See LICENSE.

// Package integer provides diy's integer type.
package integer

import (
	"math/big"

	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/common/interface/literal"
	"github.com/diylisp/diy/internal/common/interface/truth"
)

const name = "integer"

// T (integer) wraps Go's big.Int type. Integers have no fixed width.
type T big.Int

type integer = T

// New creates an integer cell from a string of decimal digits.
func New(s string) (cell.I, bool) {
	v, ok := (&big.Int{}).SetString(s, 10)
	if !ok {
		return nil, false
	}

	return Big(v), true
}

// Int creates an integer from the int64 i.
func Int(i int64) cell.I {
	return Big(big.NewInt(i))
}

// Big wraps the *big.Int v as an integer. The caller must not modify v afterwards.
func Big(v *big.Int) cell.I {
	return (*integer)(v)
}

// Bool returns the boolean value of the integer n. Only zero is false.
func (n *integer) Bool() bool {
	return n.Int().Sign() != 0
}

// Equal returns true if c is an integer with the same value as n.
func (n *integer) Equal(c cell.I) bool {
	return Is(c) && n.Int().Cmp(To(c).Int()) == 0
}

// Literal returns the literal representation of the integer n.
func (n *integer) Literal() string {
	return n.String()
}

// Name returns the type name for the integer n.
func (n *integer) Name() string {
	return name
}

// Int returns the value of the integer n as a *big.Int.
func (n *integer) Int() *big.Int {
	return (*big.Int)(n)
}

// String returns the text of the integer n.
func (n *integer) String() string {
	return n.Int().String()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t integer

	// The integer type is a cell.
	_ = cell.I(&t)

	// The integer type has a literal representation.
	_ = literal.I(&t)

	// The integer type has a truth value.
	_ = truth.I(&t)
}
