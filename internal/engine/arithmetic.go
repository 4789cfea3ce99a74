// Released under an MIT license. See LICENSE.

package engine

import (
	"math/big"

	"github.com/diylisp/diy/internal/common/failure"
	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/common/type/boolean"
	"github.com/diylisp/diy/internal/common/type/env"
	"github.com/diylisp/diy/internal/common/type/integer"
	"github.com/diylisp/diy/internal/common/validate"
)

func arithmetic(name string, args []cell.I, e *env.T) cell.I {
	v := validate.Fixed(name, args, 2)

	a := eval(v[0], e)
	b := eval(v[1], e)

	if !integer.Is(a) || !integer.Is(b) {
		panic(failure.Type(name, "arithmetic operands must be numbers"))
	}

	x := integer.To(a).Int()
	y := integer.To(b).Int()

	switch name {
	case "+":
		return integer.Big((&big.Int{}).Add(x, y))
	case "-":
		return integer.Big((&big.Int{}).Sub(x, y))
	case "*":
		return integer.Big((&big.Int{}).Mul(x, y))
	case "/":
		q, _ := floored(name, x, y)
		return integer.Big(q)
	case "mod":
		_, m := floored(name, x, y)
		return integer.Big(m)
	case ">":
		return boolean.Bool(x.Cmp(y) > 0)
	}

	panic("unknown arithmetic operator " + name)
}

// floored returns the quotient rounded toward negative infinity and a
// remainder with the sign of the divisor.
func floored(name string, x, y *big.Int) (*big.Int, *big.Int) {
	if y.Sign() == 0 {
		panic(failure.Division(name))
	}

	q, m := (&big.Int{}).DivMod(x, y, &big.Int{})

	// DivMod is Euclidean: m is never negative.
	if y.Sign() < 0 && m.Sign() != 0 {
		q.Sub(q, big.NewInt(1))
		m.Add(m, y)
	}

	return q, m
}
