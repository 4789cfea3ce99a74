// Released under an MIT license. See LICENSE.

// Package validate checks the shape of special form arguments.
// Failures are raised as panics carrying a *failure.T.
package validate

import (
	"github.com/diylisp/diy/internal/common/failure"
	"github.com/diylisp/diy/internal/common/interface/cell"
)

// Fixed returns args if it has exactly n elements. Otherwise it panics
// with an ArityError naming form.
func Fixed(form string, args []cell.I, n int) []cell.I {
	if len(args) != n {
		panic(failure.Arity(form, n, len(args)))
	}

	return args
}
