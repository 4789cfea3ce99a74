// Released under an MIT license. See LICENSE.

// Package failure provides the errors reported by the diy reader and engine.
package failure

import (
	"fmt"
	"strconv"

	"github.com/diylisp/diy/internal/common/struct/loc"
)

// Kind identifies the class of a failure.
type Kind int

// Failure kinds. Parse failures come first.
const (
	IncompleteExpression Kind = iota
	UnexpectedTrailingInput

	UndefinedSymbol
	TypeError
	ArityError
	DuplicateDefinition
	InvalidClosure
	DivisionByZero
)

// Sentinels for use with errors.Is. Only the kind is compared.
//
//nolint:gochecknoglobals
var (
	ErrIncomplete = &T{Kind: IncompleteExpression}
	ErrTrailing   = &T{Kind: UnexpectedTrailingInput}
	ErrUndefined  = &T{Kind: UndefinedSymbol}
	ErrType       = &T{Kind: TypeError}
	ErrArity      = &T{Kind: ArityError}
	ErrDuplicate  = &T{Kind: DuplicateDefinition}
	ErrClosure    = &T{Kind: InvalidClosure}
	ErrDivision   = &T{Kind: DivisionByZero}
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case IncompleteExpression:
		return "incomplete expression"
	case UnexpectedTrailingInput:
		return "unexpected trailing input"
	case UndefinedSymbol:
		return "undefined symbol"
	case TypeError:
		return "type error"
	case ArityError:
		return "wrong number of arguments"
	case DuplicateDefinition:
		return "duplicate definition"
	case InvalidClosure:
		return "invalid closure"
	case DivisionByZero:
		return "division by zero"
	}

	return "failure " + strconv.Itoa(int(k))
}

// Parse returns true if k is raised by the reader rather than the engine.
func (k Kind) Parse() bool {
	return k == IncompleteExpression || k == UnexpectedTrailingInput
}

// T (failure) describes a single parse or evaluation failure.
// Which fields are set depends on the kind.
type T struct {
	Kind Kind

	Form   string // Special form or closure being evaluated.
	Reason string // Free-form detail.
	Source string // Offending source text.
	Symbol string // Offending symbol.

	Expected int
	Actual   int

	Where *loc.T // Location of the offending source, if known.
}

type failure = T

// Arity creates an ArityError for form.
func Arity(form string, expected, actual int) *failure {
	return &failure{Kind: ArityError, Form: form, Expected: expected, Actual: actual}
}

// Closure creates an InvalidClosure failure.
func Closure(reason string) *failure {
	return &failure{Kind: InvalidClosure, Reason: reason}
}

// Duplicate creates a DuplicateDefinition failure for the symbol s.
func Duplicate(s string) *failure {
	return &failure{Kind: DuplicateDefinition, Symbol: s}
}

// Division creates a DivisionByZero failure for form.
func Division(form string) *failure {
	return &failure{Kind: DivisionByZero, Form: form}
}

// Incomplete creates an IncompleteExpression failure for source.
func Incomplete(source string, where *loc.T) *failure {
	return &failure{Kind: IncompleteExpression, Source: source, Where: where}
}

// Trailing creates an UnexpectedTrailingInput failure for source.
func Trailing(source string, where *loc.T) *failure {
	return &failure{Kind: UnexpectedTrailingInput, Source: source, Where: where}
}

// Type creates a TypeError for form.
func Type(form, reason string) *failure {
	return &failure{Kind: TypeError, Form: form, Reason: reason}
}

// Undefined creates an UndefinedSymbol failure for the symbol s.
func Undefined(s string) *failure {
	return &failure{Kind: UndefinedSymbol, Symbol: s}
}

// Error returns a message for the failure f.
func (f *failure) Error() string {
	s := f.Kind.String()

	switch f.Kind {
	case IncompleteExpression, UnexpectedTrailingInput:
		s += ": " + strconv.Quote(f.Source)
	case UndefinedSymbol, DuplicateDefinition:
		s += ": " + f.Symbol
	case ArityError:
		s = fmt.Sprintf("%s: %s expected %s, passed %d",
			s, f.Form, count(f.Expected), f.Actual)
	case TypeError, DivisionByZero:
		if f.Form != "" {
			s += ": " + f.Form
		}
	}

	if f.Reason != "" {
		s += ": " + f.Reason
	}

	if f.Where != nil {
		s = f.Where.String() + ": " + s
	}

	return s
}

// Is returns true if target is a failure of the same kind as f.
func (f *failure) Is(target error) bool {
	t, ok := target.(*failure)

	return ok && t.Kind == f.Kind
}

func count(n int) string {
	if n == 1 {
		return "1 argument"
	}

	return strconv.Itoa(n) + " arguments"
}
