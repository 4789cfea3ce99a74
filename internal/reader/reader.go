// Released under an MIT license. See LICENSE.

// Package reader accumulates lines of diy source until they form
// complete expressions.
package reader

import (
	"errors"
	"strings"

	"github.com/diylisp/diy/internal/common/failure"
	"github.com/diylisp/diy/internal/common/interface/cell"
	"github.com/diylisp/diy/internal/reader/parser"
)

// T (reader) holds input that has not yet formed a complete expression.
type T struct {
	label   string
	pending strings.Builder
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{label: name}
}

// Pending returns true if the reader holds an incomplete expression.
func (r *reader) Pending() bool {
	return strings.TrimSpace(r.pending.String()) != ""
}

// Reset discards any incomplete expression.
func (r *reader) Reset() {
	r.pending.Reset()
}

// Scan adds line to the pending input and returns every expression parsed.
// If the input is incomplete, Scan returns no expressions and no error and
// keeps the input for the next call. Any other error discards the input.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.pending.WriteString(line)
	r.pending.WriteByte('\n')

	cs, err := parser.New(r.label, r.pending.String()).ParseMultiple()
	if errors.Is(err, failure.ErrIncomplete) {
		return nil, nil
	}

	r.pending.Reset()

	return cs, err
}
