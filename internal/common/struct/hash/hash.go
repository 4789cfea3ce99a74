// Released under an MIT license. See LICENSE.

// Package hash provides diy's name to value mapping type.
package hash

import (
	"sort"

	"github.com/diylisp/diy/internal/common/interface/cell"
)

// T (hash) maps names to values. It is not safe for concurrent use.
type T struct {
	m map[string]cell.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]cell.I{}}
}

// Get retrieves the value associated with the name k in the hash h.
func (h *hash) Get(k string) cell.I {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Has returns true if the name k is associated with a value in the hash h.
func (h *hash) Has(k string) bool {
	if h == nil {
		return false
	}

	_, ok := h.m[k]

	return ok
}

// Names returns the names in the hash h in sorted order.
func (h *hash) Names() []string {
	if h == nil {
		return nil
	}

	names := make([]string, 0, len(h.m))
	for k := range h.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Set associates the name k with the cell v in the hash h.
func (h *hash) Set(k string, v cell.I) {
	h.m[k] = v
}
