// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all diy values.
package cell

// I (cell) is a node in a diy syntax tree. Parsed source and evaluation
// results share this representation.
type I interface {
	Equal(c I) bool
	Name() string
}
