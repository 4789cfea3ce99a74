// Released under an MIT license. See LICENSE.

// Package boot provides the diy prelude.
package boot

import (
	_ "embed" // Blank import required by embed.

	"github.com/diylisp/diy/internal/common/type/env"
	"github.com/diylisp/diy/internal/engine"
	"github.com/diylisp/diy/internal/reader/parser"
)

//go:embed boot.diy
var script string //nolint:gochecknoglobals

// Script returns the prelude source.
func Script() string {
	return script
}

// Load evaluates the prelude in the env e.
func Load(e *env.T) error {
	cs, err := parser.New("boot.diy", script).ParseMultiple()
	if err != nil {
		return err
	}

	_, err = engine.EvaluateAll(cs, e)

	return err
}
