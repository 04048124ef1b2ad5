// Package generator carves solvable puzzles out of a randomly filled
// complete grid, using a Solver's uniqueness check to decide how far a
// given can be removed, and the Deducer's own rule levels to grade the
// result against a target difficulty.
package generator

import "github.com/sudokuengine/core/internal/ports"

// UniqueGenerator creates puzzles with a unique solution using a
// provided Solver as its uniqueness oracle.
type UniqueGenerator struct {
	Solver ports.Solver
}

// NewUniqueGenerator wires a generator that uses s to test uniqueness
// while carving givens away.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}
