// Package evidence defines the taxonomy of reasons a deduction or guess
// fired, so that every mutation the solver makes can be replayed and
// explained in a step transcript.
package evidence

import (
	"fmt"

	"github.com/sudokuengine/core/internal/candidateset"
	"github.com/sudokuengine/core/internal/grid"
)

// Evidence is the sum type of everything that can justify a mutation:
// Naked, Hidden, Linked, Guess, or a Paradox wrapping one of the other
// four.
type Evidence interface {
	// Level returns the combination size (or, for GuessEvidence, the
	// nested guess depth) that produced this evidence.
	Level() int
	fmt.Stringer
	isEvidence()
}

// Naked records that a size-`level` set of cells in house was found to
// jointly hold only values, licensing removal of values from the
// house's other cells.
type Naked struct {
	LevelN int
	House  grid.House
	Cells  []grid.Cell
	Values candidateset.Set
}

func (e Naked) Level() int { return e.LevelN }
func (e Naked) isEvidence() {}
func (e Naked) String() string {
	return fmt.Sprintf("naked@%d: %v confined to %v in %s", e.LevelN, e.Values.Slice(), e.Cells, e.House)
}

// Hidden records that, within house, values were found confined to
// exactly cells, licensing retaining only values in those cells.
type Hidden struct {
	LevelN int
	House  grid.House
	Values candidateset.Set
	Cells  []grid.Cell
}

func (e Hidden) Level() int { return e.LevelN }
func (e Hidden) isEvidence() {}
func (e Hidden) String() string {
	return fmt.Sprintf("hidden@%d: %v confined to %v in %s", e.LevelN, e.Values.Slice(), e.Cells, e.House)
}

// Linked records that, across `level` houses of kind, value's positions
// line up with exactly `level` houses of orthKind, licensing removal of
// value from every other cell of those orthKind houses.
type Linked struct {
	LevelN      int
	Value       int
	Kind        grid.HouseKind
	OrthKind    grid.HouseKind
	Indices     []int
	OrthIndices []int
}

func (e Linked) Level() int { return e.LevelN }
func (e Linked) isEvidence() {}
func (e Linked) String() string {
	return fmt.Sprintf("linked@%d: value %d links %s %v to %s %v", e.LevelN, e.Value, e.Kind, e.Indices, e.OrthKind, e.OrthIndices)
}

// Guess records a searcher's branch point: cell was fixed to chosen out
// of candidates, at nested guess depth level.
type Guess struct {
	LevelN     int
	Cell       grid.Cell
	Candidates candidateset.Set
	Chosen     int
}

func (e Guess) Level() int { return e.LevelN }
func (e Guess) isEvidence() {}
func (e Guess) String() string {
	return fmt.Sprintf("guess@%d: %s = %d (from %v)", e.LevelN, e.Cell, e.Chosen, e.Candidates.Slice())
}

// Paradox wraps the Evidence whose application produced an impossible
// state (a house with duplicate solved values, or a cell with no
// candidates left).
type Paradox struct {
	Cause Evidence
}

func (e Paradox) Level() int { return e.Cause.Level() }
func (e Paradox) isEvidence() {}
func (e Paradox) String() string {
	return fmt.Sprintf("paradox: %s", e.Cause)
}
