// Package puzzle holds the mutable solving state: one CandidateSet per
// cell, plus the mutation primitives the deducer and searcher use to
// narrow them down while reporting exactly what changed.
package puzzle

import (
	"github.com/sudokuengine/core/internal/candidateset"
	"github.com/sudokuengine/core/internal/grid"
)

// Variation records that a cell lost some candidates, for replaying a
// mutation as part of a step transcript.
type Variation struct {
	Cell    grid.Cell
	Removed candidateset.Set
}

// Puzzle is an N*N array of CandidateSets addressed by the grid's
// linear cell index. The zero value is not usable; construct with New.
type Puzzle struct {
	g     *grid.Grid
	cells []candidateset.Set
}

// New constructs a puzzle over g with every cell holding all N candidates.
func New(g *grid.Grid) *Puzzle {
	n := g.Size()
	cells := make([]candidateset.Set, n*n)
	full := candidateset.Full(n)
	for i := range cells {
		cells[i] = full
	}
	return &Puzzle{g: g, cells: cells}
}

// Grid returns the puzzle's geometry.
func (p *Puzzle) Grid() *grid.Grid { return p.g }

// Candidates returns a pointer to c's live candidate set; callers may
// read it directly but should mutate only through RetainCandidates and
// RemoveCandidates so Variations stay accurate.
func (p *Puzzle) Candidates(c grid.Cell) *candidateset.Set {
	return &p.cells[p.g.IndexOf(c)]
}

// Acknowledge retains only value in cell's candidates, fixing it as a
// given. It does not mark the cell confirmed by itself; Fulfilled/Solved
// only look at candidate set size.
func (p *Puzzle) Acknowledge(c grid.Cell, value int) {
	p.Candidates(c).Retain(candidateset.Of(value))
}

// RetainCandidates intersects vs into every cell in cells, returning a
// Variation for each cell whose candidates actually shrank.
func (p *Puzzle) RetainCandidates(vs candidateset.Set, cells []grid.Cell) []Variation {
	var out []Variation
	for _, c := range cells {
		removed := p.Candidates(c).Retain(vs)
		if !removed.Empty() {
			out = append(out, Variation{Cell: c, Removed: removed})
		}
	}
	return out
}

// RemoveCandidates subtracts vs from every cell in cells, returning a
// Variation for each cell whose candidates actually shrank.
func (p *Puzzle) RemoveCandidates(vs candidateset.Set, cells []grid.Cell) []Variation {
	var out []Variation
	for _, c := range cells {
		removed := p.Candidates(c).Remove(vs)
		if !removed.Empty() {
			out = append(out, Variation{Cell: c, Removed: removed})
		}
	}
	return out
}

// Fulfilled reports whether every cell is solved (candidate set size 1).
func (p *Puzzle) Fulfilled() bool {
	for _, s := range p.cells {
		if s.Size() != 1 {
			return false
		}
	}
	return true
}

// Paradoxical reports whether some cell has no candidates left, or some
// house contains two solved cells sharing the same value.
func (p *Puzzle) Paradoxical() bool {
	for _, s := range p.cells {
		if s.Empty() {
			return true
		}
	}

	for house := range p.g.IterHouses(nil) {
		seen := candidateset.Set{}
		for c := range p.g.IterCells(&house, nil) {
			s := p.Candidates(c)
			if s.Size() != 1 {
				continue
			}
			v, _ := s.Peek()
			if seen.Contains(v) {
				return true
			}
			seen.Merge(candidateset.Of(v))
		}
	}
	return false
}

// Solved reports whether the puzzle is fulfilled and not paradoxical.
func (p *Puzzle) Solved() bool {
	return p.Fulfilled() && !p.Paradoxical()
}

// Clone deep-copies the puzzle's candidate state. The grid is immutable
// geometry and is shared, not copied.
func (p *Puzzle) Clone() *Puzzle {
	cells := make([]candidateset.Set, len(p.cells))
	copy(cells, p.cells)
	return &Puzzle{g: p.g, cells: cells}
}
