// Package searcher performs depth-first guess search over puzzles the
// deducer alone cannot finish, delegating to the deducer after every
// guess so each branch is pruned as aggressively as the rule set allows.
package searcher

import (
	"context"
	"iter"

	"github.com/sudokuengine/core/internal/candidateset"
	"github.com/sudokuengine/core/internal/deducer"
	"github.com/sudokuengine/core/internal/evidence"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/puzzle"
	"github.com/sudokuengine/core/internal/step"
)

// Searcher guesses one cell at a time and reduces each branch with its
// own Deducer, cloning the puzzle so sibling branches never observe
// each other's mutations.
type Searcher struct {
	Deducer *deducer.Deducer
}

// New constructs a Searcher that reduces every guess branch with d.
func New(d *deducer.Deducer) *Searcher {
	return &Searcher{Deducer: d}
}

// Search explores guess branches of p depth-first, appending every
// solved clone it finds to solutions (in discovery order) and yielding
// every GuessEvidence and deducer step along the way as a pre-order
// traversal of the guess tree. It stops once solutions holds maxCount
// entries, once the caller stops iterating, or once branches are
// exhausted, whichever comes first.
func (s *Searcher) Search(ctx context.Context, p *puzzle.Puzzle, solutions *[]*puzzle.Puzzle, maxCount int) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		s.guessSearch(ctx, p, solutions, maxCount, 0, yield)
	}
}

// guessSearch returns false once the stream must stop entirely (the
// caller stopped iterating, or solutions reached maxCount); true means
// this branch is exhausted and the caller may try its next candidate.
func (s *Searcher) guessSearch(ctx context.Context, p *puzzle.Puzzle, solutions *[]*puzzle.Puzzle, maxCount int, level int, yield func(step.Step) bool) bool {
	if ctx.Err() != nil {
		return false
	}

	cell, ok := s.chooseCell(p)
	if !ok {
		return true
	}

	all := *p.Candidates(cell)
	for _, v := range all.Slice() {
		if ctx.Err() != nil {
			return false
		}

		clone := p.Clone()
		muts := clone.RetainCandidates(candidateset.Of(v), []grid.Cell{cell})
		ev := evidence.Guess{LevelN: level + 1, Cell: cell, Candidates: all, Chosen: v}
		if !yield(step.Step{Evidence: ev, Mutations: muts}) {
			return false
		}

		paradox := false
		for st := range s.Deducer.Deduce(ctx, clone) {
			if !yield(st) {
				return false
			}
			if _, ok := st.Evidence.(evidence.Paradox); ok {
				paradox = true
			}
		}
		if paradox {
			continue
		}

		if clone.Solved() {
			*solutions = append(*solutions, clone)
			if len(*solutions) >= maxCount {
				return false
			}
			continue
		}

		if !s.guessSearch(ctx, clone, solutions, maxCount, level+1, yield) {
			return false
		}
	}

	return true
}

// chooseCell picks the next cell to branch on: the first unsolved cell
// (row-major) with exactly 2 candidates, or failing that the unsolved
// cell with the fewest candidates. Reports false if every cell is
// already solved.
func (s *Searcher) chooseCell(p *puzzle.Puzzle) (grid.Cell, bool) {
	g := p.Grid()
	var best grid.Cell
	found := false
	bestSize := g.Size() + 1

	for c := range g.IterCells(nil, nil) {
		size := p.Candidates(c).Size()
		if size <= 1 {
			continue
		}
		if size == 2 {
			return c, true
		}
		if size < bestSize {
			best, bestSize, found = c, size, true
		}
	}
	return best, found
}
