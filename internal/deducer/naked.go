package deducer

import (
	"github.com/sudokuengine/core/internal/candidateset"
	"github.com/sudokuengine/core/internal/combinator"
	"github.com/sudokuengine/core/internal/evidence"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/puzzle"
	"github.com/sudokuengine/core/internal/step"
)

// nakedDeduce runs NakedDeduce@k over every house: a size-k set of
// cells whose candidates union to exactly k values confines those
// values out of every other cell sharing a house with the set.
func (d *Deducer) nakedDeduce(p *puzzle.Puzzle, k int, yield func(step.Step) bool) (fired, cont bool) {
	g := p.Grid()
	for house := range g.IterHouses(nil) {
		var cells []grid.Cell
		for c := range g.IterCells(&house, nil) {
			cells = append(cells, c)
		}

		for subset := range combinator.Combinations(cells, k) {
			union := candidateset.Set{}
			for _, c := range subset {
				union.Merge(*p.Candidates(c))
			}

			if union.Size() < k {
				ev := evidence.Naked{LevelN: k, House: house, Cells: subset, Values: union}
				yield(step.Step{Evidence: evidence.Paradox{Cause: ev}})
				return true, false
			}
			if union.Size() > k {
				continue
			}

			var muts []puzzle.Variation
			for _, common := range g.CommonHousesOf(subset, nil) {
				var others []grid.Cell
				for c := range g.IterCells(&common, subset) {
					others = append(others, c)
				}
				muts = append(muts, p.RemoveCandidates(union, others)...)
			}

			if len(muts) > 0 {
				ev := evidence.Naked{LevelN: k, House: house, Cells: subset, Values: union}
				if !yield(step.Step{Evidence: ev, Mutations: muts}) {
					return true, false
				}
				fired = true
			}
		}
	}
	return fired, true
}
