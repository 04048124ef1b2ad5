package deducer

import (
	"github.com/sudokuengine/core/internal/candidateset"
	"github.com/sudokuengine/core/internal/combinator"
	"github.com/sudokuengine/core/internal/evidence"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/puzzle"
	"github.com/sudokuengine/core/internal/step"
)

// hiddenDeduce runs HiddenDeduce@k over every house: a size-k set of
// values confined, within a house, to a set of cells that itself lies
// entirely in some other house licenses removing those values from the
// rest of that other house; if the confining set has exactly k cells,
// it also retains only those values within those k cells (the hidden
// subset and pointing/claiming fall out of the same pass).
func (d *Deducer) hiddenDeduce(p *puzzle.Puzzle, k int, yield func(step.Step) bool) (fired, cont bool) {
	g := p.Grid()
	n := g.Size()
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}

	for house := range g.IterHouses(nil) {
		for combo := range combinator.Combinations(values, k) {
			vSet := candidateset.Of(combo...)

			var cells []grid.Cell
			for c := range g.IterCells(&house, nil) {
				if p.Candidates(c).ContainsAny(vSet) {
					cells = append(cells, c)
				}
			}

			if len(cells) < k {
				ev := evidence.Hidden{LevelN: k, House: house, Values: vSet, Cells: cells}
				yield(step.Step{Evidence: evidence.Paradox{Cause: ev}})
				return true, false
			}

			var muts []puzzle.Variation
			excludeKind := house.Kind
			for _, other := range g.CommonHousesOf(cells, &excludeKind) {
				var rest []grid.Cell
				for c := range g.IterCells(&other, cells) {
					rest = append(rest, c)
				}
				muts = append(muts, p.RemoveCandidates(vSet, rest)...)
			}
			if len(cells) == k {
				muts = append(muts, p.RetainCandidates(vSet, cells)...)
			}

			if len(muts) > 0 {
				ev := evidence.Hidden{LevelN: k, House: house, Values: vSet, Cells: cells}
				if !yield(step.Step{Evidence: ev, Mutations: muts}) {
					return true, false
				}
				fired = true
			}
		}
	}
	return fired, true
}
