package deducer

import (
	"sort"

	"github.com/sudokuengine/core/internal/candidateset"
	"github.com/sudokuengine/core/internal/combinator"
	"github.com/sudokuengine/core/internal/evidence"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/puzzle"
	"github.com/sudokuengine/core/internal/step"
)

type orientation struct {
	kind, orth grid.HouseKind
}

var linkedOrientations = [2]orientation{
	{grid.Row, grid.Column},
	{grid.Column, grid.Row},
}

// linkedDeduce runs LinkedDeduce@k (the fish family: X-Wing at k=2,
// Swordfish at k=3, ...) for each value and each of the two row/column
// orientations: if a value's positions across k parallel houses line up
// inside exactly k orthogonal houses, it can be removed from every
// other cell of those orthogonal houses.
func (d *Deducer) linkedDeduce(p *puzzle.Puzzle, k int, yield func(step.Step) bool) (fired, cont bool) {
	g := p.Grid()
	n := g.Size()
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	for v := 0; v < n; v++ {
		for _, orient := range linkedOrientations {
			for combo := range combinator.Combinations(indices, k) {
				jset := map[int]struct{}{}
				for _, i := range combo {
					house := grid.House{Kind: orient.kind, Index: i}
					for c := range g.IterCells(&house, nil) {
						if p.Candidates(c).Contains(v) {
							jset[g.IndexInHouse(c, orient.kind)] = struct{}{}
						}
					}
				}

				if len(jset) < k {
					js := sortedKeys(jset)
					ev := evidence.Linked{LevelN: k, Value: v, Kind: orient.kind, OrthKind: orient.orth, Indices: combo, OrthIndices: js}
					yield(step.Step{Evidence: evidence.Paradox{Cause: ev}})
					return true, false
				}
				if len(jset) > k {
					continue
				}

				js := sortedKeys(jset)
				var muts []puzzle.Variation
				for _, j := range js {
					orthHouse := grid.House{Kind: orient.orth, Index: j}
					var excludes []grid.Cell
					for _, i := range combo {
						if c, ok := g.IntersectCellOf(orient.kind, i, j); ok {
							excludes = append(excludes, c)
						}
					}
					var rest []grid.Cell
					for c := range g.IterCells(&orthHouse, excludes) {
						rest = append(rest, c)
					}
					muts = append(muts, p.RemoveCandidates(candidateset.Of(v), rest)...)
				}

				if len(muts) > 0 {
					ev := evidence.Linked{LevelN: k, Value: v, Kind: orient.kind, OrthKind: orient.orth, Indices: combo, OrthIndices: js}
					if !yield(step.Step{Evidence: ev, Mutations: muts}) {
						return true, false
					}
					fired = true
				}
			}
		}
	}
	return fired, true
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
