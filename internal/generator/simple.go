package generator

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/sudokuengine/core/internal/candidateset"
	"github.com/sudokuengine/core/internal/deducer"
	"github.com/sudokuengine/core/internal/domain"
	"github.com/sudokuengine/core/internal/format"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/ports"
	"github.com/sudokuengine/core/internal/puzzle"
)

// givensRatio approximates the teacher's fixed 9x9 given counts
// (40/34/28/24 out of 81) as a fraction of the board, scaled to N*N.
func givensRatio(d domain.Difficulty) float64 {
	switch d {
	case domain.Easy:
		return 40.0 / 81.0
	case domain.Medium:
		return 34.0 / 81.0
	case domain.Hard:
		return 28.0 / 81.0
	default: // Expert
		return 24.0 / 81.0
	}
}

// tierConfig is the deducer configuration a puzzle of difficulty d must
// be solvable under without ever falling back to guess search: Easy
// needs only naked singles, Medium adds hidden pairs, Hard adds linked
// (fish) reasoning up to X-Wing. Expert has no satisfying config here;
// it's graded separately by requiring the default config to fail.
func tierConfig(d domain.Difficulty) deducer.Config {
	switch d {
	case domain.Easy:
		return deducer.Config{NakedMaxLevel: 1, HiddenMaxLevel: 0, LinkedMaxLevel: 0, LowerLevelFirst: true}
	case domain.Medium:
		return deducer.Config{NakedMaxLevel: 2, HiddenMaxLevel: 2, LinkedMaxLevel: 0, LowerLevelFirst: true}
	default: // Hard
		return deducer.Config{NakedMaxLevel: 2, HiddenMaxLevel: 2, LinkedMaxLevel: 2, LowerLevelFirst: true}
	}
}

// meetsTier reports whether p, graded by d, is solvable within d's rule
// budget (Expert: solvable only by guessing, i.e. not by the full rule
// set alone).
func meetsTier(ctx context.Context, d domain.Difficulty, p *puzzle.Puzzle) bool {
	clone := p.Clone()
	cfg := deducer.DefaultConfig()
	if d != domain.Expert {
		cfg = tierConfig(d)
	}
	ded := deducer.New(cfg)
	for range ded.Deduce(ctx, clone) {
	}
	if d == domain.Expert {
		return !clone.Solved()
	}
	return clone.Solved()
}

// Generate creates a puzzle with a unique solution using seed and target
// difficulty, over the geometry and marker alphabet given.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, grd *grid.Grid, marks string, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full, ok := fillRandom(ctx, rng, grd)
	if !ok {
		return nil, ports.Stats{}, context.Canceled
	}

	n := grd.Size()
	target := int(float64(n*n) * givensRatio(diff))
	nodes := 0

	positions := make([]grid.Cell, 0, n*n)
	for c := range grd.IterCells(nil, nil) {
		positions = append(positions, c)
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	work := full.Clone()
	given := n * n

	tryTier := func() bool { return meetsTier(ctx, diff, work) }

	for _, cell := range positions {
		if ctx.Err() != nil {
			return nil, ports.Stats{}, ctx.Err()
		}
		if given <= target && tryTier() {
			break
		}

		v, ok := work.Candidates(cell).Peek()
		if !ok {
			continue
		}
		work.Candidates(cell).Merge(candidateset.Full(n))

		var sb strings.Builder
		if err := format.FormatPuzzle(&sb, work, marks); err != nil {
			return nil, ports.Stats{}, err
		}
		unique, st, err := g.Solver.Unique(ctx, grd, sb.String(), marks)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{}, err
		}
		if !unique {
			work.Acknowledge(cell, v)
			continue
		}
		given--
	}

	var sb strings.Builder
	if err := format.FormatPuzzle(&sb, work, marks); err != nil {
		return nil, ports.Stats{}, err
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board: domain.Board{
			BlockHeight: grd.BlockHeight(),
			BlockWidth:  grd.BlockWidth(),
			Marks:       marks,
			Lines:       sb.String(),
		},
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into one full valid solution by
// randomized backtracking.
func fillRandom(ctx context.Context, rng *rand.Rand, g *grid.Grid) (*puzzle.Puzzle, bool) {
	p := puzzle.New(g)
	n := g.Size()
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}

	var cells []grid.Cell
	for c := range g.IterCells(nil, nil) {
		cells = append(cells, c)
	}

	var dfs func(i int) bool
	dfs = func(i int) bool {
		if ctx.Err() != nil {
			return false
		}
		if i == len(cells) {
			return true
		}
		cell := cells[i]
		order := append([]int(nil), values...)
		rng.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })
		for _, v := range order {
			if !p.Candidates(cell).Contains(v) {
				continue
			}
			if !allowedHere(p, g, cell, v) {
				continue
			}
			saved := *p.Candidates(cell)
			p.Acknowledge(cell, v)
			if dfs(i + 1) {
				return true
			}
			*p.Candidates(cell) = saved
		}
		return false
	}
	if !dfs(0) {
		return nil, false
	}
	return p, true
}

func allowedHere(p *puzzle.Puzzle, g *grid.Grid, cell grid.Cell, v int) bool {
	for _, kind := range [3]grid.HouseKind{grid.Row, grid.Column, grid.Block} {
		house := g.HouseOf(cell, kind)
		for c := range g.IterCells(&house, []grid.Cell{cell}) {
			if s := p.Candidates(c); s.Size() == 1 {
				if got, _ := s.Peek(); got == v {
					return false
				}
			}
		}
	}
	return true
}
