package solver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sudokuengine/core/internal/deducer"
	"github.com/sudokuengine/core/internal/format"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/ports"
	"github.com/sudokuengine/core/internal/puzzle"
	"github.com/sudokuengine/core/internal/searcher"
)

// DeduceSolver is the deduce+search ports.Solver (selected by `serve
// --solver deduce`): it runs a Deducer to fixpoint, then a Searcher over
// whatever it couldn't resolve alone.
// Unlike DLXSolver it counts deducer steps and guesses as "nodes",
// reflecting how much logical work the solve actually took.
type DeduceSolver struct {
	Config deducer.Config
}

// NewDeduceSolver wires a DeduceSolver with cfg (deducer.DefaultConfig()
// if the caller has no preference).
func NewDeduceSolver(cfg deducer.Config) *DeduceSolver {
	return &DeduceSolver{Config: cfg}
}

func (s *DeduceSolver) solve(ctx context.Context, g *grid.Grid, board, marks string, maxCount int) ([]*puzzle.Puzzle, int, error) {
	p, err := format.ParsePuzzle(strings.NewReader(board), g, marks)
	if err != nil {
		return nil, 0, err
	}

	nodes := 0
	d := deducer.New(s.Config)
	for range d.Deduce(ctx, p) {
		nodes++
	}
	if p.Solved() {
		return []*puzzle.Puzzle{p}, nodes, nil
	}
	if p.Paradoxical() {
		return nil, nodes, nil
	}

	var solutions []*puzzle.Puzzle
	se := searcher.New(deducer.New(s.Config))
	for range se.Search(ctx, p, &solutions, maxCount) {
		nodes++
	}
	return solutions, nodes, nil
}

// Solve returns the first completion found by deduction, falling back to
// guess search for anything the rule set alone cannot resolve.
func (s *DeduceSolver) Solve(ctx context.Context, g *grid.Grid, board, marks string) (string, ports.Stats, error) {
	start := time.Now()
	solutions, nodes, err := s.solve(ctx, g, board, marks, 1)
	if err != nil {
		return "", ports.Stats{}, err
	}
	if len(solutions) == 0 {
		return "", ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errors.New("solver: no solution")
	}
	var sb strings.Builder
	if err := format.FormatPuzzle(&sb, solutions[0], marks); err != nil {
		return "", ports.Stats{}, err
	}
	return sb.String(), ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Unique reports whether board has exactly one solution, stopping the
// guess search as soon as a second branch solves.
func (s *DeduceSolver) Unique(ctx context.Context, g *grid.Grid, board, marks string) (bool, ports.Stats, error) {
	start := time.Now()
	solutions, nodes, err := s.solve(ctx, g, board, marks, 2)
	if err != nil {
		return false, ports.Stats{}, err
	}
	return len(solutions) == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
