// Package validator offers a cheap, puzzle-independent sanity check: does
// a board already have two cells in the same house holding the same
// value? It never materialises a Puzzle's per-cell candidate sets, so a
// caller can reject a hand-typed board before paying for one.
package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sudokuengine/core/internal/domain"
	"github.com/sudokuengine/core/internal/format"
	"github.com/sudokuengine/core/internal/grid"
)

// InvalidInputError reports that marks doesn't describe g: the wrong
// length, or a value outside [0, N).
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("validator: invalid input: %s", e.Reason)
}

// Validate scans every house of g once, looking for two cells that both
// hold a solved value from marks. marks is g.Size()*g.Size() long,
// row-major, with -1 marking a blank cell and 0..N-1 a solved value.
// conflicts lists, once each, every cell found to duplicate an earlier
// one in its own house, in the order the houses are scanned (rows, then
// columns, then blocks).
func Validate(g *grid.Grid, marks []int) (ok bool, conflicts []grid.Cell, err error) {
	n := g.Size()
	if len(marks) != n*n {
		return false, nil, &InvalidInputError{Reason: fmt.Sprintf("marks has %d entries, expected %d", len(marks), n*n)}
	}
	for _, v := range marks {
		if v < -1 || v >= n {
			return false, nil, &InvalidInputError{Reason: fmt.Sprintf("value %d out of range for N=%d", v, n)}
		}
	}

	valueOf := func(c grid.Cell) int { return marks[g.IndexOf(c)] }
	flagged := make(map[grid.Cell]bool)

	for house := range g.IterHouses(nil) {
		var seen uint64
		for c := range g.IterCells(&house, nil) {
			v := valueOf(c)
			if v < 0 {
				continue
			}
			bit := uint64(1) << uint(v)
			if seen&bit != 0 && !flagged[c] {
				flagged[c] = true
				conflicts = append(conflicts, c)
			}
			seen |= bit
		}
	}
	return len(conflicts) == 0, conflicts, nil
}

// Adapter exposes Validate as a ports.Validator, parsing puzzle-file
// text into the row-major marks array Validate expects.
type Adapter struct{}

// NewAdapter constructs a ports.Validator backed by Validate.
func NewAdapter() *Adapter { return &Adapter{} }

func (a *Adapter) Validate(ctx context.Context, g *grid.Grid, board, marksAlphabet string) (bool, []domain.CellCoord, error) {
	p, err := format.ParsePuzzle(strings.NewReader(board), g, marksAlphabet)
	if err != nil {
		return false, nil, err
	}
	n := g.Size()
	marks := make([]int, n*n)
	for c := range g.IterCells(nil, nil) {
		if cs := p.Candidates(c); cs.Size() == 1 {
			v, _ := cs.Peek()
			marks[g.IndexOf(c)] = v
		} else {
			marks[g.IndexOf(c)] = -1
		}
	}
	ok, conflicts, err := Validate(g, marks)
	if err != nil {
		return false, nil, err
	}
	out := make([]domain.CellCoord, len(conflicts))
	for i, c := range conflicts {
		out[i] = domain.CellCoord{Row: c.Row, Col: c.Col}
	}
	return ok, out, nil
}
