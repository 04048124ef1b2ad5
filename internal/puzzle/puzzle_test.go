package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokuengine/core/internal/candidateset"
	"github.com/sudokuengine/core/internal/grid"
)

func newGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	return g
}

func TestNewEveryCellHoldsAllCandidates(t *testing.T) {
	g := newGrid(t)
	p := New(g)
	for c := range g.IterCells(nil, nil) {
		assert.Equal(t, candidateset.Full(9), *p.Candidates(c))
	}
	assert.False(t, p.Fulfilled())
	assert.False(t, p.Paradoxical())
}

func TestAcknowledgeFixesAGiven(t *testing.T) {
	g := newGrid(t)
	p := New(g)
	cell := grid.Cell{Row: 0, Col: 0}
	p.Acknowledge(cell, 4)
	assert.Equal(t, candidateset.Of(4), *p.Candidates(cell))
}

func TestRemoveCandidatesReportsVariations(t *testing.T) {
	g := newGrid(t)
	p := New(g)
	row := grid.House{Kind: grid.Row, Index: 0}
	var cells []grid.Cell
	for c := range g.IterCells(&row, nil) {
		cells = append(cells, c)
	}

	vs := p.RemoveCandidates(candidateset.Of(0, 1), cells)
	require.Len(t, vs, 9)
	for _, v := range vs {
		assert.Equal(t, candidateset.Of(0, 1), v.Removed)
	}

	// removing the same values again changes nothing, so no variations.
	vs = p.RemoveCandidates(candidateset.Of(0, 1), cells)
	assert.Empty(t, vs)
}

func TestRetainCandidatesReportsVariations(t *testing.T) {
	g := newGrid(t)
	p := New(g)
	cell := grid.Cell{Row: 2, Col: 2}

	vs := p.RetainCandidates(candidateset.Of(3, 4), []grid.Cell{cell})
	require.Len(t, vs, 1)
	assert.Equal(t, cell, vs[0].Cell)
	assert.Equal(t, candidateset.Of(3, 4), *p.Candidates(cell))

	// retaining a superset of the current candidates changes nothing.
	vs = p.RetainCandidates(candidateset.Of(0, 1, 2, 3, 4, 5), []grid.Cell{cell})
	assert.Empty(t, vs)
}

func TestFulfilledRequiresEveryCellSolved(t *testing.T) {
	g := newGrid(t)
	p := New(g)
	for c := range g.IterCells(nil, nil) {
		p.Acknowledge(c, (c.Row+c.Col)%9)
	}
	assert.True(t, p.Fulfilled())
}

func TestParadoxicalOnEmptyCandidates(t *testing.T) {
	g := newGrid(t)
	p := New(g)
	cell := grid.Cell{Row: 0, Col: 0}
	p.Candidates(cell).Retain(candidateset.Set{})
	assert.True(t, p.Paradoxical())
}

func TestParadoxicalOnDuplicateSolvedValuesInHouse(t *testing.T) {
	g := newGrid(t)
	p := New(g)
	p.Acknowledge(grid.Cell{Row: 0, Col: 0}, 5)
	p.Acknowledge(grid.Cell{Row: 0, Col: 1}, 5)
	assert.True(t, p.Paradoxical())
}

func TestSolvedRequiresFulfilledAndNotParadoxical(t *testing.T) {
	g := newGrid(t)
	p := New(g)
	for c := range g.IterCells(nil, nil) {
		p.Acknowledge(c, (3*(c.Row%3)+c.Row/3+c.Col)%9)
	}
	assert.True(t, p.Solved())

	// Force a paradox: a duplicate in a row (r1c2 already holds 1).
	p.Candidates(grid.Cell{Row: 0, Col: 0}).Merge(candidateset.Full(9))
	p.Acknowledge(grid.Cell{Row: 0, Col: 0}, (0+1)%9)
	assert.False(t, p.Solved())
}

func TestCloneIsIndependent(t *testing.T) {
	g := newGrid(t)
	p := New(g)
	cell := grid.Cell{Row: 1, Col: 1}

	clone := p.Clone()
	clone.Candidates(cell).Remove(candidateset.Of(0))

	assert.Equal(t, candidateset.Full(9), *p.Candidates(cell))
	assert.NotEqual(t, *p.Candidates(cell), *clone.Candidates(cell))
}

func TestCloneSharesGrid(t *testing.T) {
	g := newGrid(t)
	p := New(g)
	clone := p.Clone()
	assert.Same(t, p.Grid(), clone.Grid())
}
