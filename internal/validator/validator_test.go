package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokuengine/core/internal/grid"
)

func newGrid4(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	return g
}

func blankMarks(n int) []int {
	m := make([]int, n*n)
	for i := range m {
		m[i] = -1
	}
	return m
}

func TestValidateAcceptsEmptyBoard(t *testing.T) {
	g := newGrid4(t)
	ok, conflicts, err := Validate(g, blankMarks(4))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateAcceptsConsistentSolution(t *testing.T) {
	g := newGrid4(t)
	solution := [][]int{
		{0, 1, 2, 3},
		{2, 3, 0, 1},
		{1, 0, 3, 2},
		{3, 2, 1, 0},
	}
	marks := make([]int, 16)
	for r, row := range solution {
		for c, v := range row {
			marks[g.IndexOf(grid.Cell{Row: r, Col: c})] = v
		}
	}
	ok, conflicts, err := Validate(g, marks)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateDetectsRowConflict(t *testing.T) {
	g := newGrid4(t)
	marks := blankMarks(4)
	marks[g.IndexOf(grid.Cell{Row: 0, Col: 0})] = 0
	marks[g.IndexOf(grid.Cell{Row: 0, Col: 1})] = 0

	ok, conflicts, err := Validate(g, marks)
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, conflicts, 1)
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, conflicts[0])
}

func TestValidateDetectsBlockConflictAcrossRows(t *testing.T) {
	g := newGrid4(t)
	marks := blankMarks(4)
	marks[g.IndexOf(grid.Cell{Row: 0, Col: 0})] = 3
	marks[g.IndexOf(grid.Cell{Row: 1, Col: 1})] = 3 // same block 0, different row/col

	ok, conflicts, err := Validate(g, marks)
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, conflicts, 1)
	assert.Equal(t, grid.Cell{Row: 1, Col: 1}, conflicts[0])
}

func TestValidateRejectsWrongLength(t *testing.T) {
	g := newGrid4(t)
	_, _, err := Validate(g, []int{0, 1, 2})
	require.Error(t, err)
	var iie *InvalidInputError
	assert.ErrorAs(t, err, &iie)
}

func TestValidateRejectsOutOfRangeValue(t *testing.T) {
	g := newGrid4(t)
	marks := blankMarks(4)
	marks[0] = 4 // N=4, valid values are 0..3
	_, _, err := Validate(g, marks)
	require.Error(t, err)
	var iie *InvalidInputError
	assert.ErrorAs(t, err, &iie)
}

func TestAdapterParsesBoardTextAndDetectsConflict(t *testing.T) {
	g := newGrid4(t)
	a := NewAdapter()
	ok, conflicts, err := a.Validate(context.Background(), g, "11*4\n**4*\n****\n****\n", "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conflicts)
}

func TestAdapterAcceptsCleanBoardText(t *testing.T) {
	g := newGrid4(t)
	a := NewAdapter()
	ok, conflicts, err := a.Validate(context.Background(), g, "1234\n3412\n2143\n4321\n", "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}
