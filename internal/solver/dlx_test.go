package solver

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

func TestDLXSolverSolvesSingleBlank(t *testing.T) {
	g := newGrid4(t)
	board := "123*\n3412\n2143\n4321\n"

	s := NewDLXSolver()
	out, _, err := s.Solve(context.Background(), g, board, "")
	require.NoError(t, err)
	assert.Contains(t, out, "1234")
}

func TestDLXSolverUniqueTrueForSingleBlank(t *testing.T) {
	g := newGrid4(t)
	board := "123*\n3412\n2143\n4321\n"

	s := NewDLXSolver()
	unique, _, err := s.Unique(context.Background(), g, board, "")
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestDLXSolverUniqueFalseForAmbiguousBoard(t *testing.T) {
	g := newGrid4(t)
	// Swap ambiguity: (0,0)/(0,2)/(1,0)/(1,2) blank, two valid completions
	// (the 2x2 Latin subsquare they sit in can resolve either way).
	board := "* 2 * 4\n* 4 * 2\n2 1 4 3\n4 3 2 1\n"

	s := NewDLXSolver()
	unique, _, err := s.Unique(context.Background(), g, board, "")
	require.NoError(t, err)
	assert.False(t, unique)
}

func TestDLXSolverPropagatesParseError(t *testing.T) {
	g := newGrid4(t)
	board := "123?\n3412\n2143\n4321\n"

	s := NewDLXSolver()
	_, _, err := s.Solve(context.Background(), g, board, "")
	assert.Error(t, err)
}
