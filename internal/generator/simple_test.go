package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokuengine/core/internal/domain"
	"github.com/sudokuengine/core/internal/format"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/solver"
)

func newGrid4(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	return g
}

func TestGenerateProducesAUniquelySolvableBoard(t *testing.T) {
	g := newGrid4(t)
	dlx := solver.NewDLXSolver()
	gen := NewUniqueGenerator(dlx)

	p, _, err := gen.Generate(context.Background(), 42, g, "", domain.Medium)
	require.NoError(t, err)
	require.NotEmpty(t, p.Board.Lines)

	unique, _, err := dlx.Unique(context.Background(), g, p.Board.Lines, "")
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	g := newGrid4(t)
	dlx := solver.NewDLXSolver()
	gen := NewUniqueGenerator(dlx)

	p1, _, err := gen.Generate(context.Background(), 7, g, "", domain.Easy)
	require.NoError(t, err)
	p2, _, err := gen.Generate(context.Background(), 7, g, "", domain.Easy)
	require.NoError(t, err)

	assert.Equal(t, p1.Board.Lines, p2.Board.Lines)
}

func TestGenerateLeavesBoardParseable(t *testing.T) {
	g := newGrid4(t)
	dlx := solver.NewDLXSolver()
	gen := NewUniqueGenerator(dlx)

	p, _, err := gen.Generate(context.Background(), 1, g, "", domain.Expert)
	require.NoError(t, err)

	parsed, err := format.ParsePuzzle(strings.NewReader(p.Board.Lines), g, "")
	require.NoError(t, err)
	assert.False(t, parsed.Paradoxical())
}

func TestGivensRatioDecreasesWithDifficulty(t *testing.T) {
	assert.Greater(t, givensRatio(domain.Easy), givensRatio(domain.Medium))
	assert.Greater(t, givensRatio(domain.Medium), givensRatio(domain.Hard))
	assert.Greater(t, givensRatio(domain.Hard), givensRatio(domain.Expert))
}
