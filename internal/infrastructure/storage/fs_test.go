package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokuengine/core/internal/domain"
)

func TestSaveMintsIDAndLoadRoundTrips(t *testing.T) {
	fs := NewFS(t.TempDir())
	p := &domain.Puzzle{
		Difficulty: domain.Hard,
		Board:      domain.Board{BlockHeight: 2, BlockWidth: 2, Lines: "1234\n3412\n2143\n4321\n"},
		Name:       "sample",
	}

	require.NoError(t, fs.Save(context.Background(), p))
	require.NotEmpty(t, p.ID)

	got, err := fs.Load(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Board.Lines, got.Board.Lines)
	assert.Equal(t, domain.Hard, got.Difficulty)
	assert.Equal(t, "sample", got.Name)
}

func TestLoadMissingIDReturnsNotExist(t *testing.T) {
	fs := NewFS(t.TempDir())
	_, err := fs.Load(context.Background(), "no-such-id")
	assert.Error(t, err)
}

func TestListReturnsAllSavedPuzzlesAcrossDifficulties(t *testing.T) {
	fs := NewFS(t.TempDir())
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Expert} {
		p := &domain.Puzzle{Difficulty: d, Board: domain.Board{Lines: "1\n"}}
		require.NoError(t, fs.Save(context.Background(), p))
	}

	metas, err := fs.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, metas, 3)

	seen := map[domain.Difficulty]bool{}
	for _, m := range metas {
		seen[m.Difficulty] = true
		assert.NotEmpty(t, m.ID)
	}
	assert.True(t, seen[domain.Easy])
	assert.True(t, seen[domain.Medium])
	assert.True(t, seen[domain.Expert])
}

func TestSavePreservesExplicitID(t *testing.T) {
	fs := NewFS(t.TempDir())
	p := &domain.Puzzle{ID: "fixed-id", Difficulty: domain.Medium, Board: domain.Board{Lines: "1\n"}}
	require.NoError(t, fs.Save(context.Background(), p))
	assert.Equal(t, "fixed-id", p.ID)

	got, err := fs.Load(context.Background(), "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", got.ID)
}
