package hint

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudokuengine/core/internal/candidateset"
	"github.com/sudokuengine/core/internal/deducer"
	"github.com/sudokuengine/core/internal/evidence"
	"github.com/sudokuengine/core/internal/format"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/puzzle"
)

func newGrid4(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	return g
}

func TestHintFindsFirstStepWithoutMutatingCaller(t *testing.T) {
	g := newGrid4(t)
	p := puzzle.New(g)

	row := grid.House{Kind: grid.Row, Index: 0}
	only := grid.Cell{Row: 0, Col: 0}
	for c := range g.IterCells(&row, []grid.Cell{only}) {
		p.Candidates(c).Remove(candidateset.Of(3))
	}

	before := p.Clone()

	h := New()
	st, ok := h.Hint(context.Background(), p, deducer.DefaultConfig())
	require.True(t, ok)
	assert.NotNil(t, st.Evidence)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			cell := grid.Cell{Row: r, Col: c}
			assert.Equal(t, *before.Candidates(cell), *p.Candidates(cell), "Hint must not mutate the caller's puzzle")
		}
	}
}

func TestHintReportsFalseAtFixpoint(t *testing.T) {
	g := newGrid4(t)
	p := puzzle.New(g)

	h := New()
	_, ok := h.Hint(context.Background(), p, deducer.DefaultConfig())
	assert.False(t, ok)
}

func TestHintHonoursRuleCap(t *testing.T) {
	g := newGrid4(t)
	p := puzzle.New(g)

	a, b := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1}
	p.Candidates(a).Retain(candidateset.Of(0, 1))
	p.Candidates(b).Retain(candidateset.Of(0, 1))

	h := New()
	st, ok := h.Hint(context.Background(), p, deducer.DefaultConfig().DisableAll())
	assert.False(t, ok)
	assert.Nil(t, st.Evidence)

	// hidden@1 runs before naked@2: value 0 is confined to block 0 within
	// row 0, so that pointing step comes before the naked pair.
	st, ok = h.Hint(context.Background(), p, deducer.DefaultConfig())
	require.True(t, ok)
	_, isHidden := st.Evidence.(evidence.Hidden)
	assert.True(t, isHidden)
}

func TestAdapterRendersHintFromBoardText(t *testing.T) {
	g := newGrid4(t)
	p := puzzle.New(g)

	row := grid.House{Kind: grid.Row, Index: 0}
	only := grid.Cell{Row: 0, Col: 0}
	for c := range g.IterCells(&row, []grid.Cell{only}) {
		p.Candidates(c).Remove(candidateset.Of(3))
	}

	var sb strings.Builder
	require.NoError(t, format.FormatPuzzle(&sb, p, ""))

	adapter := NewAdapter(New())
	hint, ok, err := adapter.Hint(context.Background(), g, sb.String(), "", deducer.DefaultConfig())
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, hint.Message)
	assert.NotEmpty(t, hint.Cells)
}

func TestAdapterPropagatesParseError(t *testing.T) {
	g := newGrid4(t)
	adapter := NewAdapter(New())
	_, ok, err := adapter.Hint(context.Background(), g, "????\n????\n????\n????\n", "", deducer.DefaultConfig())
	assert.Error(t, err)
	assert.False(t, ok)
}
