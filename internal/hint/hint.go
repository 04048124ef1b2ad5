// Package hint layers a non-destructive preview over the Deducer: run its
// rules on a throwaway clone and hand back only the first step found,
// leaving the caller's puzzle untouched.
package hint

import (
	"context"
	"strings"

	"github.com/sudokuengine/core/internal/deducer"
	"github.com/sudokuengine/core/internal/domain"
	"github.com/sudokuengine/core/internal/format"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/puzzle"
	"github.com/sudokuengine/core/internal/step"
)

// Hinter wraps a Deducer for one-shot preview use.
type Hinter struct{}

// New constructs a Hinter.
func New() *Hinter { return &Hinter{} }

// Hint runs a deducer configured with cfg over a clone of p and returns
// the first step it yields, without mutating p. Reports false if the
// deducer reaches a fixpoint (or ctx is cancelled) before finding one.
func (h *Hinter) Hint(ctx context.Context, p *puzzle.Puzzle, cfg deducer.Config) (step.Step, bool) {
	clone := p.Clone()
	d := deducer.New(cfg)
	for s := range d.Deduce(ctx, clone) {
		return s, true
	}
	return step.Step{}, false
}

// HintText parses board/marks over g, previews the next logical step
// under cfg, and renders it into a domain.Hint.
func (h *Hinter) HintText(ctx context.Context, g *grid.Grid, board, marks string, cfg deducer.Config) (domain.Hint, bool, error) {
	p, err := format.ParsePuzzle(strings.NewReader(board), g, marks)
	if err != nil {
		return domain.Hint{}, false, err
	}
	st, ok := h.Hint(ctx, p, cfg)
	if !ok {
		return domain.Hint{}, false, nil
	}

	var sb strings.Builder
	if err := format.FormatStep(&sb, st, g, marks); err != nil {
		return domain.Hint{}, false, err
	}

	cells := make([]domain.CellCoord, len(st.Mutations))
	for i, mut := range st.Mutations {
		cells[i] = domain.CellCoord{Row: mut.Cell.Row, Col: mut.Cell.Col}
	}

	return domain.Hint{
		Message:   sb.String(),
		Cells:     cells,
		RuleLevel: st.Evidence.Level(),
	}, true, nil
}

// Adapter exposes a Hinter as a ports.Hinter, the shape the usecase
// layer and HTTP handlers call through.
type Adapter struct{ H *Hinter }

// NewAdapter wraps h as a ports.Hinter.
func NewAdapter(h *Hinter) *Adapter { return &Adapter{H: h} }

func (a *Adapter) Hint(ctx context.Context, g *grid.Grid, board, marks string, cfg deducer.Config) (domain.Hint, bool, error) {
	return a.H.HintText(ctx, g, board, marks, cfg)
}
