// Package ports declares the collaborator interfaces the usecase layer
// depends on, so the HTTP/CLI adapters can swap in the deduce+search
// solver, the DLX solver, filesystem storage, etc. without the usecase
// layer knowing which.
package ports

import (
	"context"
	"time"

	"github.com/sudokuengine/core/internal/deducer"
	"github.com/sudokuengine/core/internal/domain"
	"github.com/sudokuengine/core/internal/grid"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a board (given as puzzle-file text) and can test
// uniqueness. board/marks follow the format package's conventions.
type Solver interface {
	Solve(ctx context.Context, g *grid.Grid, board, marks string) (string, Stats, error)
	Unique(ctx context.Context, g *grid.Grid, board, marks string) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty over g.
type Generator interface {
	Generate(ctx context.Context, seed int64, g *grid.Grid, marks string, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs the fast, puzzle-independent house-conflict check.
type Validator interface {
	Validate(ctx context.Context, g *grid.Grid, board, marks string) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step under a rule-level cap.
type Hinter interface {
	Hint(ctx context.Context, g *grid.Grid, board, marks string, cfg deducer.Config) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
