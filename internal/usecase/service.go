// Package usecase wires the port interfaces together behind one Service,
// the seam the HTTP and CLI adapters both call through.
package usecase

import (
	"context"
	"errors"

	"github.com/sudokuengine/core/internal/deducer"
	"github.com/sudokuengine/core/internal/domain"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g *grid.Grid, board, marks string) (string, ports.Stats, error) {
	if u.Solver == nil {
		return "", ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g, board, marks)
}

func (u *Service) Generate(ctx context.Context, seed int64, g *grid.Grid, marks string, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, g, marks, d)
}

func (u *Service) Validate(ctx context.Context, g *grid.Grid, board, marks string) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g, board, marks)
}

func (u *Service) Hint(ctx context.Context, g *grid.Grid, board, marks string, cfg deducer.Config) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g, board, marks, cfg)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
