package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// Service aggregates the engine's ports behind one facade for the CLI
// and HTTP adapters.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator) *Service {
	return &Service{Solver: s, Generator: g, Validator: v}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) SolveAny(ctx context.Context, g domain.Grid) (domain.Grid, bool, ports.Stats) {
	if u.Solver == nil {
		return domain.Grid{}, false, ports.Stats{}
	}
	return u.Solver.SolveAny(ctx, g)
}

func (u *Service) SolveAll(ctx context.Context, g domain.Grid) ([]domain.Grid, ports.Stats) {
	if u.Solver == nil {
		return nil, ports.Stats{}
	}
	return u.Solver.SolveAll(ctx, g)
}

func (u *Service) Generate(ctx context.Context, seed int64) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord) {
	if u.Validator == nil {
		return false, nil
	}
	return u.Validator.Validate(ctx, g)
}
