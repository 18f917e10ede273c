package ports

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver searches for solutions to a grid. "No solution" is a normal
// outcome reported through the bool/empty-slice results, never an error.
type Solver interface {
	// SolveAny returns the first solution in (blank-order, digit-order)
	// lexicographic order, or false if none exists.
	SolveAny(ctx context.Context, g domain.Grid) (domain.Grid, bool, Stats)
	// SolveAnyOrder is SolveAny with a caller-supplied digit permutation.
	SolveAnyOrder(ctx context.Context, g domain.Grid, digits [9]uint8) (domain.Grid, bool, Stats)
	// SolveAll returns every solution, in deterministic discovery order.
	SolveAll(ctx context.Context, g domain.Grid) ([]domain.Grid, Stats)
	// Unique reports whether the grid has exactly one solution.
	Unique(ctx context.Context, g domain.Grid) (bool, Stats)
}

// Generator creates puzzles with a unique solution from a seed.
type Generator interface {
	Generate(ctx context.Context, seed int64) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord)
}
