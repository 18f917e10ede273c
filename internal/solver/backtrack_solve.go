package solver

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/validator"
)

// SolveAny returns the first solution found, or false if none exists.
// A grid that already violates a constraint yields no solution without
// searching.
func (s *BacktrackingSolver) SolveAny(ctx context.Context, g domain.Grid) (domain.Grid, bool, ports.Stats) {
	return s.SolveAnyOrder(ctx, g, DigitOrder)
}

// SolveAnyOrder is SolveAny with a caller-supplied digit permutation.
// The generator seeds random full solutions through this entry point.
func (s *BacktrackingSolver) SolveAnyOrder(ctx context.Context, g domain.Grid, digits [9]uint8) (domain.Grid, bool, ports.Stats) {
	start := time.Now()
	nodes := 0
	if !validator.Valid(&g) {
		return domain.Grid{}, false, ports.Stats{Duration: time.Since(start)}
	}
	blanks := g.Blanks()

	var out domain.Grid
	found := false
	var dfs func(i int) bool
	dfs = func(i int) bool {
		if ctx.Err() != nil {
			return true // abort, found stays false
		}
		if i == len(blanks) {
			out = g
			found = true
			return true
		}
		cell := blanks[i]
		for _, d := range digits {
			nodes++
			g[cell.Row][cell.Col] = d
			if !validator.Valid(&g) {
				continue
			}
			if dfs(i + 1) {
				return true
			}
		}
		g[cell.Row][cell.Col] = 0
		return false
	}
	dfs(0)
	return out, found, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}

// SolveAll returns every solution to the grid, possibly none. Branches
// are explored exhaustively; result order is deterministic.
func (s *BacktrackingSolver) SolveAll(ctx context.Context, g domain.Grid) ([]domain.Grid, ports.Stats) {
	start := time.Now()
	nodes := 0
	if !validator.Valid(&g) {
		return nil, ports.Stats{Duration: time.Since(start)}
	}
	blanks := g.Blanks()

	var solutions []domain.Grid
	var dfs func(i int)
	dfs = func(i int) {
		if ctx.Err() != nil {
			return
		}
		if i == len(blanks) {
			solutions = append(solutions, g)
			return
		}
		cell := blanks[i]
		for _, d := range DigitOrder {
			nodes++
			g[cell.Row][cell.Col] = d
			if validator.Valid(&g) {
				dfs(i + 1)
			}
		}
		g[cell.Row][cell.Col] = 0
	}
	dfs(0)
	return solutions, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}
