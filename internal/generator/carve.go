package generator

import (
	"context"
	"math/rand"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// CarveBlanks blanks up to count cells of grid, visiting the 81
// positions in a shuffled order and keeping each blank only if the grid
// still has a unique solution. It stops after count blanks or after
// exhausting every position, whichever comes first. A count outside
// [1, MaxBlanks] is rejected with ErrBlankCount and the grid is returned
// unchanged.
func (g *UniqueGenerator) CarveBlanks(ctx context.Context, rng *rand.Rand, grid domain.Grid, count int) (domain.Grid, ports.Stats, error) {
	var st ports.Stats
	if count < 1 || count > MaxBlanks {
		return grid, st, ErrBlankCount
	}

	carved := 0
	for _, pos := range rng.Perm(81) {
		if carved == count {
			break
		}
		r, c := pos/9, pos%9
		if grid[r][c] == 0 {
			continue
		}
		old := grid[r][c]
		grid[r][c] = 0
		unique, ust := g.Solver.Unique(ctx, grid)
		st.Nodes += ust.Nodes
		if !unique {
			grid[r][c] = old // revert
		} else {
			carved++
		}
	}
	return grid, st, nil
}

// carveRow blanks one whole row, trying rows in a shuffled order until
// one preserves uniqueness. Reports false, with the input unchanged,
// when every row fails.
func (g *UniqueGenerator) carveRow(ctx context.Context, rng *rand.Rand, grid domain.Grid, nodes *int) (domain.Grid, bool) {
	for _, r := range rng.Perm(9) {
		cand := grid
		for c := 0; c < 9; c++ {
			cand[r][c] = 0
		}
		unique, st := g.Solver.Unique(ctx, cand)
		*nodes += st.Nodes
		if unique {
			return cand, true
		}
	}
	return grid, false
}

// carveCol is carveRow for columns.
func (g *UniqueGenerator) carveCol(ctx context.Context, rng *rand.Rand, grid domain.Grid, nodes *int) (domain.Grid, bool) {
	for _, c := range rng.Perm(9) {
		cand := grid
		for r := 0; r < 9; r++ {
			cand[r][c] = 0
		}
		unique, st := g.Solver.Unique(ctx, cand)
		*nodes += st.Nodes
		if unique {
			return cand, true
		}
	}
	return grid, false
}
