package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

const (
	// TargetBlanks is the number of random blanks carved into a fresh
	// puzzle before the row and column carves.
	TargetBlanks = 35
	// MaxBlanks caps how many blanks may be requested from CarveBlanks.
	MaxBlanks = 64
)

// ErrBlankCount signals a CarveBlanks request outside [1, MaxBlanks].
var ErrBlankCount = errors.New("generator: blank count out of range")

// UniqueGenerator creates puzzles whose unique solution is, by
// construction, the full grid they were carved from: every blank is
// committed only after the solver reconfirms uniqueness.
type UniqueGenerator struct {
	Solver ports.Solver
}

// NewUniqueGenerator wires a generator that uses the given solver for
// the seed solution and for uniqueness checks.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// Generate creates a puzzle from a seed: a random complete solution,
// then up to TargetBlanks carved cells, then one whole-row and one
// whole-column carve. The row and column steps fall back to the prior
// grid when no candidate preserves uniqueness, so the result can carry
// fewer blanks than the nominal maximum. The only error is context
// cancellation.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	nodes := 0

	solution, st, err := g.randomSolution(ctx, rng)
	nodes += st.Nodes
	if err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}

	puz, cst, err := g.CarveBlanks(ctx, rng, solution, TargetBlanks)
	nodes += cst.Nodes
	if err != nil {
		puz = solution // out-of-range request skips the carve step
	}
	if carved, ok := g.carveRow(ctx, rng, puz, &nodes); ok {
		puz = carved
	}
	if carved, ok := g.carveCol(ctx, rng, puz, &nodes); ok {
		puz = carved
	}

	p := &domain.Puzzle{Seed: seed, Grid: puz, Solution: solution}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// randomSolution fills an empty grid by running the first-solution
// search with a shuffled digit order. The empty grid is always
// completable, so a miss can only mean cancellation.
func (g *UniqueGenerator) randomSolution(ctx context.Context, rng *rand.Rand) (domain.Grid, ports.Stats, error) {
	digits := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng.Shuffle(9, func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })

	sol, ok, st := g.Solver.SolveAnyOrder(ctx, domain.Grid{}, digits)
	if !ok {
		return domain.Grid{}, st, context.Canceled
	}
	return sol, st, nil
}
