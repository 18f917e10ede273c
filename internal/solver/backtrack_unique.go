package solver

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/validator"
)

// Unique counts solutions up to 2 and reports whether exactly one
// exists. The count saturates: once a second solution is found the rest
// of the search is abandoned, so distinguishing "exactly one" from "two
// or more" never enumerates everything. The counter is local to this
// call; nothing persists between invocations. An invalid or unsolvable
// grid counts zero solutions and is not unique.
func (s *BacktrackingSolver) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats) {
	start := time.Now()
	nodes := 0
	if !validator.Valid(&g) {
		return false, ports.Stats{Duration: time.Since(start)}
	}
	blanks := g.Blanks()

	count := 0
	var dfs func(i int) bool
	dfs = func(i int) bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		if i == len(blanks) {
			count++
			return count >= 2
		}
		cell := blanks[i]
		for _, d := range DigitOrder {
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
	_ = dfs(0)
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}
