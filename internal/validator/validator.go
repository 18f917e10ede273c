package validator

import (
	"context"

	"svw.info/sudoku-engine/internal/domain"
)

// UnitConsistent reports whether a row, column, or box holds no repeated
// nonzero digit. Zeros never conflict.
func UnitConsistent(unit [9]uint8) bool {
	var seen [9]bool
	for _, d := range unit {
		if d == 0 {
			continue
		}
		if seen[d-1] {
			return false
		}
		seen[d-1] = true
	}
	return true
}

// Valid reports whether the grid currently violates no constraint: every
// row, column, and box unit is consistent. The whole grid is checked on
// every call; the search revalidates after each trial placement, so this
// is the dominant cost of solving. A valid grid may still be unsolvable
// in principle; Valid only detects present rule violations.
func Valid(g *domain.Grid) bool {
	for i := 0; i < 9; i++ {
		if !UnitConsistent(g.Row(i)) || !UnitConsistent(g.Col(i)) || !UnitConsistent(g.Box(i)) {
			return false
		}
	}
	return true
}

// FastValidator reports constraint violations with the offending cells,
// for callers that want to highlight conflicts rather than just reject.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for b := 0; b < 9; b++ {
		m := 0
		r0, c0 := (b/3)*3, (b%3)*3
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				val := g[r0+dr][c0+dc]
				if val == 0 {
					continue
				}
				bit := 1 << val
				if m&bit != 0 {
					conf = append(conf, domain.CellCoord{Row: r0 + dr, Col: c0 + dc})
				}
				m |= bit
			}
		}
	}
	return len(conf) == 0, conf
}
