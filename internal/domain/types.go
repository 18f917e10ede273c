package domain

import "fmt"

// Grid is a 9x9 Sudoku grid in reading order, indexed [row][col].
// Cells hold 1-9 for placed digits and 0 for blanks. Grid is a value
// type: it is copied on assignment and never shared between callers.
type Grid [9][9]uint8

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle pairs a generated grid with the solution it was carved from.
type Puzzle struct {
	Seed     int64 `json:"seed"`
	Grid     Grid  `json:"grid"`
	Solution Grid  `json:"solution"`
}

// Row returns the 9 digits of row r. Panics if r is outside [0,8].
func (g *Grid) Row(r int) [9]uint8 {
	checkIndex("row", r)
	return g[r]
}

// Col returns the 9 digits of column c, in row order. Panics if c is
// outside [0,8].
func (g *Grid) Col(c int) [9]uint8 {
	checkIndex("col", c)
	var out [9]uint8
	for r := 0; r < 9; r++ {
		out[r] = g[r][c]
	}
	return out
}

// Box returns the 9 digits of box b, row-major within the box. Box b
// covers rows [3*(b/3), 3*(b/3)+3) and cols [3*(b%3), 3*(b%3)+3):
//
//	+-+-+-+
//	|0|1|2|
//	+-+-+-+
//	|3|4|5|
//	+-+-+-+
//	|6|7|8|
//	+-+-+-+
//
// Panics if b is outside [0,8].
func (g *Grid) Box(b int) [9]uint8 {
	checkIndex("box", b)
	r0, c0 := (b/3)*3, (b%3)*3
	var out [9]uint8
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			out[dr*3+dc] = g[r0+dr][c0+dc]
		}
	}
	return out
}

// Blanks returns the positions of all zero cells in row-major order.
func (g *Grid) Blanks() []CellCoord {
	out := make([]CellCoord, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				out = append(out, CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}

// CountBlanks returns the number of zero cells.
func (g *Grid) CountBlanks() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// Full reports whether every cell holds a digit.
func (g *Grid) Full() bool { return g.CountBlanks() == 0 }

func checkIndex(kind string, i int) {
	if i < 0 || i > 8 {
		panic(fmt.Sprintf("domain: %s index %d out of range [0,8]", kind, i))
	}
}
