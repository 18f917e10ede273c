// Package gridio reads and writes grids as text. The formats carry no
// meaning for the engine itself; they exist so callers can hand a plain
// 81-cell grid value across the boundary.
package gridio

import (
	"fmt"
	"io"
	"strings"

	"svw.info/sudoku-engine/internal/domain"
)

// Read parses text into a Grid. The input must be exactly one of:
//
//	(i)  a 9x9 char grid, digits 1-9 in the appropriate positions;
//	(ii) a 13x13 char grid, the same 9x9 with a 1-char border around
//	     each 3x3 square (border rows/cols 0, 4, 8, 12 are stripped).
//
// Empty lines are ignored. Non-digit chars and the digit 0 read as
// blanks or border.
func Read(r io.Reader) (domain.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.Grid{}, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}

	switch len(lines) {
	case 9:
	case 13:
		lines, err = stripBorder(lines)
		if err != nil {
			return domain.Grid{}, err
		}
	default:
		return domain.Grid{}, fmt.Errorf("gridio: expected 9 or 13 rows, got %d", len(lines))
	}

	var g domain.Grid
	for r, line := range lines {
		for c, ch := range []rune(line) {
			if c > 8 {
				break
			}
			if ch >= '1' && ch <= '9' {
				g[r][c] = uint8(ch - '0')
			}
		}
	}
	return g, nil
}

func stripBorder(lines []string) ([]string, error) {
	out := make([]string, 0, 9)
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) != 13 {
			return nil, fmt.Errorf("gridio: bordered row %d has %d chars, want 13", i, len(runes))
		}
		if i%4 == 0 {
			continue
		}
		row := make([]rune, 0, 9)
		for j, ch := range runes {
			if j%4 == 0 {
				continue
			}
			row = append(row, ch)
		}
		out = append(out, string(row))
	}
	return out, nil
}

// Write renders a Grid as text, ending with a newline. With border a
// 13x13 char grid is written, framing each 3x3 square; otherwise the
// plain 9x9 form. Zeros render as blank.
func Write(w io.Writer, g domain.Grid, border bool, blank rune) error {
	var s string
	if border {
		s = borderString(g, blank)
	} else {
		s = plainString(g, blank)
	}
	_, err := io.WriteString(w, s)
	return err
}

func plainString(g domain.Grid, blank rune) string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.WriteRune(cellRune(g[r][c], blank))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func borderString(g domain.Grid, blank rune) string {
	var b strings.Builder
	b.WriteString("╔═══╤═══╤═══╗\n")
	for r := 0; r < 9; r++ {
		b.WriteRune('║')
		for c := 0; c < 9; c++ {
			b.WriteRune(cellRune(g[r][c], blank))
			if c == 2 || c == 5 {
				b.WriteRune('│')
			}
		}
		b.WriteString("║\n")
		if r == 2 || r == 5 {
			b.WriteString("╟───┼───┼───╢\n")
		}
	}
	b.WriteString("╚═══╧═══╧═══╝\n")
	return b.String()
}

func cellRune(d uint8, blank rune) rune {
	if d == 0 {
		return blank
	}
	return rune('0' + d)
}
