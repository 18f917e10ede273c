package main

import (
	"io"
	"os"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/gridio"
)

// readGrid reads a puzzle from path, or stdin when path is empty.
func readGrid(path string) (domain.Grid, error) {
	if path == "" {
		return gridio.Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return domain.Grid{}, err
	}
	defer f.Close()
	return gridio.Read(f)
}

// openOutput opens path for writing, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// blankRune picks the blank display character, defaulting to a space.
func blankRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
