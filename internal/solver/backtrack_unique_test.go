package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

func TestUniqueClassic(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	unique, st := s.Unique(ctx, classic)
	if !unique {
		t.Fatalf("classic puzzle reported non-unique (nodes=%d)", st.Nodes)
	}
}

func TestUniqueRejectsTwoSolutions(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx := context.Background()

	if unique, _ := s.Unique(ctx, twoSolutions()); unique {
		t.Fatal("grid with two solutions reported unique")
	}
}

func TestUniqueFullGrid(t *testing.T) {
	s := NewBacktrackingSolver()
	if unique, _ := s.Unique(context.Background(), classicSolution); !unique {
		t.Fatal("solved grid reported non-unique")
	}
}

func TestUniqueInvalidGrid(t *testing.T) {
	s := NewBacktrackingSolver()
	bad := classic
	bad[0][1] = 5 // second 5 in row 0

	unique, st := s.Unique(context.Background(), bad)
	if unique {
		t.Fatal("invalid grid reported unique")
	}
	if st.Nodes != 0 {
		t.Errorf("invalid grid searched %d nodes, want rejection up front", st.Nodes)
	}
}

// The saturating count makes the empty grid cheap: the search stops as
// soon as a second completion turns up.
func TestUniqueEmptyGridStopsEarly(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	unique, st := s.Unique(ctx, domain.Grid{})
	if unique {
		t.Fatal("empty grid reported unique")
	}
	t.Logf("stopped after %d nodes in %v", st.Nodes, st.Duration)
}
