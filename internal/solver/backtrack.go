package solver

// BacktrackingSolver assigns digits to blank cells depth-first. The blank
// list is computed once per call in row-major order and never changes
// during a search; only the grid copy owned by the call is mutated. With
// a fixed digit order the search is fully deterministic: solutions are
// discovered in the lexicographic order induced by (blank order, digit
// order).
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// DigitOrder is the conventional 1..9 candidate order.
var DigitOrder = [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
