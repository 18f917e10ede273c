package gridio

import (
	"bytes"
	"strings"
	"testing"

	"svw.info/sudoku-engine/internal/domain"
)

var classic = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

const plainInput = `53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

const borderedInput = `+---+---+---+
|53 | 7 |   |
|6  |195|   |
| 98|   | 6 |
+---+---+---+
|8  | 6 |  3|
|4  |8 3|  1|
|7  | 2 |  6|
+---+---+---+
| 6 |   |28 |
|   |419|  5|
|   | 8 | 79|
+---+---+---+
`

func TestReadPlain(t *testing.T) {
	g, err := Read(strings.NewReader(plainInput))
	if err != nil {
		t.Fatal(err)
	}
	if g != classic {
		t.Fatalf("Read(plain) = %v, want classic puzzle", g)
	}
}

func TestReadBordered(t *testing.T) {
	g, err := Read(strings.NewReader(borderedInput))
	if err != nil {
		t.Fatal(err)
	}
	if g != classic {
		t.Fatalf("Read(bordered) = %v, want classic puzzle", g)
	}
}

func TestReadSkipsEmptyLines(t *testing.T) {
	in := "\n" + strings.ReplaceAll(plainInput, "\n", "\n\n")
	g, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if g != classic {
		t.Fatal("blank lines changed the parse")
	}
}

func TestReadZeroMeansBlank(t *testing.T) {
	in := strings.ReplaceAll(plainInput, ".", "0")
	g, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if g != classic {
		t.Fatal("digit 0 was not read as a blank")
	}
}

func TestReadRejectsBadShapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"too few rows", "53..7....\n6..195...\n"},
		{"too many rows", plainInput + "123456789\n"},
		{"bordered short row", strings.Replace(borderedInput, "|53 | 7 |   |", "|53 | 7 |  |", 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tc.in)); err == nil {
				t.Fatal("expected error, got none")
			}
		})
	}
}

func TestWritePlainRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, classic, false, '.'); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != plainInput {
		t.Fatalf("Write(plain) = %q, want %q", got, plainInput)
	}
	g, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if g != classic {
		t.Fatal("plain round trip lost cells")
	}
}

func TestWriteBorderedRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, classic, true, ' '); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "╔═══╤═══╤═══╗\n") || !strings.HasSuffix(out, "╚═══╧═══╧═══╝\n") {
		t.Fatalf("unexpected frame:\n%s", out)
	}
	g, err := Read(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if g != classic {
		t.Fatal("bordered round trip lost cells")
	}
}
