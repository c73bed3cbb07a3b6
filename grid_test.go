package boxgrid

import (
	"math"
	"reflect"
	"testing"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func TestNewGridRows(t *testing.T) {
	testCases := []struct {
		name    string
		columns int
		aspect  float64
		rows    int
	}{
		{"widescreen demo", 30, 1280.0 / 720.0, 17},
		{"exact division", 5, 5.0 / 3.0, 3},
		{"square", 4, 1, 4},
		{"portrait", 3, 0.5, 6},
		{"wide enough for one row", 10, 20, 1},
		{"zero aspect", 5, 0, 0},
		{"negative aspect", 5, -1, 0},
		{"NaN aspect", 5, math.NaN(), 0},
		{"infinite aspect", 5, math.Inf(1), 0},
		{"no columns", 0, 1, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.columns, tc.aspect, 12, 1.25)
			if g.Rows != tc.rows {
				t.Errorf("rows = %d, want %d", g.Rows, tc.rows)
			}
			if g.Len() != g.Columns*g.Rows {
				t.Errorf("Len = %d, want %d", g.Len(), g.Columns*g.Rows)
			}
		})
	}
}

func TestGridBoxSize(t *testing.T) {
	g := NewGrid(30, 16.0/9.0, 12, 1.25)
	if !almostEqual(g.BoxSize, 0.4) {
		t.Errorf("BoxSize = %f, want 0.4", g.BoxSize)
	}
	if !almostEqual(g.Pitch(), 0.5) {
		t.Errorf("Pitch = %f, want 0.5", g.Pitch())
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	for _, g := range []Grid{
		NewGrid(5, 5.0/3.0, 12, 1.25),
		NewGrid(30, 16.0/9.0, 12, 1.25),
		NewGrid(1, 1, 12, 1.25),
		NewGrid(7, 0.3, 12, 1.25),
	} {
		seen := make(map[[2]int]bool, g.Len())
		for id := 0; id < g.Len(); id++ {
			row, col := g.Row(id), g.Column(id)
			if row != id/g.Columns || col != id%g.Columns {
				t.Fatalf("%dx%d: id %d gave row %d col %d", g.Columns, g.Rows, id, row, col)
			}
			back, ok := g.ID(row, col)
			if !ok || back != id {
				t.Fatalf("%dx%d: ID(%d, %d) = %d, %v, want %d", g.Columns, g.Rows, row, col, back, ok, id)
			}
			if seen[[2]int{row, col}] {
				t.Fatalf("%dx%d: cell (%d, %d) used twice", g.Columns, g.Rows, row, col)
			}
			seen[[2]int{row, col}] = true
		}
	}
}

func TestGridIDOutOfRange(t *testing.T) {
	g := NewGrid(5, 5.0/3.0, 12, 1.25)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 5}} {
		if _, ok := g.ID(rc[0], rc[1]); ok {
			t.Errorf("ID(%d, %d) should be out of range", rc[0], rc[1])
		}
	}
	if g.Contains(-1) || g.Contains(15) || !g.Contains(0) || !g.Contains(14) {
		t.Error("Contains does not match [0, 15)")
	}
}

func TestGridPositionsCentred(t *testing.T) {
	g := NewGrid(5, 5.0/3.0, 12, 1.25)

	var sumX, sumY float64
	for id := 0; id < g.Len(); id++ {
		p := g.Position(id)
		sumX += p[0]
		sumY += p[1]
		if p[2] != 0 {
			t.Errorf("box %d z = %f, want 0", id, p[2])
		}
	}
	if !almostEqual(sumX, 0) || !almostEqual(sumY, 0) {
		t.Errorf("grid not centred: sum = (%f, %f)", sumX, sumY)
	}

	first, next, below := g.Position(0), g.Position(1), g.Position(5)
	if !almostEqual(next[0]-first[0], g.Pitch()) {
		t.Errorf("column step = %f, want %f", next[0]-first[0], g.Pitch())
	}
	if !almostEqual(first[1]-below[1], g.Pitch()) {
		t.Errorf("row step = %f, want %f", first[1]-below[1], g.Pitch())
	}
	if first[0] >= 0 || first[1] <= 0 {
		t.Errorf("box 0 should be top left, got %v", first)
	}
}

func TestNeighborIDs(t *testing.T) {
	g := NewGrid(5, 5.0/3.0, 12, 1.25)

	testCases := []struct {
		name   string
		center int
		want   []int
	}{
		{"middle", 7, []int{1, 2, 3, 6, 7, 8, 11, 12, 13}},
		{"first column includes id 0", 5, []int{0, 1, 5, 6, 10, 11}},
		{"id 0 itself", 0, []int{0, 1, 5, 6, 10, 11}},
		{"last column does not wrap", 14, []int{3, 4, 8, 9, 13, 14}},
		{"top row", 2, []int{1, 2, 3, 6, 7, 8, 11, 12, 13}},
		{"out of range", 15, nil},
		{"negative", -1, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.NeighborIDs(tc.center)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("NeighborIDs(%d) = %v, want %v", tc.center, got, tc.want)
			}
		})
	}
}

func TestNeighborIDsSingleColumn(t *testing.T) {
	g := NewGrid(1, 0.5, 12, 1.25)
	want := []int{0, 1}
	if got := g.NeighborIDs(1); !reflect.DeepEqual(got, want) {
		t.Errorf("NeighborIDs(1) = %v, want %v", got, want)
	}
}

func TestNeighborIDsEmptyGrid(t *testing.T) {
	g := NewGrid(5, 0, 12, 1.25)
	if got := g.NeighborIDs(0); got != nil {
		t.Errorf("empty grid gave neighbours %v", got)
	}
}
