package boxgrid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Grid is the immutable row-major layout shared by the builder and the
// highlight updater.
type Grid struct {
	Columns int
	Rows    int
	BoxSize float64
	Margin  float64
}

// rowsEpsilon keeps ceil from rounding 5/(5/3.0) up to 4.
const rowsEpsilon = 1e-9

// NewGrid sizes a grid for the viewport aspect ratio. Degenerate inputs give a
// grid with no rows.
func NewGrid(columns int, aspect, span, margin float64) Grid {
	g := Grid{Columns: columns, Margin: margin}
	if columns <= 0 {
		g.Columns = 0
		return g
	}
	g.BoxSize = span / float64(columns)

	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return g
	}
	g.Rows = int(math.Ceil(float64(columns)/aspect - rowsEpsilon))
	return g
}

func (g Grid) Len() int {
	return g.Columns * g.Rows
}

func (g Grid) Contains(id int) bool {
	return id >= 0 && id < g.Len()
}

func (g Grid) Row(id int) int {
	return id / g.Columns
}

func (g Grid) Column(id int) int {
	return id % g.Columns
}

// ID is the inverse of Row and Column.
func (g Grid) ID(row, column int) (int, bool) {
	if row < 0 || row >= g.Rows || column < 0 || column >= g.Columns {
		return 0, false
	}
	return row*g.Columns + column, true
}

// Pitch is the centre to centre distance between neighbouring boxes.
func (g Grid) Pitch() float64 {
	return g.BoxSize * g.Margin
}

// Position returns the world position of a box, with the grid centred on the
// origin and row 0 at the top.
func (g Grid) Position(id int) mgl64.Vec3 {
	pitch := g.Pitch()
	col := float64(g.Column(id))
	row := float64(g.Row(id))
	return mgl64.Vec3{
		(col - float64(g.Columns-1)/2) * pitch,
		(float64(g.Rows-1)/2 - row) * pitch,
		0,
	}
}

// NeighborIDs returns, in ascending order, every box in the hit column and
// the two columns beside it, across all rows. Columns never wrap onto the
// adjacent row.
func (g Grid) NeighborIDs(center int) []int {
	if !g.Contains(center) {
		return nil
	}
	column := g.Column(center)

	ids := make([]int, 0, 3*g.Rows)
	for row := 0; row < g.Rows; row++ {
		for c := column - 1; c <= column+1; c++ {
			if id, ok := g.ID(row, c); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
