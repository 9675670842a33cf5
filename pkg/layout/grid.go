// Package layout maps linear sticker indexes onto physical sheet positions.
package layout

import "fmt"

// Point is a physical position on the sheet, in the template's units
// (millimeters for the stock template).
type Point struct {
	X float64
	Y float64
}

// Grid describes the sheet geometry: fixed column count, cell spacing, and
// top-left margins. Spacing may exceed the sticker size to leave a cutting
// gutter; the two are independent axes.
type Grid struct {
	Columns    int
	SpacingX   float64
	SpacingY   float64
	MarginLeft float64
	MarginTop  float64
}

// Validate checks the grid can place stickers at all.
func (g Grid) Validate() error {
	if g.Columns < 1 {
		return fmt.Errorf("layout: grid needs at least one column, got %d", g.Columns)
	}
	return nil
}

// Cell maps a linear index to its (row, column) pair. Rows grow downward as
// indexes increase; the mapping is a strict bijection.
func (g Grid) Cell(index int) (row, col int) {
	return index / g.Columns, index % g.Columns
}

// Position returns the physical top-left corner of the cell holding the given
// index.
func (g Grid) Position(index int) Point {
	row, col := g.Cell(index)
	return Point{
		X: g.MarginLeft + float64(col)*g.SpacingX,
		Y: g.MarginTop + float64(row)*g.SpacingY,
	}
}
