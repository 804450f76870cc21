package models

import "image"

// SheetColumns is the fixed number of cells per sheet row.
const SheetColumns = 16

// SheetGeometry describes the cell grid of a composed sheet.
type SheetGeometry struct {
	// CellWidth is the widest glyph width; all cells share it.
	CellWidth int
	// CellHeight is the tallest glyph height; all cells share it.
	CellHeight int
	// Columns is the number of cells per row (always SheetColumns).
	Columns int
	// Rows is the number of cell rows.
	Rows int
	// FirstCode is the code point placed at grid index 0.
	FirstCode int
	// LastCode is the largest code point in the sheet.
	LastCode int
}

// Bounds returns the pixel bounds of the whole sheet.
func (g SheetGeometry) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.CellWidth*g.Columns, g.CellHeight*g.Rows)
}

// Cells returns the number of grid cells.
func (g SheetGeometry) Cells() int {
	return g.Columns * g.Rows
}

// CellOrigin returns the top-left pixel of the cell at grid index.
func (g SheetGeometry) CellOrigin(index int) image.Point {
	return image.Pt(g.CellWidth*(index%g.Columns), g.CellHeight*(index/g.Columns))
}

// CellRect returns the pixel rectangle of the cell at grid index.
func (g SheetGeometry) CellRect(index int) image.Rectangle {
	origin := g.CellOrigin(index)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(g.CellWidth, g.CellHeight))}
}
