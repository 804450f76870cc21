// Package layout arranges decoded glyphs into a fixed-grid sheet.
package layout

import (
	"errors"
	"fmt"

	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/models"
)

// ErrNoGlyphs indicates an empty glyph table.
var ErrNoGlyphs = errors.New("no glyphs to lay out")

// ErrNoFallback indicates a table too small to provide the fallback glyph.
var ErrNoFallback = errors.New("at least two glyphs are required for the fallback glyph")

// ErrNegativeOffset indicates an offset that would start the grid after the first glyph.
var ErrNegativeOffset = errors.New("offset must not be negative")

// ComputeGeometry derives the sheet grid from glyphs sorted by ascending code.
// The grid starts offset codes before the first glyph and ends at the last one;
// every cell is as large as the largest glyph.
func ComputeGeometry(sorted []models.DecodedGlyph, offset int) (models.SheetGeometry, error) {
	if len(sorted) == 0 {
		return models.SheetGeometry{}, ErrNoGlyphs
	}
	if offset < 0 {
		return models.SheetGeometry{}, fmt.Errorf("%w: %d", ErrNegativeOffset, offset)
	}

	geom := models.SheetGeometry{
		Columns:   models.SheetColumns,
		FirstCode: sorted[0].Code - offset,
		LastCode:  sorted[len(sorted)-1].Code,
	}

	for _, g := range sorted {
		geom.CellWidth = max(geom.CellWidth, g.Width)
		geom.CellHeight = max(geom.CellHeight, g.Height)
	}

	span := geom.LastCode - geom.FirstCode + 1
	geom.Rows = (span + geom.Columns - 1) / geom.Columns

	return geom, nil
}
