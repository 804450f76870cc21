package layout

import (
	"fmt"
	"image"

	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/models"
	"golang.org/x/image/draw"
)

// FallbackLimit is the grid index below which every placed glyph is replaced
// by the fallback glyph. Control-character glyphs in the source fonts are not
// usable, so they are all drawn with the same substitute.
const FallbackLimit = 32

// Compose lays out the table on a sheet of 16-cell rows.
//
// Glyphs are placed in ascending code order at grid index code-FirstCode.
// Codes missing from the table leave their cell blank. Any glyph landing on an
// index below FallbackLimit is drawn as the glyph with the second-smallest code.
func Compose(table models.GlyphTable, offset int) (*image.Gray, models.SheetGeometry, error) {
	sorted := table.Sorted()
	if len(sorted) == 0 {
		return nil, models.SheetGeometry{}, ErrNoGlyphs
	}
	if len(sorted) < 2 {
		return nil, models.SheetGeometry{}, fmt.Errorf("%w: got %d", ErrNoFallback, len(sorted))
	}

	geom, err := ComputeGeometry(sorted, offset)
	if err != nil {
		return nil, models.SheetGeometry{}, err
	}

	sheet := image.NewGray(geom.Bounds())
	fallback := sorted[1]

	cursor := 0
	for index := 0; index < geom.Cells() && cursor < len(sorted); index++ {
		g := sorted[cursor]
		if index != g.Code-geom.FirstCode {
			continue
		}
		if index < FallbackLimit {
			g = fallback
		}
		paste(sheet, g, geom.CellOrigin(index))
		cursor++
	}

	return sheet, geom, nil
}

// paste copies g onto sheet with its top-left corner at origin.
func paste(sheet *image.Gray, g models.DecodedGlyph, origin image.Point) {
	r := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(g.Width, g.Height))}
	draw.Draw(sheet, r, g.Image(), image.Point{}, draw.Src)
}
