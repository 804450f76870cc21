package layout

import (
	"image"

	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/models"
	"golang.org/x/image/font/basicfont"
)

// NewFace exposes a composed sheet as a fixed-width font face. Code points
// map to runes one to one, so the face covers FirstCode up to the last cell.
func NewFace(sheet *image.Gray, geom models.SheetGeometry) *basicfont.Face {
	w, h := geom.CellWidth, geom.CellHeight

	// basicfont wants the glyphs stacked in one column, with coverage in alpha
	mask := image.NewAlpha(image.Rect(0, 0, w, h*geom.Cells()))
	for i := 0; i < geom.Cells(); i++ {
		origin := geom.CellOrigin(i)
		for y := 0; y < h; y++ {
			src := sheet.PixOffset(origin.X, origin.Y+y)
			dst := mask.PixOffset(0, i*h+y)
			copy(mask.Pix[dst:dst+w], sheet.Pix[src:src+w])
		}
	}

	return &basicfont.Face{
		Advance: w,
		Width:   w,
		Height:  h,
		Ascent:  h,
		Descent: 0,
		Mask:    mask,
		Ranges: []basicfont.Range{
			{Low: rune(geom.FirstCode), High: rune(geom.FirstCode + geom.Cells()), Offset: 0},
		},
	}
}
