package output

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderPreview draws codes as a single line of text with face, white on
// black, then enlarges the result by scale using nearest-neighbor sampling.
// Codes the face does not cover leave a blank cell.
func RenderPreview(face *basicfont.Face, codes []int, scale int) *image.Gray {
	line := image.NewGray(image.Rect(0, 0, face.Advance*len(codes), face.Ascent+face.Descent))

	dot := fixed.P(0, face.Ascent)
	for _, code := range codes {
		dr, mask, maskp, advance, ok := face.Glyph(dot, rune(code))
		if !ok {
			advance = fixed.I(face.Advance)
		} else {
			draw.DrawMask(line, dr, image.White, image.Point{}, mask, maskp, draw.Over)
		}
		dot.X += advance
	}

	if scale <= 1 {
		return line
	}

	scaled := image.NewGray(image.Rect(0, 0, line.Bounds().Dx()*scale, line.Bounds().Dy()*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), line, line.Bounds(), draw.Src, nil)
	return scaled
}

