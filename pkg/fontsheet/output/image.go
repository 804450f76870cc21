// Package output provides image serialization for composed sheets.
package output

import (
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// SaveImage writes img to path in the format implied by its extension
// (png, jpg, jpeg, gif, tif, tiff, bmp).
func SaveImage(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return fmt.Errorf("%s: image is empty", path)
	}
	return imaging.Save(img, path, imaging.PNGCompressionLevel(png.BestCompression))
}
