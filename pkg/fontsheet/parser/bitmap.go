package parser

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/icza/bitio"
	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/models"
)

const (
	pixelSet   byte = 0xFF
	pixelClear byte = 0x00
)

// MaxGlyphSize bounds the width, height and left padding of a glyph in pixels.
const MaxGlyphSize = 4096

// DecodeBitmap converts a record's hex rows into a row-major 8-bit buffer.
//
// Each row is read most-significant bit first. A negative x offset pads the
// row on the left with clear pixels and consumes that many pixel positions, so
// every row contributes exactly Width pixels. Bits past Width are discarded;
// positions beyond the row's own bit width read as clear. A box larger than
// MaxGlyphSize, or a row count other than Height, is rejected before decoding.
func DecodeBitmap(rec models.GlyphRecord) (models.DecodedGlyph, error) {
	id := strconv.Itoa(rec.Code)
	if rec.Width > MaxGlyphSize || rec.Height > MaxGlyphSize || -rec.XOffset > MaxGlyphSize {
		return models.DecodedGlyph{}, &RecordError{
			Identifier: id,
			Err: fmt.Errorf("%w: %dx%d offset %d exceeds %d", ErrGlyphTooLarge,
				rec.Width, rec.Height, rec.XOffset, MaxGlyphSize),
		}
	}
	if len(rec.Rows) != rec.Height {
		return models.DecodedGlyph{}, &RecordError{
			Identifier: id,
			Err: fmt.Errorf("%w: got %d rows, want %d", ErrPixelCount,
				len(rec.Rows), rec.Height),
		}
	}

	pixels := make([]byte, 0, max(rec.Width, 0)*len(rec.Rows))

	for _, row := range rec.Rows {
		var err error
		pixels, err = decodeRow(pixels, row, rec.Width, rec.XOffset)
		if err != nil {
			return models.DecodedGlyph{}, &RecordError{Identifier: id, Err: err}
		}
	}

	if len(pixels) != rec.Width*rec.Height {
		return models.DecodedGlyph{}, &RecordError{
			Identifier: id,
			Err: fmt.Errorf("%w: got %d, want %dx%d", ErrPixelCount,
				len(pixels), rec.Width, rec.Height),
		}
	}

	return models.DecodedGlyph{
		Code:   rec.Code,
		Width:  rec.Width,
		Height: rec.Height,
		Pixels: pixels,
	}, nil
}

// DecodeAll decodes every record, stopping at the first failure.
func DecodeAll(records []models.GlyphRecord) ([]models.DecodedGlyph, error) {
	glyphs := make([]models.DecodedGlyph, 0, len(records))
	for _, rec := range records {
		g, err := DecodeBitmap(rec)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
	}
	return glyphs, nil
}

// decodeRow appends one row of pixels to dst.
func decodeRow(dst []byte, row string, width, xOffset int) ([]byte, error) {
	if row == "" {
		return dst, fmt.Errorf("%w: empty row", ErrInvalidRow)
	}

	// an odd nibble count gets a trailing zero nibble, which lies past the
	// row's bit width and so reads the same as running off the end
	padded := row
	if len(padded)%2 == 1 {
		padded += "0"
	}
	packed, err := hex.DecodeString(padded)
	if err != nil {
		return dst, fmt.Errorf("%w: %q", ErrInvalidRow, row)
	}

	start := 0
	if xOffset < 0 {
		start = -xOffset
		for i := 0; i < start; i++ {
			dst = append(dst, pixelClear)
		}
	}

	r := bitio.NewReader(bytes.NewReader(packed))
	for x := start; x < width; x++ {
		bit, err := r.ReadBool()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			dst = append(dst, pixelClear)
			continue
		}
		if err != nil {
			return dst, err
		}
		if bit {
			dst = append(dst, pixelSet)
		} else {
			dst = append(dst, pixelClear)
		}
	}

	return dst, nil
}
