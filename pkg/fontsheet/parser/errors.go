package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentifier indicates a record identifier that is not a decimal code point.
var ErrInvalidIdentifier = errors.New("identifier is not a decimal code point")

// ErrInvalidRow indicates a bitmap row that is not a hexadecimal string.
var ErrInvalidRow = errors.New("bitmap row is not hexadecimal")

// ErrPixelCount indicates a decoded bitmap whose size differs from width*height.
var ErrPixelCount = errors.New("decoded pixel count does not match bounding box")

// ErrGlyphTooLarge indicates a bounding box beyond MaxGlyphSize.
var ErrGlyphTooLarge = errors.New("glyph bounding box too large")

// RecordError represents an error in a single glyph record.
type RecordError struct {
	Identifier string
	Err        error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("glyph %q: %v", e.Identifier, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
