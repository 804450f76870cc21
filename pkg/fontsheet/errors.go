package fontsheet

import (
	"errors"
	"fmt"
)

// ErrInputUnreadable indicates the input file could not be read.
var ErrInputUnreadable = errors.New("input unreadable")

// ErrMalformedRecord indicates a glyph record that could not be parsed or decoded.
var ErrMalformedRecord = errors.New("malformed glyph record")

// ErrEmptyInput indicates the input yielded too few glyphs to build a sheet.
var ErrEmptyInput = errors.New("not enough glyphs in input")

// ErrOutputWrite indicates the sheet image could not be written.
var ErrOutputWrite = errors.New("output write failed")

// ErrInvalidOption indicates an option value outside its allowed range.
var ErrInvalidOption = errors.New("invalid option")

// ConversionError represents an error during one stage of a conversion.
type ConversionError struct {
	Stage string // "options", "read", "parse", "decode", "compose", "write"
	Kind  error  // one of the Err* sentinels
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Stage, e.Kind, e.Err)
}

func (e *ConversionError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewConversionError creates a new ConversionError.
func NewConversionError(stage string, kind, err error) *ConversionError {
	return &ConversionError{
		Stage: stage,
		Kind:  kind,
		Err:   err,
	}
}
