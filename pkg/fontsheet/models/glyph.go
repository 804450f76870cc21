// Package models defines data structures for bitmap font conversion.
package models

import (
	"image"
	"sort"
)

// GlyphRecord represents one glyph record extracted from the font source text.
type GlyphRecord struct {
	// Code is the native code point parsed from the record identifier.
	Code int
	// Width is the bounding box width in pixels.
	Width int
	// Height is the bounding box height in pixels.
	Height int
	// XOffset is the bounding box x offset (may be negative).
	XOffset int
	// YOffset is the bounding box y offset (may be negative).
	YOffset int
	// Rows holds the hex-encoded bitmap rows, top to bottom.
	Rows []string
}

// DecodedGlyph represents a glyph decoded into an 8-bit pixel buffer.
type DecodedGlyph struct {
	// Code is the glyph code point (after remapping, if any).
	Code int
	// Width is the glyph width in pixels.
	Width int
	// Height is the glyph height in pixels.
	Height int
	// Pixels is the row-major buffer of Width*Height bytes, each 0 or 255.
	Pixels []byte
}

// Image wraps the pixel buffer as a grayscale image without copying it.
func (g DecodedGlyph) Image() *image.Gray {
	return &image.Gray{
		Pix:    g.Pixels,
		Stride: g.Width,
		Rect:   image.Rect(0, 0, g.Width, g.Height),
	}
}

// GlyphTable maps code points to decoded glyphs.
type GlyphTable map[int]DecodedGlyph

// Put stores g under its code, replacing any earlier glyph with the same code.
// It reports whether a glyph was replaced.
func (t GlyphTable) Put(g DecodedGlyph) bool {
	_, replaced := t[g.Code]
	t[g.Code] = g
	return replaced
}

// Sorted returns the glyphs ordered by ascending code.
func (t GlyphTable) Sorted() []DecodedGlyph {
	glyphs := make([]DecodedGlyph, 0, len(t))
	for _, g := range t {
		glyphs = append(glyphs, g)
	}
	sort.Slice(glyphs, func(i, j int) bool {
		return glyphs[i].Code < glyphs[j].Code
	})
	return glyphs
}
