package fontsheet

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/encoding"
	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/layout"
	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/models"
	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/output"
	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/parser"
)

// Result holds a composed sheet and its layout.
type Result struct {
	// Sheet is the composed grayscale sheet.
	Sheet *image.Gray
	// Geometry describes the sheet's cell grid.
	Geometry models.SheetGeometry
	// Records is the number of glyph records extracted from the input.
	Records int
	// Glyphs is the number of distinct codes after remapping.
	Glyphs int
}

// Build composes a sheet from font description text.
func Build(text string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, NewConversionError("options", ErrInvalidOption, err)
	}

	records, err := parser.ParseRecords(text)
	if err != nil {
		return nil, NewConversionError("parse", ErrMalformedRecord, err)
	}
	if len(records) == 0 {
		return nil, NewConversionError("parse", ErrEmptyInput, errors.New("no glyph records found"))
	}
	logrus.Debugf("Extracted %d glyph records", len(records))

	glyphs, err := parser.DecodeAll(records)
	if err != nil {
		return nil, NewConversionError("decode", ErrMalformedRecord, err)
	}

	table := BuildTable(glyphs, opts.Remapper())

	sheet, geom, err := layout.Compose(table, opts.Offset)
	if err != nil {
		kind := ErrEmptyInput
		if errors.Is(err, layout.ErrNegativeOffset) {
			kind = ErrInvalidOption
		}
		return nil, NewConversionError("compose", kind, err)
	}

	logrus.WithFields(logrus.Fields{
		"cell":  fmt.Sprintf("%dx%d", geom.CellWidth, geom.CellHeight),
		"rows":  geom.Rows,
		"first": geom.FirstCode,
		"last":  geom.LastCode,
	}).Debug("Composed sheet")

	return &Result{
		Sheet:    sheet,
		Geometry: geom,
		Records:  len(records),
		Glyphs:   len(table),
	}, nil
}

// BuildTable remaps each glyph's code and collects the glyphs by code.
// When two glyphs end up with the same code the later one wins.
func BuildTable(glyphs []models.DecodedGlyph, remap encoding.Remapper) models.GlyphTable {
	table := make(models.GlyphTable, len(glyphs))
	for _, g := range glyphs {
		native := g.Code
		g.Code = remap(native)
		if table.Put(g) {
			logrus.WithFields(logrus.Fields{
				"code":   g.Code,
				"native": native,
			}).Warn("Duplicate glyph code, keeping the later glyph")
		}
	}
	return table
}

// ReadInput reads the font description text at path.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", NewConversionError("read", ErrInputUnreadable, err)
	}
	return string(data), nil
}

// Convert reads the font description at inputPath, composes the sheet and
// writes it to outputPath. Nothing is written unless every stage succeeds.
func Convert(inputPath, outputPath string, opts Options) (*Result, error) {
	text, err := ReadInput(inputPath)
	if err != nil {
		return nil, err
	}

	res, err := Build(text, opts)
	if err != nil {
		return nil, err
	}

	if err := output.SaveImage(res.Sheet, outputPath); err != nil {
		return nil, NewConversionError("write", ErrOutputWrite, err)
	}

	return res, nil
}
