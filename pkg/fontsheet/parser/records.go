// Package parser provides glyph record scanning and bitmap decoding.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/models"
)

var (
	startPattern = regexp.MustCompile(`^STARTCHAR\s+(\w+)`)

	// fieldPattern matches the bounding box and bitmap inside one block. A
	// block it does not match is skipped.
	fieldPattern = regexp.MustCompile(
		`BBX\s+(\d+)\s+(\d+)\s+(-?\d+)\s+(-?\d+)\s*\n` +
			`BITMAP\s*\n((?s:.*\S.*))$`)
)

// block is the text between a STARTCHAR line and its ENDCHAR line.
type block struct {
	identifier string
	body       string
}

// ParseRecords extracts glyph records from font description text.
// A record whose identifier is not a decimal number fails the whole input.
func ParseRecords(text string) ([]models.GlyphRecord, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var records []models.GlyphRecord
	for _, b := range splitBlocks(text) {
		if b.identifier == "" {
			continue
		}
		m := fieldPattern.FindStringSubmatch(b.body)
		if m == nil {
			continue
		}

		code, err := strconv.Atoi(b.identifier)
		if err != nil {
			return nil, &RecordError{Identifier: b.identifier, Err: ErrInvalidIdentifier}
		}

		// BBX fields already matched the pattern, so only overflow can fail here
		var bbx [4]int
		for i := range bbx {
			bbx[i], err = strconv.Atoi(m[1+i])
			if err != nil {
				return nil, &RecordError{Identifier: b.identifier, Err: err}
			}
		}

		records = append(records, models.GlyphRecord{
			Code:    code,
			Width:   bbx[0],
			Height:  bbx[1],
			XOffset: bbx[2],
			YOffset: bbx[3],
			Rows:    splitRows(strings.TrimSpace(m[5])),
		})
	}

	return records, nil
}

// splitBlocks cuts text into STARTCHAR…ENDCHAR blocks. A block that is never
// closed, or is cut short by the next STARTCHAR, is dropped.
func splitBlocks(text string) []block {
	var (
		blocks []block
		cur    *block
		body   []string
	)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "STARTCHAR"):
			cur, body = &block{}, nil
			if m := startPattern.FindStringSubmatch(trimmed); m != nil {
				cur.identifier = m[1]
			}
		case cur == nil:
		case trimmed == "ENDCHAR":
			cur.body = strings.Join(body, "\n")
			blocks = append(blocks, *cur)
			cur = nil
		default:
			body = append(body, line)
		}
	}

	return blocks
}

// splitRows returns the trimmed lines of a bitmap section.
func splitRows(section string) []string {
	lines := strings.Split(section, "\n")
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.TrimSpace(line))
	}
	return rows
}
