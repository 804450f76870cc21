// Package encoding provides code point conversions between character encodings.
package encoding

// Remapper rewrites a glyph code point.
type Remapper func(code int) int

// Identity returns code unchanged.
func Identity(code int) int {
	return code
}

// ForOptions returns JISToShiftJIS when jisToSJIS is set, otherwise Identity.
func ForOptions(jisToSJIS bool) Remapper {
	if jisToSJIS {
		return JISToShiftJIS
	}
	return Identity
}

const (
	jisFirst  = 0x2121
	sjisFirst = 0x8140

	// Shift-JIS trail bytes skip 0x7F, which falls at column 64 of even rows.
	trailGapColumn = 64

	// Lead bytes 0xA0-0xDF belong to single-byte katakana.
	leadGapStart = 0xA0
	leadGapSize  = 0x40
)

// JISToShiftJIS converts a JIS X 0208 row/column code (high byte row+0x21,
// low byte column+0x20) to its Shift-JIS code. Codes below 0x2121 are
// returned unchanged.
//
// Unlike the legacy closed form, lead bytes 0xA0-0xDF are skipped by adding
// 0x4000, so rows from 0x5F up land on their Shift-JIS table codes instead of
// the half-width kana range.
func JISToShiftJIS(code int) int {
	if code < jisFirst {
		return code
	}

	row := ((code >> 8) & 0xFF) - 0x21
	col := (code & 0xFF) - 0x20

	// each JIS row spans 256 codes but only 94 columns plus the trail gap are
	// used; each pair of rows shares one Shift-JIS lead byte
	sjis := code - jisFirst - row*161
	sjis += (row / 2) * 66
	if row%2 == 0 && col >= trailGapColumn {
		sjis++
	}
	sjis += sjisFirst

	if sjis>>8 >= leadGapStart {
		sjis += leadGapSize << 8
	}
	return sjis
}
