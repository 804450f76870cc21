package encoding

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/japanese"
)

// Charset selects how text is turned into sheet code points.
type Charset string

const (
	// CharsetUnicode uses each rune's value as its code point.
	CharsetUnicode Charset = "unicode"
	// CharsetShiftJIS uses the rune's Shift-JIS bytes packed big-endian.
	CharsetShiftJIS Charset = "sjis"
	// CharsetJIS uses the rune's JIS X 0208 row/column code.
	CharsetJIS Charset = "jis"
)

// ErrUnencodable indicates a rune with no code point in the selected charset.
var ErrUnencodable = errors.New("rune not representable in charset")

// ParseCharset validates a charset name.
func ParseCharset(name string) (Charset, error) {
	switch c := Charset(name); c {
	case CharsetUnicode, CharsetShiftJIS, CharsetJIS:
		return c, nil
	default:
		return "", fmt.Errorf("invalid charset: %s (must be unicode, sjis, or jis)", name)
	}
}

// Codes converts text to one code point per rune.
func Codes(text string, charset Charset) ([]int, error) {
	var codes []int
	for _, r := range text {
		code, err := codeFor(r, charset)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func codeFor(r rune, charset Charset) (int, error) {
	switch charset {
	case CharsetUnicode:
		return int(r), nil
	case CharsetShiftJIS:
		b, err := japanese.ShiftJIS.NewEncoder().String(string(r))
		if err != nil {
			return 0, fmt.Errorf("%w: %q (%s)", ErrUnencodable, r, charset)
		}
		return packBytes(b), nil
	case CharsetJIS:
		b, err := japanese.EUCJP.NewEncoder().String(string(r))
		if err != nil {
			return 0, fmt.Errorf("%w: %q (%s)", ErrUnencodable, r, charset)
		}
		switch {
		case len(b) == 1:
			return int(b[0]), nil
		case len(b) == 2 && b[0] == 0x8E:
			// half-width katakana (JIS X 0201)
			return int(b[1]), nil
		case len(b) == 2:
			return int(b[0]&0x7F)<<8 | int(b[1]&0x7F), nil
		default:
			// three-byte sequences are JIS X 0212
			return 0, fmt.Errorf("%w: %q (%s)", ErrUnencodable, r, charset)
		}
	default:
		return 0, fmt.Errorf("invalid charset: %s", charset)
	}
}

func packBytes(b string) int {
	code := 0
	for i := 0; i < len(b); i++ {
		code = code<<8 | int(b[i])
	}
	return code
}
