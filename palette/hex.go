package palette

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const hexLen = 6

var (
	// ErrLength marks a line that is not exactly six characters.
	ErrLength = errors.New("wrong color string length")
	// ErrDigit marks a line with a character that is not a hex digit.
	ErrDigit = errors.New("bad hex digit")
)

// ParseError names the palette line that could not be read.
type ParseError struct {
	Line   int // 1 based
	Input  string
	Length int
	Err    error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrLength) {
		return fmt.Sprintf("line %d: %q has length %d, want %d hex digits", e.Line, e.Input, e.Length, hexLen)
	}
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseHexColor reads an opaque color written as six hex digits, e.g. "ff8800".
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != hexLen {
		return color.RGBA{}, &ParseError{Line: 1, Input: s, Length: len(s), Err: ErrLength}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, &ParseError{Line: 1, Input: s, Length: len(s), Err: fmt.Errorf("%w: %v", ErrDigit, err)}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ParseHex reads one color per line. Every line, including blank ones in
// the middle, must hold a color; a final newline is allowed.
func ParseHex(text string) (color.Palette, error) {
	if text == "" {
		return nil, ErrEmpty
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	pal := make(color.Palette, 0, len(lines))
	for i, l := range lines {
		c, err := ParseHexColor(strings.TrimSuffix(l, "\r"))
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		pal = append(pal, c)
	}
	return pal, nil
}

// LoadHex reads a palette file.
func LoadHex(fname string) (color.Palette, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	pal, err := ParseHex(string(data))
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", fname, err)
	}
	return pal, nil
}

// FormatHex is the inverse of ParseHex. Fully transparent colors come out black.
func FormatHex(pal color.Palette) string {
	var sb strings.Builder
	for _, col := range pal {
		c, _ := colorful.MakeColor(col)
		sb.WriteString(strings.TrimPrefix(c.Hex(), "#"))
		sb.WriteByte('\n')
	}
	return sb.String()
}
