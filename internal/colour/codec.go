// Package colour provides colour parsing, classification and palette aggregation.
package colour

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidColorLiteral is returned when a literal is not a supported colour syntax.
var ErrInvalidColorLiteral = errors.New("invalid colour literal")

// Hex is a canonical colour: '#' followed by six lowercase hex digits (e.g. "#1a2b3c").
type Hex string

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the canonical hex form of the colour.
func (rgb RGB) Hex() Hex {
	return Hex(fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B))
}

var (
	hexLiteralRegex  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbLiteralRegex  = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	rgbaLiteralRegex = regexp.MustCompile(`^rgba\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*[^,()]*\)$`)
)

// Normalize converts a colour literal into its canonical form.
// Supported forms: #rgb, #rrggbb, rgb(r, g, b) and rgba(r, g, b, a). The alpha
// component of rgba is ignored.
func Normalize(literal string) (Hex, error) {
	literal = strings.TrimSpace(literal)

	if m := hexLiteralRegex.FindStringSubmatch(literal); m != nil {
		return expandHex(m[1]), nil
	}

	m := rgbLiteralRegex.FindStringSubmatch(literal)
	if m == nil {
		m = rgbaLiteralRegex.FindStringSubmatch(literal)
	}
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColorLiteral, literal)
	}

	rgb, err := componentsToRGB(m[1], m[2], m[3])
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidColorLiteral, literal, err)
	}
	return rgb.Hex(), nil
}

// expandHex lowercases a 3 or 6 digit hex body and doubles each nibble of the short form.
func expandHex(digits string) Hex {
	digits = strings.ToLower(digits)
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return Hex("#" + digits)
}

// componentsToRGB parses three decimal channel values in the range 0-255.
func componentsToRGB(r, g, b string) (RGB, error) {
	var out [3]uint8
	for i, s := range [3]string{r, g, b} {
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("component %d out of range: %s", i+1, s)
		}
		out[i] = uint8(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// ToRGB decodes a canonical colour into its channels.
func ToRGB(c Hex) RGB {
	s := string(c)
	return RGB{
		R: parseHexByte(s[1:3]),
		G: parseHexByte(s[3:5]),
		B: parseHexByte(s[5:7]),
	}
}

// RGB decodes the colour into its channels.
func (c Hex) RGB() RGB {
	return ToRGB(c)
}

// String returns the hex string.
func (c Hex) String() string {
	return string(c)
}

// Valid reports whether c is in canonical form.
func (c Hex) Valid() bool {
	if len(c) != 7 || c[0] != '#' {
		return false
	}
	for i := 1; i < 7; i++ {
		ch := c[i]
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			return false
		}
	}
	return true
}

// parseHexByte converts a two-character hex string to a byte.
func parseHexByte(s string) uint8 {
	var result uint8
	for i := 0; i < len(s); i++ {
		result *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			result += c - '0'
		case c >= 'a' && c <= 'f':
			result += c - 'a' + 10
		case c >= 'A' && c <= 'F':
			result += c - 'A' + 10
		}
	}
	return result
}
