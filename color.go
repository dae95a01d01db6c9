package sigpad

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS-style color string as used by browser canvases:
//   - a named color ("black", "navy", "transparent")
//   - hex forms "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - functional forms "rgb(r, g, b)" and "rgba(r, g, b, a)" with channels
//     in 0..255 and alpha in 0..1
//
// The result is a non-premultiplied color.NRGBA.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return nil, fmt.Errorf("sigpad: empty color")
	case s == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFuncColor(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return nil, fmt.Errorf("sigpad: unknown color %q", s)
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHexColor(hex string) (color.Color, error) {
	var digits [8]uint8
	for i := 0; i < len(hex); i++ {
		if i >= len(digits) {
			return nil, fmt.Errorf("sigpad: invalid hex color %q", "#"+hex)
		}
		v, ok := hexDigit(hex[i])
		if !ok {
			return nil, fmt.Errorf("sigpad: invalid hex color %q", "#"+hex)
		}
		digits[i] = v
	}

	c := color.NRGBA{A: 255}
	switch len(hex) {
	case 3, 4:
		c.R, c.G, c.B = digits[0]*17, digits[1]*17, digits[2]*17
		if len(hex) == 4 {
			c.A = digits[3] * 17
		}
	case 6, 8:
		c.R = digits[0]<<4 | digits[1]
		c.G = digits[2]<<4 | digits[3]
		c.B = digits[4]<<4 | digits[5]
		if len(hex) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
	default:
		return nil, fmt.Errorf("sigpad: invalid hex color %q", "#"+hex)
	}
	return c, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}

func parseFuncColor(s string) (color.Color, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("sigpad: invalid color %q", s)
	}
	name := s[:open]
	args := strings.Split(s[open+1:len(s)-1], ",")

	want := 3
	if name == "rgba" {
		want = 4
	}
	if len(args) != want {
		return nil, fmt.Errorf("sigpad: %s expects %d components, got %d", name, want, len(args))
	}

	c := color.NRGBA{A: 255}
	channels := []*uint8{&c.R, &c.G, &c.B}
	for i, ch := range channels {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[i]), 64)
		if err != nil || !(v >= 0 && v <= 255) {
			return nil, fmt.Errorf("sigpad: invalid channel %q in %q", args[i], s)
		}
		*ch = uint8(v + 0.5)
	}
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil || !(a >= 0 && a <= 1) {
			return nil, fmt.Errorf("sigpad: invalid alpha %q in %q", args[3], s)
		}
		c.A = uint8(a*255 + 0.5)
	}
	return c, nil
}
