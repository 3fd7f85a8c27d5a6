// Package palette defines the GutCheck color palette model: RGBA color
// values parsed from hex notation, named light/dark color pairs, and
// ordered palettes that feed the asset catalog writer.
package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGBA is an 8-bit-per-channel sRGB color with alpha.
type RGBA struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// ParseHex parses a hex color string into an RGBA value.
// Accepted forms are RGB, RRGGBB, and RRGGBBAA, case-insensitive,
// with an optional leading '#'. RGB nibbles are doubled (F -> FF).
func ParseHex(s string) (RGBA, error) {
	orig := s
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(s) {
	case 3:
		var expanded strings.Builder
		for _, c := range s {
			expanded.WriteRune(c)
			expanded.WriteRune(c)
		}
		s = expanded.String()
	case 6, 8:
		// handled below
	default:
		return RGBA{}, fmt.Errorf("invalid hex color %q: expected 3, 6, or 8 hex digits", orig)
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid hex color %q: %w", orig, err)
	}

	c := RGBA{A: 0xFF}
	if len(s) == 8 {
		c.A = uint8(v & 0xFF)
		v >>= 8
	}
	c.B = uint8(v & 0xFF)
	c.G = uint8((v >> 8) & 0xFF)
	c.R = uint8((v >> 16) & 0xFF)
	return c, nil
}

// Hex returns the canonical #RRGGBB form of the color.
// The alpha byte is appended only when it is not fully opaque.
func (c RGBA) Hex() string {
	if c.A != 0xFF {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Component formats a single channel byte as the asset catalog expects:
// the 0..1 sRGB value with exactly three decimals.
func Component(v uint8) string {
	return fmt.Sprintf("%.3f", float64(v)/255.0)
}

// Red returns the red channel formatted for the asset catalog.
func (c RGBA) Red() string { return Component(c.R) }

// Green returns the green channel formatted for the asset catalog.
func (c RGBA) Green() string { return Component(c.G) }

// Blue returns the blue channel formatted for the asset catalog.
func (c RGBA) Blue() string { return Component(c.B) }

// Alpha returns the alpha channel formatted for the asset catalog.
func (c RGBA) Alpha() string { return Component(c.A) }

// Luminance returns the WCAG relative luminance of the color (0..1).
func (c RGBA) Luminance() float64 {
	lin := func(v uint8) float64 {
		f := float64(v) / 255.0
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between two colors.
// The result is in the range 1..21 regardless of argument order.
func ContrastRatio(a, b RGBA) float64 {
	la := a.Luminance()
	lb := b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
