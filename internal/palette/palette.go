package palette

import (
	"fmt"
	"strings"
)

// Color is a single named palette entry with a light-mode and a
// dark-mode hex value. Role is a free-form grouping label used for
// listing and contrast checks (brand, surface, text, status, ui).
type Color struct {
	Name  string `yaml:"name" json:"name"`
	Light string `yaml:"light" json:"light"`
	Dark  string `yaml:"dark" json:"dark"`
	Role  string `yaml:"role,omitempty" json:"role,omitempty"`
}

// LightRGBA returns the parsed light-mode color.
func (c Color) LightRGBA() (RGBA, error) {
	return ParseHex(c.Light)
}

// DarkRGBA returns the parsed dark-mode color.
func (c Color) DarkRGBA() (RGBA, error) {
	return ParseHex(c.Dark)
}

// Palette is an ordered collection of named colors. The slice order is
// the generation and listing order.
type Palette struct {
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Colors      []Color `yaml:"colors" json:"colors"`
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Find returns the color with the given name.
func (p *Palette) Find(name string) (Color, bool) {
	for _, c := range p.Colors {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}

// Validate checks that the palette can be written as an asset catalog:
// non-empty name, at least one color, unique asset names, names that
// are safe as colorset directory names, and hex values that parse.
func (p *Palette) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("palette name cannot be empty")
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("palette %q has no colors", p.Name)
	}

	seen := make(map[string]bool, len(p.Colors))
	for i, c := range p.Colors {
		if err := validateAssetName(c.Name); err != nil {
			return fmt.Errorf("color %d: %w", i, err)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate color name %q", c.Name)
		}
		seen[c.Name] = true

		if _, err := ParseHex(c.Light); err != nil {
			return fmt.Errorf("color %q light: %w", c.Name, err)
		}
		if _, err := ParseHex(c.Dark); err != nil {
			return fmt.Errorf("color %q dark: %w", c.Name, err)
		}
	}
	return nil
}

// validateAssetName rejects names that are empty, contain path
// separators, or use characters Xcode does not accept in asset names.
func validateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("color name cannot be empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid color name %q", name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return fmt.Errorf("invalid character %q in color name %q", r, name)
		}
	}
	return nil
}
