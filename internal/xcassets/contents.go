// Package xcassets writes Xcode asset catalog colorsets: one
// <Name>.colorset/Contents.json per palette color, with a universal
// light entry and a dark luminosity appearance entry.
package xcassets

import (
	"encoding/json"
	"fmt"

	"github.com/gutcheck/gutcheck-palette/internal/palette"
)

// components holds the sRGB channel strings. Field order matters:
// json.Marshal preserves struct order and the catalog files are
// byte-compared, so this must stay alpha, blue, green, red.
type components struct {
	Alpha string `json:"alpha"`
	Blue  string `json:"blue"`
	Green string `json:"green"`
	Red   string `json:"red"`
}

// colorSpec is the color object inside a colors entry.
type colorSpec struct {
	ColorSpace string     `json:"color-space"`
	Components components `json:"components"`
}

// appearance selects an appearance variant (dark luminosity).
type appearance struct {
	Appearance string `json:"appearance"`
	Value      string `json:"value"`
}

// colorEntry is one entry of the colors array. The light entry has no
// appearances; the dark entry carries the luminosity appearance.
type colorEntry struct {
	Appearances []appearance `json:"appearances,omitempty"`
	Color       colorSpec    `json:"color"`
	Idiom       string       `json:"idiom"`
}

// contentsInfo is the fixed info block Xcode expects.
type contentsInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Contents is the full Contents.json document for a colorset.
type Contents struct {
	Colors []colorEntry `json:"colors"`
	Info   contentsInfo `json:"info"`
}

// catalogInfo is the root Contents.json of a freshly created catalog,
// which carries only the info block.
type catalogInfo struct {
	Info contentsInfo `json:"info"`
}

// xcodeInfo returns the info block every catalog file carries.
func xcodeInfo() contentsInfo {
	return contentsInfo{Author: "xcode", Version: 1}
}

// ContentsForColor builds the Contents document for a palette color.
func ContentsForColor(c palette.Color) (*Contents, error) {
	light, err := c.LightRGBA()
	if err != nil {
		return nil, fmt.Errorf("color %q light: %w", c.Name, err)
	}
	dark, err := c.DarkRGBA()
	if err != nil {
		return nil, fmt.Errorf("color %q dark: %w", c.Name, err)
	}

	return &Contents{
		Colors: []colorEntry{
			{
				Color: colorSpec{
					ColorSpace: "srgb",
					Components: componentsFor(light),
				},
				Idiom: "universal",
			},
			{
				Appearances: []appearance{{Appearance: "luminosity", Value: "dark"}},
				Color: colorSpec{
					ColorSpace: "srgb",
					Components: componentsFor(dark),
				},
				Idiom: "universal",
			},
		},
		Info: xcodeInfo(),
	}, nil
}

// componentsFor converts an RGBA value into catalog component strings.
func componentsFor(c palette.RGBA) components {
	return components{
		Alpha: c.Alpha(),
		Blue:  c.Blue(),
		Green: c.Green(),
		Red:   c.Red(),
	}
}

// Marshal serializes the document with two-space indentation, matching
// the files Xcode itself writes.
func (c *Contents) Marshal() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
