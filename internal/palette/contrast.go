package palette

import "fmt"

// ContrastPair is one text-on-background contrast measurement for a
// single appearance (light or dark).
type ContrastPair struct {
	Text       string  `json:"text"`
	Background string  `json:"background"`
	Appearance string  `json:"appearance"`
	Ratio      float64 `json:"ratio"`
	PassesAA   bool    `json:"passes_aa"`
}

// aaNormalText is the WCAG 2.1 AA minimum contrast for normal text.
const aaNormalText = 4.5

// ContrastReport measures every text-role color against every
// surface-role color, in both appearances. Colors that fail to parse
// are skipped; Validate catches those earlier on the normal path.
func (p *Palette) ContrastReport() []ContrastPair {
	var texts, surfaces []Color
	for _, c := range p.Colors {
		switch c.Role {
		case "text":
			texts = append(texts, c)
		case "surface":
			surfaces = append(surfaces, c)
		}
	}

	var report []ContrastPair
	for _, t := range texts {
		for _, s := range surfaces {
			if pair, ok := measure(t, s, "light"); ok {
				report = append(report, pair)
			}
			if pair, ok := measure(t, s, "dark"); ok {
				report = append(report, pair)
			}
		}
	}
	return report
}

func measure(text, bg Color, appearance string) (ContrastPair, bool) {
	textHex, bgHex := text.Light, bg.Light
	if appearance == "dark" {
		textHex, bgHex = text.Dark, bg.Dark
	}

	tc, err := ParseHex(textHex)
	if err != nil {
		return ContrastPair{}, false
	}
	bc, err := ParseHex(bgHex)
	if err != nil {
		return ContrastPair{}, false
	}

	ratio := ContrastRatio(tc, bc)
	return ContrastPair{
		Text:       text.Name,
		Background: bg.Name,
		Appearance: appearance,
		Ratio:      ratio,
		PassesAA:   ratio >= aaNormalText,
	}, true
}

// String formats the pair for the list --contrast output.
func (cp ContrastPair) String() string {
	mark := "fail"
	if cp.PassesAA {
		mark = "pass"
	}
	return fmt.Sprintf("%s on %s (%s): %.2f:1 [%s]", cp.Text, cp.Background, cp.Appearance, cp.Ratio, mark)
}
