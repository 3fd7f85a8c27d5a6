package palette

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGBA
	}{
		{"six digits with hash", "#0891B2", RGBA{R: 0x08, G: 0x91, B: 0xB2, A: 0xFF}},
		{"six digits without hash", "0891B2", RGBA{R: 0x08, G: 0x91, B: 0xB2, A: 0xFF}},
		{"lowercase", "#f97316", RGBA{R: 0xF9, G: 0x73, B: 0x16, A: 0xFF}},
		{"three digits expand", "#F0A", RGBA{R: 0xFF, G: 0x00, B: 0xAA, A: 0xFF}},
		{"eight digits with alpha", "#0891B280", RGBA{R: 0x08, G: 0x91, B: 0xB2, A: 0x80}},
		{"white", "#FFFFFF", RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{"black", "#000000", RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}},
		{"surrounding whitespace", "  #10B981 ", RGBA{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	inputs := []string{"", "#", "#12345", "#1234567", "#GGGGGG", "not-a-color", "#12"}

	for _, input := range inputs {
		if _, err := ParseHex(input); err == nil {
			t.Errorf("ParseHex(%q) should error", input)
		}
	}
}

func TestRGBA_Hex(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want string
	}{
		{"opaque", RGBA{R: 0x08, G: 0x91, B: 0xB2, A: 0xFF}, "#0891B2"},
		{"with alpha", RGBA{R: 0x08, G: 0x91, B: 0xB2, A: 0x80}, "#0891B280"},
		{"white", RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestComponent pins the exact formatting the asset catalog schema
// requires: channel/255 with three decimals.
func TestComponent(t *testing.T) {
	tests := []struct {
		v    uint8
		want string
	}{
		{0, "0.000"},
		{255, "1.000"},
		{0x08, "0.031"},
		{0x91, "0.569"},
		{0xB2, "0.698"},
		{0x06, "0.024"},
		{0xB6, "0.714"},
		{0xD4, "0.831"},
		{128, "0.502"},
	}

	for _, tt := range tests {
		if got := Component(tt.v); got != tt.want {
			t.Errorf("Component(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestContrastRatio(t *testing.T) {
	white := RGBA{R: 255, G: 255, B: 255, A: 255}
	black := RGBA{R: 0, G: 0, B: 0, A: 255}

	ratio := ContrastRatio(white, black)
	if ratio < 20.9 || ratio > 21.1 {
		t.Errorf("ContrastRatio(white, black) = %.2f, want ~21", ratio)
	}

	// Argument order must not matter.
	if got := ContrastRatio(black, white); got != ratio {
		t.Errorf("ContrastRatio is not symmetric: %.4f vs %.4f", got, ratio)
	}

	// A color against itself is minimal contrast.
	if got := ContrastRatio(white, white); got != 1.0 {
		t.Errorf("ContrastRatio(white, white) = %.4f, want 1.0", got)
	}
}
