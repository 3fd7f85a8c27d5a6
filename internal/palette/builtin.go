package palette

import "fmt"

// builtinEntry is one row of the canonical GutCheck palette table.
// The two naming schemes (GutCheck-prefixed and classic) share the
// same hex values and the same order.
type builtinEntry struct {
	gutcheckName string
	classicName  string
	light        string
	dark         string
	role         string
}

// builtinTable is the canonical palette in generation order.
var builtinTable = []builtinEntry{
	{"GutCheckPrimary", "PrimaryColor", "#0891B2", "#06B6D4", "brand"},
	{"GutCheckAccent", "AccentColor", "#F97316", "#FB923C", "brand"},
	{"GutCheckSecondary", "SecondaryColor", "#8B5CF6", "#A78BFA", "brand"},
	{"GutCheckBackground", "BackgroundColor", "#FFFFFF", "#0F172A", "surface"},
	{"GutCheckCardBackground", "CardBackground", "#F8FAFC", "#1E293B", "surface"},
	{"GutCheckSurface", "SurfaceColor", "#F1F5F9", "#334155", "surface"},
	{"GutCheckPrimaryText", "PrimaryText", "#0F172A", "#F8FAFC", "text"},
	{"GutCheckSecondaryText", "SecondaryText", "#475569", "#CBD5E1", "text"},
	{"GutCheckTertiaryText", "TertiaryText", "#94A3B8", "#64748B", "text"},
	{"GutCheckSuccess", "SuccessColor", "#10B981", "#34D399", "status"},
	{"GutCheckWarning", "WarningColor", "#F59E0B", "#FBBF24", "status"},
	{"GutCheckError", "ErrorColor", "#EF4444", "#F87171", "status"},
	{"GutCheckInfo", "InfoColor", "#3B82F6", "#60A5FA", "status"},
	{"GutCheckBorder", "BorderColor", "#E2E8F0", "#334155", "ui"},
	{"GutCheckDisabled", "DisabledColor", "#CBD5E1", "#475569", "ui"},
	{"GutCheckInputBackground", "InputBackground", "#F8FAFC", "#1E293B", "ui"},
	{"GutCheckSymptom", "SymptomColor", "#EC4899", "#F472B6", "brand"},
}

// Built-in palette names. DefaultName is what generate uses when
// neither a flag nor the config names a palette.
const (
	NameGutCheck = "gutcheck"
	NameClassic  = "classic"

	DefaultName = NameGutCheck
)

// GutCheck returns the built-in palette with GutCheck-prefixed asset
// names. The returned palette is a fresh copy the caller may modify.
func GutCheck() *Palette {
	p := &Palette{
		Name:        NameGutCheck,
		Description: "GutCheck app colors (GutCheck-prefixed asset names)",
		Colors:      make([]Color, 0, len(builtinTable)),
	}
	for _, e := range builtinTable {
		p.Colors = append(p.Colors, Color{Name: e.gutcheckName, Light: e.light, Dark: e.dark, Role: e.role})
	}
	return p
}

// Classic returns the built-in palette with the classic asset names
// (PrimaryColor, AccentColor, ...) over the same hex values.
func Classic() *Palette {
	p := &Palette{
		Name:        NameClassic,
		Description: "GutCheck app colors (classic asset names)",
		Colors:      make([]Color, 0, len(builtinTable)),
	}
	for _, e := range builtinTable {
		p.Colors = append(p.Colors, Color{Name: e.classicName, Light: e.light, Dark: e.dark, Role: e.role})
	}
	return p
}

// Builtin returns the built-in palette with the given name.
func Builtin(name string) (*Palette, error) {
	switch name {
	case NameGutCheck:
		return GutCheck(), nil
	case NameClassic:
		return Classic(), nil
	default:
		return nil, fmt.Errorf("unknown built-in palette %q (available: %s, %s)", name, NameGutCheck, NameClassic)
	}
}

// IsBuiltin reports whether name is a built-in palette name.
func IsBuiltin(name string) bool {
	return name == NameGutCheck || name == NameClassic
}

// BuiltinNames returns the built-in palette names in display order.
func BuiltinNames() []string {
	return []string{NameGutCheck, NameClassic}
}
