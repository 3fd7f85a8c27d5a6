// Package branding centralizes all GutCheck brand-related constants
// for the palette CLI, including application identity, brand colors,
// and ASCII art assets.
package branding

// Application identity constants.
const (
	AppName    = "GutCheck"
	CLIName    = "GutCheck Palette CLI"
	BinaryName = "gutcheck-palette"
)

// Brand colors in hex format for Lipgloss true color support.
// These are the light-mode values of the GutCheck palette itself.
const (
	// ColorPrimary is the main brand color (Deep Cyan).
	ColorPrimary = "#0891B2"
	// ColorPrimaryDark is the dark-mode primary (Bright Cyan).
	ColorPrimaryDark = "#06B6D4"
	// ColorAccent is the accent color (Warm Orange).
	ColorAccent = "#F97316"
	// ColorSecondary is the secondary brand color (Violet).
	ColorSecondary = "#8B5CF6"
	// ColorSuccess is the success color (Emerald).
	ColorSuccess = "#10B981"
	// ColorWarning is the warning color (Amber).
	ColorWarning = "#F59E0B"
	// ColorError is the error/danger color (Red).
	ColorError = "#EF4444"
	// ColorBgDark is the dark background color (Slate 900).
	ColorBgDark = "#0F172A"
	// ColorWhite is pure white.
	ColorWhite = "#FFFFFF"
	// ColorText is the primary text color (Slate 900).
	ColorText = "#0F172A"
	// ColorMutedGray is a muted gray for help text (Slate 600).
	ColorMutedGray = "#475569"
	// ColorBorderGray is a panel border gray (Slate 200).
	ColorBorderGray = "#E2E8F0"
)

// Banner is a compact ASCII art palette board for CLI startup display.
const Banner = `
   .---.
  / o o \
 |  ___  |
  \ \_/ /
   '---'`

// StartupBanner returns the full branded startup banner
// with the application name appended below the ASCII art.
func StartupBanner() string {
	return Banner + "\n" +
		"  " + CLIName + "\n"
}
