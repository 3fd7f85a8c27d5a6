// Package tui provides a Bubble Tea palette browser for the GutCheck
// palette CLI. styles.go defines lipgloss styles for the browser
// panels and state indicators.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gutcheck/gutcheck-palette/internal/branding"
)

// Panel border and title styles.
var (
	// panelStyle defines the base panel with a rounded border.
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525B")).
			Padding(0, 1)

	// activePanelStyle highlights the currently focused panel.
	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(branding.ColorPrimary)).
				Padding(0, 1)

	// titleStyle formats panel titles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(branding.ColorWhite)).
			Background(lipgloss.Color(branding.ColorPrimary)).
			Padding(0, 1)
)

// Catalog state indicator styles.
var (
	// stateOK renders emerald text for matching colorsets.
	stateOK = lipgloss.NewStyle().
		Foreground(lipgloss.Color(branding.ColorSuccess))

	// stateMissing renders red text for missing colorsets.
	stateMissing = lipgloss.NewStyle().
			Foreground(lipgloss.Color(branding.ColorError))

	// stateDrifted renders amber text for drifted colorsets.
	stateDrifted = lipgloss.NewStyle().
			Foreground(lipgloss.Color(branding.ColorWarning))
)

// Table formatting styles.
var (
	// headerStyle formats table column headers.
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(branding.ColorWhite)).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(branding.ColorPrimaryDark))

	// selectedRowStyle highlights the currently selected table row.
	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(branding.ColorPrimary)).
				Foreground(lipgloss.Color(branding.ColorWhite))

	// normalRowStyle formats a normal (unselected) table row.
	normalRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A1A1AA"))
)

// Label and value styles for key-value pairs.
var (
	// labelStyle formats labels in key-value displays.
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A1A1AA")).
			Width(14)

	// valueStyle formats values in key-value displays.
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(branding.ColorWhite))
)

// Footer and help styles.
var (
	// helpStyle renders keyboard shortcut hints in the footer.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717A"))

	// helpKeyStyle renders keyboard shortcut keys.
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(branding.ColorPrimaryDark)).
			Bold(true)
)

// swatch renders a true-color block for the given hex value.
func swatch(hex string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex)).
		Render("██████")
}
