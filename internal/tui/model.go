// Package tui provides a Bubble Tea palette browser for the GutCheck
// palette CLI. model.go implements the main Bubble Tea model with
// three panels: the color table, a detail view for the selected
// color, and the catalog status.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gutcheck/gutcheck-palette/internal/branding"
	"github.com/gutcheck/gutcheck-palette/internal/palette"
	"github.com/gutcheck/gutcheck-palette/internal/xcassets"
)

// Panel represents which browser panel is currently focused.
type Panel int

const (
	// PanelColors is the color table panel (top).
	PanelColors Panel = iota
	// PanelDetail is the selected color detail panel (middle).
	PanelDetail
	// PanelCatalog is the catalog status panel (bottom).
	PanelCatalog

	panelCount = 3
)

// Appearance selects which hex column the browser highlights.
type Appearance int

const (
	// AppearanceLight shows light-mode values.
	AppearanceLight Appearance = iota
	// AppearanceDark shows dark-mode values.
	AppearanceDark
)

// String returns a human-readable appearance label.
func (a Appearance) String() string {
	if a == AppearanceDark {
		return "dark"
	}
	return "light"
}

// Model is the main Bubble Tea model for the palette browser.
type Model struct {
	// pal is the palette being browsed.
	pal *palette.Palette
	// assetsDir is the catalog checked by the status panel.
	assetsDir string
	// report is the last catalog verification result, nil until 'r'.
	report *xcassets.Report
	// reportErr holds the last verification error, if any.
	reportErr error
	// activePanel tracks the currently focused panel.
	activePanel Panel
	// appearance selects light or dark values in the table.
	appearance Appearance
	// selected tracks the selected color row index.
	selected int
	// scrollOffset tracks the scroll offset for the color table.
	scrollOffset int
	// showDetail toggles the detail panel.
	showDetail bool
	// width and height store the terminal dimensions.
	width  int
	height int
	// quitting signals the program should exit.
	quitting bool
}

// NewModel creates a browser Model for the given palette and catalog.
func NewModel(p *palette.Palette, assetsDir string) Model {
	return Model{
		pal:         p,
		assetsDir:   assetsDir,
		activePanel: PanelColors,
		showDetail:  true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It processes messages and updates state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		if m.appearance == AppearanceLight {
			m.appearance = AppearanceDark
		} else {
			m.appearance = AppearanceLight
		}
		return m, nil

	case "d":
		m.showDetail = !m.showDetail
		return m, nil

	case "r":
		m.report, m.reportErr = xcassets.Inspect(m.assetsDir, m.pal)
		return m, nil

	case "p":
		m.activePanel = (m.activePanel + 1) % panelCount
		return m, nil

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		if m.selected < m.scrollOffset {
			m.scrollOffset = m.selected
		}
		return m, nil

	case "down", "j":
		if m.selected < m.pal.Len()-1 {
			m.selected++
		}
		// Show max 8 visible rows.
		maxVisible := 8
		if m.selected >= m.scrollOffset+maxVisible {
			m.scrollOffset = m.selected - maxVisible + 1
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model. It renders the browser.
func (m Model) View() string {
	if m.quitting {
		return branding.CLIName + " browser closed.\n"
	}

	// Use sensible defaults if window size is not yet reported.
	w := m.width
	if w == 0 {
		w = 80
	}
	contentWidth := w - 2
	if contentWidth < 48 {
		contentWidth = 48
	}

	sections := []string{
		m.renderHeader(contentWidth),
		m.renderColorPanel(contentWidth),
	}
	if m.showDetail {
		sections = append(sections, m.renderDetailPanel(contentWidth))
	}
	sections = append(sections,
		m.renderCatalogPanel(contentWidth),
		m.renderFooter(contentWidth),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader returns the browser title bar.
func (m Model) renderHeader(width int) string {
	title := fmt.Sprintf("%s — %s palette (%s)", branding.CLIName, m.pal.Name, m.appearance)
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(branding.ColorWhite)).
		Background(lipgloss.Color(branding.ColorPrimary)).
		Padding(0, 1).
		Width(width).
		Render(title)
}

// renderFooter returns the keyboard shortcut help bar.
func (m Model) renderFooter(width int) string {
	keys := []struct {
		key  string
		desc string
	}{
		{"q", "quit"},
		{"tab", "light/dark"},
		{"d", "toggle detail"},
		{"r", "check catalog"},
		{"up/down", "select color"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts,
			helpKeyStyle.Render(k.key)+" "+helpStyle.Render(k.desc),
		)
	}

	help := strings.Join(parts, helpStyle.Render("  |  "))
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(help)
}

// renderColorPanel renders the color table.
func (m Model) renderColorPanel(width int) string {
	colName := 24
	colHex := 9
	colRole := 8

	header := headerStyle.Render(
		fmt.Sprintf("%-*s %-*s %-*s %-*s %s",
			colName, "Name",
			colHex, "Light",
			colHex, "Dark",
			colRole, "Role",
			"Swatch",
		),
	)

	rows := []string{header}

	maxVisible := 8
	end := m.scrollOffset + maxVisible
	if end > m.pal.Len() {
		end = m.pal.Len()
	}

	for i := m.scrollOffset; i < end; i++ {
		c := m.pal.Colors[i]
		hex := c.Light
		if m.appearance == AppearanceDark {
			hex = c.Dark
		}

		row := fmt.Sprintf("%-*s %-*s %-*s %-*s ",
			colName, truncate(c.Name, colName),
			colHex, c.Light,
			colHex, c.Dark,
			colRole, c.Role,
		)

		if i == m.selected {
			rows = append(rows, selectedRowStyle.Render(row)+" "+swatch(hex))
		} else {
			rows = append(rows, normalRowStyle.Render(row)+" "+swatch(hex))
		}
	}

	if m.pal.Len() > maxVisible {
		indicator := fmt.Sprintf("  [%d/%d colors]", m.selected+1, m.pal.Len())
		rows = append(rows, helpStyle.Render(indicator))
	}

	content := strings.Join(rows, "\n")
	style := m.getPanelStyle(PanelColors, width)
	title := titleStyle.Render(" Colors ")
	return title + "\n" + style.Render(content)
}

// renderDetailPanel renders component values and contrast for the
// selected color.
func (m Model) renderDetailPanel(width int) string {
	c := m.pal.Colors[m.selected]

	lines := []string{
		labelStyle.Render("Name:") + " " + valueStyle.Render(c.Name),
		labelStyle.Render("Light:") + " " + valueStyle.Render(c.Light+"  "+componentLine(c.Light)) + " " + swatch(c.Light),
		labelStyle.Render("Dark:") + " " + valueStyle.Render(c.Dark+"  "+componentLine(c.Dark)) + " " + swatch(c.Dark),
	}

	// Contrast against the palette background, when one exists.
	if bg, ok := m.findBackground(); ok && bg.Name != c.Name {
		if line, ok := contrastLine(c, bg, m.appearance); ok {
			lines = append(lines, labelStyle.Render("Contrast:")+" "+valueStyle.Render(line))
		}
	}

	content := strings.Join(lines, "\n")
	style := m.getPanelStyle(PanelDetail, width)
	title := titleStyle.Render(" Detail ")
	return title + "\n" + style.Render(content)
}

// renderCatalogPanel renders the last catalog verification result.
func (m Model) renderCatalogPanel(width int) string {
	var lines []string

	switch {
	case m.reportErr != nil:
		lines = append(lines, stateMissing.Render(m.reportErr.Error()))
	case m.report == nil:
		lines = append(lines,
			labelStyle.Render("Catalog:")+" "+valueStyle.Render(m.assetsDir),
			helpStyle.Render("press 'r' to check the catalog"),
		)
	default:
		ok, missing, drifted := m.report.Counts()
		summary := fmt.Sprintf("%s  %s  %s",
			stateOK.Render(fmt.Sprintf("%d ok", ok)),
			stateMissing.Render(fmt.Sprintf("%d missing", missing)),
			stateDrifted.Render(fmt.Sprintf("%d drifted", drifted)),
		)
		lines = append(lines,
			labelStyle.Render("Catalog:")+" "+valueStyle.Render(m.assetsDir),
			labelStyle.Render("Status:")+" "+summary,
		)
		if len(m.report.Extra) > 0 {
			lines = append(lines,
				labelStyle.Render("Extra:")+" "+helpStyle.Render(strings.Join(m.report.Extra, ", ")),
			)
		}
	}

	content := strings.Join(lines, "\n")
	style := m.getPanelStyle(PanelCatalog, width)
	title := titleStyle.Render(" Catalog ")
	return title + "\n" + style.Render(content)
}

// getPanelStyle returns the appropriate panel style based on focus state.
func (m Model) getPanelStyle(panel Panel, width int) lipgloss.Style {
	if m.activePanel == panel {
		return activePanelStyle.Width(width - 2)
	}
	return panelStyle.Width(width - 2)
}

// findBackground returns the first surface-role color, which serves as
// the contrast reference.
func (m Model) findBackground() (palette.Color, bool) {
	for _, c := range m.pal.Colors {
		if c.Role == "surface" {
			return c, true
		}
	}
	return palette.Color{}, false
}

// componentLine formats the sRGB components of a hex value for display.
func componentLine(hex string) string {
	c, err := palette.ParseHex(hex)
	if err != nil {
		return "--"
	}
	return fmt.Sprintf("r=%s g=%s b=%s", c.Red(), c.Green(), c.Blue())
}

// contrastLine formats the contrast ratio of a color against the
// background for the current appearance.
func contrastLine(c, bg palette.Color, a Appearance) (string, bool) {
	cHex, bgHex := c.Light, bg.Light
	if a == AppearanceDark {
		cHex, bgHex = c.Dark, bg.Dark
	}

	cc, err := palette.ParseHex(cHex)
	if err != nil {
		return "", false
	}
	bc, err := palette.ParseHex(bgHex)
	if err != nil {
		return "", false
	}

	ratio := palette.ContrastRatio(cc, bc)
	return fmt.Sprintf("%.2f:1 vs %s (%s)", ratio, bg.Name, a), true
}

// truncate shortens a string to maxLen, adding an ellipsis if needed.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
