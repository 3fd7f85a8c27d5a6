package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gutcheck/gutcheck-palette/internal/palette"
)

func testModel(t *testing.T) Model {
	t.Helper()
	return NewModel(palette.GutCheck(), t.TempDir()+"/Assets.xcassets")
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_Navigation(t *testing.T) {
	m := testModel(t)

	if m.selected != 0 {
		t.Fatalf("initial selected = %d, want 0", m.selected)
	}

	// Down moves the selection.
	next, _ := m.Update(keyMsg("down"))
	m = next.(Model)
	if m.selected != 1 {
		t.Errorf("selected after down = %d, want 1", m.selected)
	}

	// j is an alias for down.
	next, _ = m.Update(keyMsg("j"))
	m = next.(Model)
	if m.selected != 2 {
		t.Errorf("selected after j = %d, want 2", m.selected)
	}

	// Up moves back.
	next, _ = m.Update(keyMsg("up"))
	m = next.(Model)
	if m.selected != 1 {
		t.Errorf("selected after up = %d, want 1", m.selected)
	}

	// Up at the top stays at the top.
	next, _ = m.Update(keyMsg("k"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("k"))
	m = next.(Model)
	if m.selected != 0 {
		t.Errorf("selected at top = %d, want 0", m.selected)
	}
}

func TestModel_SelectionClampsAtEnd(t *testing.T) {
	m := testModel(t)

	for i := 0; i < m.pal.Len()+5; i++ {
		next, _ := m.Update(keyMsg("down"))
		m = next.(Model)
	}

	if m.selected != m.pal.Len()-1 {
		t.Errorf("selected = %d, want %d", m.selected, m.pal.Len()-1)
	}
}

func TestModel_AppearanceToggle(t *testing.T) {
	m := testModel(t)

	if m.appearance != AppearanceLight {
		t.Fatalf("initial appearance = %v, want light", m.appearance)
	}

	next, _ := m.Update(keyMsg("tab"))
	m = next.(Model)
	if m.appearance != AppearanceDark {
		t.Errorf("appearance after tab = %v, want dark", m.appearance)
	}

	next, _ = m.Update(keyMsg("tab"))
	m = next.(Model)
	if m.appearance != AppearanceLight {
		t.Errorf("appearance after second tab = %v, want light", m.appearance)
	}
}

func TestModel_DetailToggle(t *testing.T) {
	m := testModel(t)

	if !m.showDetail {
		t.Fatal("detail should start visible")
	}

	next, _ := m.Update(keyMsg("d"))
	m = next.(Model)
	if m.showDetail {
		t.Error("detail should be hidden after d")
	}
}

func TestModel_Quit(t *testing.T) {
	m := testModel(t)

	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)
	if !m.quitting {
		t.Error("q should set quitting")
	}
	if cmd == nil {
		t.Error("q should return tea.Quit")
	}
}

func TestModel_CatalogCheck(t *testing.T) {
	m := testModel(t)

	// 'r' against a missing catalog records the error instead of
	// crashing the browser.
	next, _ := m.Update(keyMsg("r"))
	m = next.(Model)
	if m.reportErr == nil {
		t.Error("catalog check against a missing directory should record an error")
	}

	view := m.View()
	if !strings.Contains(view, "not found") {
		t.Error("view should surface the catalog error")
	}
}

func TestModel_View(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "GutCheckPrimary") {
		t.Error("view should list the first palette color")
	}
	if !strings.Contains(view, "#0891B2") {
		t.Error("view should show hex values")
	}
	if !strings.Contains(view, "Colors") {
		t.Error("view should render the Colors panel title")
	}
}

func TestModel_ViewAfterQuit(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(keyMsg("q"))
	m = next.(Model)

	if !strings.Contains(m.View(), "closed") {
		t.Error("quitting view should say the browser closed")
	}
}
