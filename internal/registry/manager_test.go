package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gutcheck/gutcheck-palette/internal/palette"
)

// writeSamplePalette writes a valid palette YAML and returns its path.
func writeSamplePalette(t *testing.T, name string) string {
	t.Helper()
	p := &palette.Palette{
		Name: name,
		Colors: []palette.Color{
			{Name: "CustomPrimary", Light: "#112233", Dark: "#445566"},
		},
	}
	path := filepath.Join(t.TempDir(), name+".yaml")
	if err := p.Save(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func setupTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(t.TempDir())
}

func TestLoad_FileNotExist(t *testing.T) {
	m := setupTestManager(t)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() on missing file should not error, got: %v", err)
	}
	// Only built-ins remain.
	if got := len(m.List()); got != 2 {
		t.Errorf("List() = %d entries, want 2 built-ins", got)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palettes.yaml")
	if err := os.WriteFile(path, []byte("palettes:\n  name: [[[{"), 0600); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	if err := m.Load(); err == nil {
		t.Fatal("Load() should error on invalid YAML")
	}
}

func TestAdd(t *testing.T) {
	m := setupTestManager(t)
	path := writeSamplePalette(t, "custom")

	if err := m.Add("custom", path); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	e, ok := m.Get("custom")
	if !ok {
		t.Fatal("Get() returned false after Add()")
	}
	if e.Path != path {
		t.Errorf("Path = %q, want %q", e.Path, path)
	}
	if e.Builtin {
		t.Error("registered palette should not be builtin")
	}
}

func TestAdd_Rejections(t *testing.T) {
	m := setupTestManager(t)
	path := writeSamplePalette(t, "custom")

	if err := m.Add("", path); err == nil {
		t.Error("Add() should error on empty name")
	}
	if err := m.Add("gutcheck", path); err == nil {
		t.Error("Add() should error on a built-in name")
	}
	if err := m.Add("custom", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Add() should error when the palette file does not load")
	}

	if err := m.Add("custom", path); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if err := m.Add("custom", path); err == nil {
		t.Error("Add() should error on duplicate name")
	}
}

func TestRemove(t *testing.T) {
	m := setupTestManager(t)
	path := writeSamplePalette(t, "custom")

	if err := m.Add("custom", path); err != nil {
		t.Fatal(err)
	}
	if err := m.Remove("custom"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if _, ok := m.Get("custom"); ok {
		t.Error("Get() should return false after Remove()")
	}

	if err := m.Remove("custom"); err == nil {
		t.Error("Remove() should error on unknown name")
	}
	if err := m.Remove("classic"); err == nil {
		t.Error("Remove() should refuse built-in palettes")
	}
}

func TestList_Order(t *testing.T) {
	m := setupTestManager(t)
	pathB := writeSamplePalette(t, "beta")
	pathA := writeSamplePalette(t, "alpha")

	if err := m.Add("beta", pathB); err != nil {
		t.Fatal(err)
	}
	if err := m.Add("alpha", pathA); err != nil {
		t.Fatal(err)
	}

	list := m.List()
	wantOrder := []string{"gutcheck", "classic", "alpha", "beta"}
	if len(list) != len(wantOrder) {
		t.Fatalf("List() = %d entries, want %d", len(list), len(wantOrder))
	}
	for i, want := range wantOrder {
		if list[i].Name != want {
			t.Errorf("List()[%d] = %q, want %q", i, list[i].Name, want)
		}
	}
	if !list[0].Builtin || !list[1].Builtin {
		t.Error("built-ins should be flagged")
	}
}

func TestSetActive(t *testing.T) {
	m := setupTestManager(t)
	path := writeSamplePalette(t, "custom")
	if err := m.Add("custom", path); err != nil {
		t.Fatal(err)
	}

	if err := m.SetActive("custom"); err != nil {
		t.Fatalf("SetActive() error: %v", err)
	}
	e, ok := m.Active()
	if !ok || e.Name != "custom" {
		t.Errorf("Active() = %v, %v; want custom", e, ok)
	}

	// Activating a built-in clears registered actives.
	if err := m.SetActive("gutcheck"); err != nil {
		t.Fatalf("SetActive(gutcheck) error: %v", err)
	}
	if _, ok := m.Active(); ok {
		t.Error("Active() should be empty after activating a built-in")
	}

	if err := m.SetActive("nope"); err == nil {
		t.Error("SetActive() should error on unknown name")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	path := writeSamplePalette(t, "custom")

	if err := m.Add("custom", path); err != nil {
		t.Fatal(err)
	}
	if err := m.SetActive("custom"); err != nil {
		t.Fatal(err)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	m2 := NewManager(dir)
	if err := m2.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	e, ok := m2.Get("custom")
	if !ok {
		t.Fatal("Get() returned false after reload")
	}
	if e.Path != path {
		t.Errorf("Path = %q, want %q", e.Path, path)
	}
	if active, ok := m2.Active(); !ok || active.Name != "custom" {
		t.Error("active flag should survive a save/load round trip")
	}
}

func TestResolve(t *testing.T) {
	m := setupTestManager(t)
	path := writeSamplePalette(t, "custom")
	if err := m.Add("custom", path); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		nameOrPath string
		wantName   string
		wantErr    bool
	}{
		{"builtin gutcheck", "gutcheck", "gutcheck", false},
		{"builtin classic", "classic", "classic", false},
		{"registered entry", "custom", "custom", false},
		{"direct file path", path, "custom", false},
		{"unknown name", "mystery", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := m.Resolve(tt.nameOrPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) error = %v, wantErr %v", tt.nameOrPath, err, tt.wantErr)
			}
			if err == nil && p.Name != tt.wantName {
				t.Errorf("Resolve(%q).Name = %q, want %q", tt.nameOrPath, p.Name, tt.wantName)
			}
		})
	}
}

func TestResolveSource(t *testing.T) {
	m := setupTestManager(t)
	path := writeSamplePalette(t, "custom")
	if err := m.Add("custom", path); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		nameOrPath string
		wantSource string
	}{
		{"builtin has no source", "gutcheck", ""},
		{"registered entry source", "custom", path},
		{"direct file path source", path, path},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, source, err := m.ResolveSource(tt.nameOrPath)
			if err != nil {
				t.Fatalf("ResolveSource(%q) error = %v", tt.nameOrPath, err)
			}
			if source != tt.wantSource {
				t.Errorf("ResolveSource(%q) source = %q, want %q", tt.nameOrPath, source, tt.wantSource)
			}
		})
	}
}
