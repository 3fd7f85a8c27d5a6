package xcassets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gutcheck/gutcheck-palette/internal/palette"
)

// setupCatalog creates an empty assets directory for testing.
func setupCatalog(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "Assets.xcassets")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func testPalette() *palette.Palette {
	return &palette.Palette{
		Name: "test",
		Colors: []palette.Color{
			{Name: "TestPrimary", Light: "#0891B2", Dark: "#06B6D4"},
			{Name: "TestBackground", Light: "#FFFFFF", Dark: "#0F172A"},
		},
	}
}

func TestCheckCatalog_Missing(t *testing.T) {
	w := &Writer{AssetsDir: filepath.Join(t.TempDir(), "Assets.xcassets")}
	if err := w.CheckCatalog(); err == nil {
		t.Error("CheckCatalog() should error when the catalog does not exist")
	}
}

func TestCheckCatalog_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Assets.xcassets")
	if err := os.WriteFile(path, []byte("file"), 0644); err != nil {
		t.Fatal(err)
	}

	w := &Writer{AssetsDir: path}
	if err := w.CheckCatalog(); err == nil {
		t.Error("CheckCatalog() should error when the path is a file")
	}
}

func TestCheckCatalog_Create(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Assets.xcassets")
	w := &Writer{AssetsDir: dir, Create: true}

	if err := w.CheckCatalog(); err != nil {
		t.Fatalf("CheckCatalog() with Create error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("catalog directory was not created: %v", err)
	}

	// A created catalog carries a root Contents.json with the bare
	// info block.
	data, err := os.ReadFile(filepath.Join(dir, "Contents.json"))
	if err != nil {
		t.Fatalf("root Contents.json missing: %v", err)
	}
	want := "{\n  \"info\": {\n    \"author\": \"xcode\",\n    \"version\": 1\n  }\n}"
	if string(data) != want {
		t.Errorf("root Contents.json = %q, want %q", data, want)
	}
}

func TestCheckCatalog_CreateDryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Assets.xcassets")
	w := &Writer{AssetsDir: dir, Create: true, DryRun: true}

	if err := w.CheckCatalog(); err != nil {
		t.Fatalf("CheckCatalog() error: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("dry run should not create the catalog directory")
	}
}

func TestWriteColor_Lifecycle(t *testing.T) {
	dir := setupCatalog(t)
	w := &Writer{AssetsDir: dir}
	c := palette.Color{Name: "TestPrimary", Light: "#0891B2", Dark: "#06B6D4"}

	// First write creates.
	result, err := w.WriteColor(c)
	if err != nil {
		t.Fatalf("WriteColor() error: %v", err)
	}
	if result != ResultCreated {
		t.Errorf("first write = %v, want created", result)
	}

	path := filepath.Join(dir, "TestPrimary.colorset", "Contents.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Contents.json not written: %v", err)
	}

	// Second write over identical content is unchanged.
	result, err = w.WriteColor(c)
	if err != nil {
		t.Fatalf("WriteColor() error: %v", err)
	}
	if result != ResultUnchanged {
		t.Errorf("rewrite = %v, want unchanged", result)
	}

	// Changing the hex updates the existing file.
	c.Dark = "#000000"
	result, err = w.WriteColor(c)
	if err != nil {
		t.Fatalf("WriteColor() error: %v", err)
	}
	if result != ResultUpdated {
		t.Errorf("changed write = %v, want updated", result)
	}
}

func TestWriteColor_DryRun(t *testing.T) {
	dir := setupCatalog(t)
	w := &Writer{AssetsDir: dir, DryRun: true}
	c := palette.Color{Name: "TestPrimary", Light: "#0891B2", Dark: "#06B6D4"}

	result, err := w.WriteColor(c)
	if err != nil {
		t.Fatalf("WriteColor() error: %v", err)
	}
	if result != ResultCreated {
		t.Errorf("dry run result = %v, want created", result)
	}

	if _, err := os.Stat(filepath.Join(dir, "TestPrimary.colorset")); !os.IsNotExist(err) {
		t.Error("dry run should not create the colorset directory")
	}
}

func TestWriteColor_ExistingColorsetDir(t *testing.T) {
	dir := setupCatalog(t)
	// A pre-existing empty colorset directory is never an error.
	if err := os.MkdirAll(filepath.Join(dir, "TestPrimary.colorset"), 0755); err != nil {
		t.Fatal(err)
	}

	w := &Writer{AssetsDir: dir}
	c := palette.Color{Name: "TestPrimary", Light: "#0891B2", Dark: "#06B6D4"}

	result, err := w.WriteColor(c)
	if err != nil {
		t.Fatalf("WriteColor() error: %v", err)
	}
	if result != ResultCreated {
		t.Errorf("result = %v, want created", result)
	}
}

func TestWritePalette(t *testing.T) {
	dir := setupCatalog(t)
	w := &Writer{AssetsDir: dir}
	p := testPalette()

	var order []string
	summary, err := w.WritePalette(p, func(c palette.Color, r Result) {
		order = append(order, c.Name)
		if r != ResultCreated {
			t.Errorf("progress for %s = %v, want created", c.Name, r)
		}
	})
	if err != nil {
		t.Fatalf("WritePalette() error: %v", err)
	}

	if summary.Created != 2 || summary.Updated != 0 || summary.Unchanged != 0 {
		t.Errorf("summary = %+v, want 2 created", summary)
	}
	if summary.Total() != 2 {
		t.Errorf("Total() = %d, want 2", summary.Total())
	}

	// Progress follows palette order.
	if len(order) != 2 || order[0] != "TestPrimary" || order[1] != "TestBackground" {
		t.Errorf("progress order = %v, want [TestPrimary TestBackground]", order)
	}

	// A second run over the same palette rewrites nothing.
	summary, err = w.WritePalette(p, nil)
	if err != nil {
		t.Fatalf("second WritePalette() error: %v", err)
	}
	if summary.Unchanged != 2 {
		t.Errorf("second run summary = %+v, want 2 unchanged", summary)
	}
}

func TestResult_String(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{ResultCreated, "created"},
		{ResultUpdated, "updated"},
		{ResultUnchanged, "unchanged"},
		{Result(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}
