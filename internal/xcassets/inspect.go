package xcassets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gutcheck/gutcheck-palette/internal/palette"
)

// State classifies a palette color against the catalog on disk.
type State string

const (
	// StateOK means the colorset exists and matches the palette.
	StateOK State = "ok"
	// StateMissing means no colorset exists for the color.
	StateMissing State = "missing"
	// StateDrifted means the colorset exists but its contents differ.
	StateDrifted State = "drifted"
)

// ColorState is the verification result for one palette color.
type ColorState struct {
	Name  string `json:"name"`
	State State  `json:"state"`
}

// Report is the full result of comparing a catalog to a palette.
type Report struct {
	Colors []ColorState `json:"colors"`
	// Extra lists colorsets present in the catalog but absent from
	// the palette, sorted by name.
	Extra []string `json:"extra,omitempty"`
}

// Counts returns the number of ok, missing, and drifted colors.
func (r *Report) Counts() (ok, missing, drifted int) {
	for _, c := range r.Colors {
		switch c.State {
		case StateOK:
			ok++
		case StateMissing:
			missing++
		case StateDrifted:
			drifted++
		}
	}
	return ok, missing, drifted
}

// Clean reports whether every palette color is present and matching,
// ignoring extras.
func (r *Report) Clean() bool {
	_, missing, drifted := r.Counts()
	return missing == 0 && drifted == 0
}

// Inspect compares the catalog directory against the palette without
// modifying anything.
func Inspect(assetsDir string, p *palette.Palette) (*Report, error) {
	info, err := os.Stat(assetsDir)
	if err != nil {
		return nil, fmt.Errorf("%s not found", assetsDir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", assetsDir)
	}

	report := &Report{Colors: make([]ColorState, 0, len(p.Colors))}
	inPalette := make(map[string]bool, len(p.Colors))

	for _, c := range p.Colors {
		inPalette[c.Name] = true
		report.Colors = append(report.Colors, ColorState{
			Name:  c.Name,
			State: inspectColor(assetsDir, c),
		})
	}

	entries, err := os.ReadDir(assetsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read assets directory: %w", err)
	}
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), ".colorset")
		if !ok || !entry.IsDir() {
			continue
		}
		if !inPalette[name] {
			report.Extra = append(report.Extra, name)
		}
	}
	sort.Strings(report.Extra)

	return report, nil
}

// inspectColor classifies one palette color against the catalog.
// A colorset whose Contents.json is unreadable or unparseable counts
// as drifted, not as an error: verify reports, it does not fail.
func inspectColor(assetsDir string, c palette.Color) State {
	path := filepath.Join(assetsDir, c.Name+".colorset", "Contents.json")

	existing, err := os.ReadFile(path)
	if err != nil {
		return StateMissing
	}

	want, err := ContentsForColor(c)
	if err != nil {
		return StateDrifted
	}
	wantData, err := want.Marshal()
	if err != nil {
		return StateDrifted
	}

	if bytes.Equal(existing, wantData) {
		return StateOK
	}
	return StateDrifted
}
