package xcassets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gutcheck/gutcheck-palette/internal/palette"
)

// Result classifies the outcome of writing a single colorset.
type Result int

const (
	// ResultCreated means the colorset did not exist before.
	ResultCreated Result = iota
	// ResultUpdated means an existing Contents.json was rewritten.
	ResultUpdated
	// ResultUnchanged means the existing file already matched.
	ResultUnchanged
)

// String returns the lowercase result label used in logs and JSON output.
func (r Result) String() string {
	switch r {
	case ResultCreated:
		return "created"
	case ResultUpdated:
		return "updated"
	case ResultUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Summary aggregates the per-color results of a generation run.
type Summary struct {
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
}

// Total returns the number of colors covered by the run.
func (s Summary) Total() int {
	return s.Created + s.Updated + s.Unchanged
}

// Writer writes palette colors into an asset catalog directory.
type Writer struct {
	// AssetsDir is the path to the .xcassets catalog.
	AssetsDir string
	// DryRun computes results without touching the filesystem.
	DryRun bool
	// Create makes the catalog directory when it does not exist,
	// instead of failing the existence check.
	Create bool
}

// CheckCatalog verifies the assets directory exists and is a
// directory. With Create set, a missing catalog is created along with
// its root Contents.json.
func (w *Writer) CheckCatalog() error {
	info, err := os.Stat(w.AssetsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat assets directory: %w", err)
		}
		if !w.Create {
			return fmt.Errorf("%s not found", w.AssetsDir)
		}
		if w.DryRun {
			return nil
		}
		return w.createCatalog()
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", w.AssetsDir)
	}
	return nil
}

// createCatalog makes the catalog directory and its root info file.
func (w *Writer) createCatalog() error {
	if err := os.MkdirAll(w.AssetsDir, 0755); err != nil {
		return fmt.Errorf("failed to create assets directory: %w", err)
	}

	root := catalogInfo{Info: xcodeInfo()}
	data, err := json.MarshalIndent(&root, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize catalog info: %w", err)
	}

	rootPath := filepath.Join(w.AssetsDir, "Contents.json")
	if err := os.WriteFile(rootPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog info: %w", err)
	}
	return nil
}

// WriteColor writes one colorset. The colorset directory is created
// exist-ok; the Contents.json is byte-compared against any existing
// file and only rewritten on change.
func (w *Writer) WriteColor(c palette.Color) (Result, error) {
	contents, err := ContentsForColor(c)
	if err != nil {
		return ResultUnchanged, err
	}

	data, err := contents.Marshal()
	if err != nil {
		return ResultUnchanged, fmt.Errorf("failed to serialize colorset %s: %w", c.Name, err)
	}

	dir := filepath.Join(w.AssetsDir, c.Name+".colorset")
	path := filepath.Join(dir, "Contents.json")

	existing, readErr := os.ReadFile(path)
	if readErr == nil && bytes.Equal(existing, data) {
		return ResultUnchanged, nil
	}

	result := ResultCreated
	if readErr == nil {
		result = ResultUpdated
	}

	if w.DryRun {
		return result, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, fmt.Errorf("failed to create colorset directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return result, fmt.Errorf("failed to write colorset %s: %w", c.Name, err)
	}

	return result, nil
}

// WritePalette writes every palette color in order. The progress
// callback, if non-nil, is invoked after each color.
func (w *Writer) WritePalette(p *palette.Palette, progress func(c palette.Color, r Result)) (Summary, error) {
	var summary Summary

	for _, c := range p.Colors {
		result, err := w.WriteColor(c)
		if err != nil {
			return summary, err
		}

		switch result {
		case ResultCreated:
			summary.Created++
		case ResultUpdated:
			summary.Updated++
		case ResultUnchanged:
			summary.Unchanged++
		}

		if progress != nil {
			progress(c, result)
		}
	}

	return summary, nil
}
