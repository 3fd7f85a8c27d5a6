package xcassets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gutcheck/gutcheck-palette/internal/palette"
)

// Clean removes exactly the palette-named colorset directories from
// the catalog and returns the names it removed (or would remove, with
// dryRun). The catalog root and unrelated assets are never touched.
func Clean(assetsDir string, p *palette.Palette, dryRun bool) ([]string, error) {
	info, err := os.Stat(assetsDir)
	if err != nil {
		return nil, fmt.Errorf("%s not found", assetsDir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", assetsDir)
	}

	var removed []string
	for _, c := range p.Colors {
		dir := filepath.Join(assetsDir, c.Name+".colorset")
		if _, err := os.Stat(dir); err != nil {
			continue
		}

		if !dryRun {
			if err := os.RemoveAll(dir); err != nil {
				return removed, fmt.Errorf("failed to remove colorset %s: %w", c.Name, err)
			}
		}
		removed = append(removed, c.Name)
	}

	return removed, nil
}
