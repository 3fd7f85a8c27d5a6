package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and validates a palette from a YAML file.
func LoadFile(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse palette file %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid palette file %s: %w", path, err)
	}

	return &p, nil
}

// Save writes the palette to a YAML file. The palette is validated
// first so a broken palette never reaches disk.
func (p *Palette) Save(path string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to serialize palette: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write palette file: %w", err)
	}

	return nil
}
