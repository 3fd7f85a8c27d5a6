// Package registry handles multi-palette management: named palette
// files registered under the user config directory, plus the implicit
// built-in palettes.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gutcheck/gutcheck-palette/internal/palette"
	"gopkg.in/yaml.v3"
)

// Entry is one registered palette.
type Entry struct {
	Name    string `yaml:"name" json:"name"`
	Path    string `yaml:"path,omitempty" json:"path,omitempty"`
	Builtin bool   `yaml:"-" json:"builtin"`
	Active  bool   `yaml:"active" json:"active"`
}

// palettesFile is the YAML structure for persisting registered palettes.
type palettesFile struct {
	Palettes []Entry `yaml:"palettes"`
}

// Manager handles the palette registry. Built-in palettes are implicit
// entries that cannot be removed.
type Manager struct {
	configDir string
	entries   map[string]*Entry
	mu        sync.RWMutex
}

// NewManager creates a Manager backed by the given config directory.
func NewManager(configDir string) *Manager {
	return &Manager{
		configDir: configDir,
		entries:   make(map[string]*Entry),
	}
}

// palettesFilePath returns the path of the registry file.
func (m *Manager) palettesFilePath() string {
	return filepath.Join(m.configDir, "palettes.yaml")
}

// Load reads the registry file. A missing file is not an error: the
// manager starts with only the built-in palettes.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.palettesFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			m.entries = make(map[string]*Entry)
			return nil
		}
		return fmt.Errorf("failed to read palettes file: %w", err)
	}

	var pf palettesFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("failed to parse palettes file: %w", err)
	}

	m.entries = make(map[string]*Entry, len(pf.Palettes))
	for i := range pf.Palettes {
		e := pf.Palettes[i]
		if palette.IsBuiltin(e.Name) {
			// Built-ins are implicit; a stale file entry is dropped.
			continue
		}
		m.entries[e.Name] = &e
	}

	return nil
}

// Save persists the registered palettes. Built-ins are never written.
func (m *Manager) Save() error {
	m.mu.RLock()
	entries := m.listRegisteredLocked()
	m.mu.RUnlock()

	pf := palettesFile{Palettes: entries}
	data, err := yaml.Marshal(&pf)
	if err != nil {
		return fmt.Errorf("failed to serialize palettes: %w", err)
	}

	if err := os.MkdirAll(m.configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(m.palettesFilePath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write palettes file: %w", err)
	}

	return nil
}

// Add registers a palette file under a name. The file must load as a
// valid palette before it is accepted.
func (m *Manager) Add(name, path string) error {
	if name == "" {
		return fmt.Errorf("palette name cannot be empty")
	}
	if palette.IsBuiltin(name) {
		return fmt.Errorf("%q is a built-in palette name", name)
	}
	if _, err := palette.LoadFile(path); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[name]; exists {
		return fmt.Errorf("palette %q already registered", name)
	}

	m.entries[name] = &Entry{Name: name, Path: path}
	return nil
}

// Remove unregisters a palette by name. Built-ins cannot be removed.
func (m *Manager) Remove(name string) error {
	if palette.IsBuiltin(name) {
		return fmt.Errorf("cannot remove built-in palette %q", name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[name]; !exists {
		return fmt.Errorf("palette %q not found", name)
	}

	delete(m.entries, name)
	return nil
}

// Get retrieves a registry entry by name, including built-ins.
func (m *Manager) Get(name string) (*Entry, bool) {
	if palette.IsBuiltin(name) {
		return &Entry{Name: name, Builtin: true}, true
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[name]
	if !ok {
		return nil, false
	}
	// Return a copy to avoid race conditions.
	copy := *e
	return &copy, true
}

// SetActive marks the given palette as active. Any previously active
// registered palette is deactivated. Built-ins carry no persisted
// active flag; activating one simply clears the registered entries.
func (m *Manager) SetActive(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var target *Entry
	if !palette.IsBuiltin(name) {
		var exists bool
		target, exists = m.entries[name]
		if !exists {
			return fmt.Errorf("palette %q not found", name)
		}
	}

	for _, e := range m.entries {
		e.Active = false
	}
	if target != nil {
		target.Active = true
	}
	return nil
}

// Active returns the currently active registered palette, if any.
func (m *Manager) Active() (*Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.entries {
		if e.Active {
			copy := *e
			return &copy, true
		}
	}
	return nil, false
}

// List returns all palettes: built-ins first in display order, then
// registered palettes sorted by name.
func (m *Manager) List() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Entry, 0, 2+len(m.entries))
	for _, name := range palette.BuiltinNames() {
		result = append(result, Entry{Name: name, Builtin: true})
	}
	result = append(result, m.listRegisteredLocked()...)
	return result
}

// listRegisteredLocked returns the registered entries sorted by name.
// Caller must hold at least a read lock.
func (m *Manager) listRegisteredLocked() []Entry {
	result := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Resolve loads a palette from a built-in name, a registered entry, or
// a direct file path, in that order.
func (m *Manager) Resolve(nameOrPath string) (*palette.Palette, error) {
	p, _, err := m.ResolveSource(nameOrPath)
	return p, err
}

// ResolveSource is Resolve plus the backing file path. Built-ins have
// no backing file and return an empty path.
func (m *Manager) ResolveSource(nameOrPath string) (*palette.Palette, string, error) {
	if palette.IsBuiltin(nameOrPath) {
		p, err := palette.Builtin(nameOrPath)
		return p, "", err
	}

	if e, ok := m.Get(nameOrPath); ok {
		p, err := palette.LoadFile(e.Path)
		return p, e.Path, err
	}

	// Anything that looks like a path is loaded directly.
	if strings.ContainsRune(nameOrPath, os.PathSeparator) || strings.HasSuffix(nameOrPath, ".yaml") || strings.HasSuffix(nameOrPath, ".yml") {
		p, err := palette.LoadFile(nameOrPath)
		return p, nameOrPath, err
	}

	return nil, "", fmt.Errorf("unknown palette %q (not a built-in, a registered palette, or a file path)", nameOrPath)
}
