package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/giantswarm/wirecheck/pkg/logging"
)

// ReportsDir is the subdirectory of the config directory that saved
// validation reports live in.
const ReportsDir = "reports"

// Storage keeps YAML documents in subdirectories of the configuration
// directory, one file per name.
type Storage struct {
	mu         sync.RWMutex
	configPath string // Optional custom config path; defaults to ~/.config/wirecheck
}

// NewStorage creates a Storage rooted at configPath. An empty path selects
// the user configuration directory.
func NewStorage(configPath string) *Storage {
	return &Storage{configPath: configPath}
}

// Save writes data to <config>/<kind>/<name>.yaml.
func (s *Storage) Save(kind, name string, data []byte) error {
	if err := checkKey(kind, name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.dir(kind)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, sanitizeFilename(name)+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	logging.Debug("Storage", "Saved %s/%s to %s", kind, name, path)
	return nil
}

// Load reads <config>/<kind>/<name>.yaml.
func (s *Storage) Load(kind, name string) ([]byte, error) {
	if err := checkKey(kind, name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	dir, err := s.dir(kind)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, sanitizeFilename(name)+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s/%s not found", kind, name)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// Delete removes <config>/<kind>/<name>.yaml.
func (s *Storage) Delete(kind, name string) error {
	if err := checkKey(kind, name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.dir(kind)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, sanitizeFilename(name)+".yaml")
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s/%s not found", kind, name)
		}
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}

	logging.Debug("Storage", "Deleted %s/%s", kind, name)
	return nil
}

// List returns the names stored under kind, oldest modification first. Equal
// modification times are ordered by name, so names that sort by creation
// time (validation run IDs are UUIDv7) keep Prune from removing the newest
// entry on filesystems with coarse timestamps. A missing directory yields an
// empty list.
func (s *Storage) List(kind string) ([]string, error) {
	if kind == "" {
		return nil, fmt.Errorf("kind cannot be empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	dir, err := s.dir(kind)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}

	type stored struct {
		name    string
		modTime int64
	}
	var files []stored
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, stored{name: strings.TrimSuffix(e.Name(), ext), modTime: info.ModTime().UnixNano()})
	}
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].modTime != files[j].modTime {
			return files[i].modTime < files[j].modTime
		}
		return files[i].name < files[j].name
	})

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.name
	}
	return names, nil
}

// Prune deletes the oldest entries of kind until at most keep remain.
// keep <= 0 disables pruning.
func (s *Storage) Prune(kind string, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}
	names, err := s.List(kind)
	if err != nil {
		return 0, err
	}
	removed := 0
	for i := 0; i < len(names)-keep; i++ {
		if err := s.Delete(kind, names[i]); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (s *Storage) dir(kind string) (string, error) {
	base := s.configPath
	if base == "" {
		var err error
		if base, err = GetUserConfigDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(base, kind), nil
}

func checkKey(kind, name string) error {
	if kind == "" {
		return fmt.Errorf("kind cannot be empty")
	}
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// sanitizeFilename ensures the filename is safe for filesystem operations
func sanitizeFilename(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', '.', ' ':
			return '_'
		}
		return r
	}, name)

	for strings.Contains(sanitized, "__") {
		sanitized = strings.ReplaceAll(sanitized, "__", "_")
	}
	sanitized = strings.Trim(sanitized, "_")

	if sanitized == "" {
		sanitized = "unnamed"
	}
	return sanitized
}
