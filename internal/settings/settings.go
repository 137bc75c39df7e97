// Package settings persists the viewer's display preferences: the
// prioritized field order shown in front of each line and the fields
// suppressed from the one-line rendering.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Settings are loaded once at startup, optionally overridden by CLI
// flags, and written back wholesale on an explicit save.
type Settings struct {
	FieldOrder       []string `toml:"field_order"`
	SuppressedFields []string `toml:"suppressed_fields"`

	// Path is the file saves go to. Filled by Load; tests point it at
	// a temp location.
	Path string `toml:"-"`
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir not found: %w", err)
	}
	return filepath.Join(dir, "jlview", "settings.toml"), nil
}

// Load reads the settings file at the default path. A missing file is
// not an error: empty settings are returned. A present but unparsable
// file is startup-fatal for the caller.
func Load() (Settings, error) {
	path, err := DefaultPath()
	if err != nil {
		return Settings{}, err
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (Settings, error) {
	s := Settings{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// Save overwrites the settings file, creating its directory first.
func (s Settings) Save() error {
	if s.Path == "" {
		return errors.New("no settings path")
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
