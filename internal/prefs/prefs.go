// Package prefs handles user preferences persistence.
// Preferences live next to the installer state in the user config dir.
package prefs

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/omarchy/cybex-installer/internal/log"
)

// Prefs holds the user-tunable settings.
type Prefs struct {
	Theme string `toml:"theme"`
}

const defaultTheme = "cybex"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return filepath.Join(configDir, "omarchy-cybex", "prefs.toml")
}

// Load reads preferences from path, falling back to defaults on any
// problem. A broken prefs file never blocks startup.
func Load(fs afero.Fs, path string) Prefs {
	p := Prefs{Theme: defaultTheme}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return p
	}

	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{Theme: defaultTheme}
	}

	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	return p
}

// LoadOrInit loads preferences and, on first run, writes the defaults file
// so there is something on disk to edit. A failed write is non-fatal.
func LoadOrInit(fs afero.Fs, path string) Prefs {
	p := Load(fs, path)
	if exists, err := afero.Exists(fs, path); err == nil && !exists {
		if err := Save(fs, path, p); err != nil {
			log.Warnf("could not write default prefs file: %v", err)
		}
	}
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(fs afero.Fs, path string, p Prefs) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0o644)
}
