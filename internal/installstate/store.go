package installstate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/omarchy/cybex-installer/internal/log"
)

// stateDocument is the on-disk shape, shared with the other front-ends.
type stateDocument struct {
	Installed []string `json:"installed"`
}

// FileStore persists the set of installed option ids as a JSON document.
type FileStore struct {
	fs   afero.Fs
	path string
}

// DefaultPath returns the per-user state file location.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return filepath.Join(configDir, "omarchy-cybex", "installer-state.json")
}

// New returns a store backed by the real filesystem.
func New(path string) *FileStore {
	return NewWithFs(afero.NewOsFs(), path)
}

// NewWithFs returns a store backed by the given filesystem. Tests pass an
// afero.NewMemMapFs.
func NewWithFs(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Load reads the installed set. A missing or unparseable file yields an
// empty set; Load never fails the caller.
func (s *FileStore) Load() map[string]bool {
	installed := make(map[string]bool)

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return installed
	}

	var doc stateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warnf("ignoring unparseable state file %s: %v", s.path, err)
		return installed
	}

	for _, id := range doc.Installed {
		installed[id] = true
	}
	return installed
}

// Save writes the installed set, creating parent directories as needed.
func (s *FileStore) Save(installed map[string]bool) error {
	ids := make([]string, 0, len(installed))
	for id := range installed {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	data, err := json.MarshalIndent(stateDocument{Installed: ids}, "", "  ")
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path, data, 0o644)
}

// MarkInstalled records id as installed. Best effort: a failed save is
// logged and swallowed, the in-memory set remains authoritative for the
// session.
func (s *FileStore) MarkInstalled(id string) {
	installed := s.Load()
	installed[id] = true
	if err := s.Save(installed); err != nil {
		log.Warnf("could not persist installed state: %v", err)
	}
}

// MarkUninstalled removes id from the installed set. Best effort.
func (s *FileStore) MarkUninstalled(id string) {
	installed := s.Load()
	delete(installed, id)
	if err := s.Save(installed); err != nil {
		log.Warnf("could not persist installed state: %v", err)
	}
}
