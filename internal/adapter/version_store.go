package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	m "bpship.dev/pkg/bpship/internal/model"
)

// VersionStore persists the repository-wide release version.
type VersionStore interface {
	Load() (m.ReleaseVersion, error)
	Save(version m.ReleaseVersion) error
}

// FileVersionStore is the JSON-file implementation of VersionStore.
type FileVersionStore struct {
	fs   afero.Fs
	path string
}

// NewFileVersionStore constructs a FileVersionStore at path on fs.
func NewFileVersionStore(fs afero.Fs, path string) *FileVersionStore {
	return &FileVersionStore{fs: fs, path: path}
}

// Load reads the version file. A payload that is not valid JSON, or whose
// version field is not an integer, fails with CorruptVersionError.
func (s *FileVersionStore) Load() (m.ReleaseVersion, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return m.ReleaseVersion{}, fmt.Errorf("read version %s: %w", s.path, err)
	}

	var version m.ReleaseVersion
	if err := json.Unmarshal(data, &version); err != nil {
		return m.ReleaseVersion{}, &m.CorruptVersionError{Value: string(data), Err: err}
	}

	// Reject non-integer payloads up front, before any record is processed.
	if _, err := version.Number(); err != nil {
		return m.ReleaseVersion{}, err
	}

	return version, nil
}

// Save writes the version file atomically.
func (s *FileVersionStore) Save(version m.ReleaseVersion) error {
	data, err := json.MarshalIndent(version, "", "    ")
	if err != nil {
		return fmt.Errorf("encode version: %w", err)
	}

	if err := writeFileAtomic(s.fs, s.path, append(data, '\n')); err != nil {
		return fmt.Errorf("save version %s: %w", s.path, err)
	}

	return nil
}
