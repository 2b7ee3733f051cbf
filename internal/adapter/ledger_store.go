package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	m "bpship.dev/pkg/bpship/internal/model"
)

// LedgerStore persists the iteration ledger.
type LedgerStore interface {
	// Load reads and decodes the full ledger.
	Load() (m.Ledger, error)
	// Save serializes the ledger, which must already carry the staged
	// mutation.
	Save(ledger m.Ledger) error
	// HasContent reports whether the ledger file exists with a non-empty
	// payload.
	HasContent() (bool, error)
	// Render returns the exact bytes Save would write, for previews.
	Render(ledger m.Ledger) ([]byte, error)
}

// FileLedgerStore is the JSON-file implementation of LedgerStore.
type FileLedgerStore struct {
	fs   afero.Fs
	path string
}

// NewFileLedgerStore constructs a FileLedgerStore at path on fs.
func NewFileLedgerStore(fs afero.Fs, path string) *FileLedgerStore {
	return &FileLedgerStore{fs: fs, path: path}
}

// Load reads the ledger file. A payload that is not valid JSON or lacks
// the top-level "iterations" field fails with CorruptLedgerError.
func (s *FileLedgerStore) Load() (m.Ledger, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return m.Ledger{}, fmt.Errorf("read ledger %s: %w", s.path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return m.Ledger{}, &m.CorruptLedgerError{Path: s.path, Err: err}
	}

	if _, ok := raw["iterations"]; !ok {
		return m.Ledger{}, &m.CorruptLedgerError{
			Path: s.path,
			Err:  fmt.Errorf("missing top-level iterations field"),
		}
	}

	var ledger m.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return m.Ledger{}, &m.CorruptLedgerError{Path: s.path, Err: err}
	}

	if ledger.Iterations == nil {
		ledger.Iterations = map[string]m.LedgerEntry{}
	}

	return ledger, nil
}

// Save writes the full ledger atomically.
func (s *FileLedgerStore) Save(ledger m.Ledger) error {
	data, err := s.Render(ledger)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(s.fs, s.path, data); err != nil {
		return fmt.Errorf("save ledger %s: %w", s.path, err)
	}

	return nil
}

// Render marshals the ledger in the on-disk format.
func (s *FileLedgerStore) Render(ledger m.Ledger) ([]byte, error) {
	data, err := json.MarshalIndent(ledger, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode ledger: %w", err)
	}

	return append(data, '\n'), nil
}

// HasContent reports whether the ledger file exists and is non-empty.
func (s *FileLedgerStore) HasContent() (bool, error) {
	info, err := s.fs.Stat(s.path)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}

		return false, fmt.Errorf("stat ledger %s: %w", s.path, err)
	}

	return info.Size() > 0, nil
}
