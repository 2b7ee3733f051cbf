// Package adapter contains the infrastructure adapters for the bpship CLI:
// file stores, the warehouse scanner, and the version-control executor.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// writeFileAtomic writes data via a temp file and rename so the target is
// either fully written or untouched.
func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	// Temp file in the same directory so the rename stays on one filesystem.
	tmp, err := afero.TempFile(fs, dir, ".bpship-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpPath := tmp.Name()

	defer func() {
		_ = fs.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", path, err)
	}

	return nil
}
