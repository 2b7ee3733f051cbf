package adapter

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	m "bpship.dev/pkg/bpship/internal/model"
)

// WarehouseFS abstracts the directory walk that discovers artifact files,
// so the bootstrap logic can be tested against an in-memory tree.
type WarehouseFS interface {
	// FindArtifacts returns the paths under root whose extension matches
	// ext, relative to root, in walk order.
	FindArtifacts(root string, ext string) ([]m.Path, error)
}

// LocalWarehouseFS walks an afero filesystem.
type LocalWarehouseFS struct {
	fs afero.Fs
}

// NewLocalWarehouseFS constructs a LocalWarehouseFS over fs.
func NewLocalWarehouseFS(fs afero.Fs) *LocalWarehouseFS {
	return &LocalWarehouseFS{fs: fs}
}

// FindArtifacts recursively discovers artifact files under root.
func (w *LocalWarehouseFS) FindArtifacts(root string, ext string) ([]m.Path, error) {
	var paths []m.Path

	err := afero.Walk(w.fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			// The repository's own bookkeeping is not part of the warehouse.
			if info.Name() == ".git" && path != root {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) != ext {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		paths = append(paths, m.Path(rel))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan warehouse %s: %w", root, err)
	}

	return paths, nil
}
