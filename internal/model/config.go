package model

import (
	"path/filepath"
	"time"
)

// Config carries the paths and constants every component needs. It is
// built once in cmd and passed down explicitly so nothing reads global
// state and tests can point it at temporary directories.
type Config struct {
	// Root is the warehouse root, also the working directory for
	// version-control commands.
	Root string

	// LedgerFile and VersionFile are relative to Root.
	LedgerFile  string
	VersionFile string

	// ArtifactExt is the tracked blueprint extension, dot included.
	ArtifactExt string

	// VCSBinary is the version-control executable, normally "git".
	VCSBinary string

	// CommandTimeout bounds each external command invocation.
	CommandTimeout time.Duration
}

// LedgerPath returns the ledger file location under Root.
func (c Config) LedgerPath() string {
	return filepath.Join(c.Root, c.LedgerFile)
}

// VersionPath returns the version file location under Root.
func (c Config) VersionPath() string {
	return filepath.Join(c.Root, c.VersionFile)
}
