// Package model holds the core data types for blueprint release tracking.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path, relative to the warehouse root.
type Path string

// Stem returns the file name without directory or extension.
func (p Path) Stem() string {
	base := filepath.Base(string(p))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Ext returns the file extension including the leading dot.
func (p Path) Ext() string {
	return filepath.Ext(string(p))
}

// StatusKind classifies one changed path from the version-control status.
type StatusKind string

// Supported status codes, matching git's porcelain short format.
const (
	StatusAdded     StatusKind = "A"
	StatusDeleted   StatusKind = "D"
	StatusModified  StatusKind = "M"
	StatusRenamed   StatusKind = "R"
	StatusUntracked StatusKind = "??"
)

// ParseStatusKind maps a trimmed porcelain code to a StatusKind.
// Unrecognized codes fail with ParseError rather than being skipped.
func ParseStatusKind(code string) (StatusKind, error) {
	switch StatusKind(code) {
	case StatusAdded, StatusDeleted, StatusModified, StatusRenamed, StatusUntracked:
		return StatusKind(code), nil
	default:
		return "", &ParseError{Code: code}
	}
}

// Verb returns the commit-message verb for the kind. The mapping is a
// total function over the supported kinds, never a lookup that can miss.
func (k StatusKind) Verb() string {
	switch k {
	case StatusAdded, StatusUntracked:
		return "Add"
	case StatusDeleted:
		return "Delete"
	case StatusModified:
		return "Update"
	case StatusRenamed:
		return "Move|Rename"
	default:
		return "Update"
	}
}

// ChangeRecord is one parsed status line. Records are created per parse,
// immutable, and discarded after one workflow iteration.
type ChangeRecord struct {
	Path Path
	Kind StatusKind
}

// IsArtifact reports whether the record's path carries the tracked
// artifact extension.
func (c ChangeRecord) IsArtifact(ext string) bool {
	return c.Path.Ext() == ext
}

// CommitMessage derives the commit message, e.g. "Update Hull" for a
// modified art/Hull.bp.
func (c ChangeRecord) CommitMessage() string {
	return c.Kind.Verb() + " " + c.Path.Stem()
}
