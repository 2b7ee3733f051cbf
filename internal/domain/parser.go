// Package domain implements the status parsing, release workflow, and
// warehouse bootstrap logic.
package domain

import (
	"log/slog"
	"strings"

	m "bpship.dev/pkg/bpship/internal/model"
)

// ParseStatus turns raw short-status output into ordered change records.
//
// Each line carries a two-character code followed by the path at offset 3.
// Quoted paths are unquoted and a rename arrow keeps only the new path.
// In stagedOnly mode, lines with a blank index column are dropped with a
// diagnostic. Unrecognized codes fail with ParseError; empty input yields
// an empty slice.
func ParseStatus(output string, stagedOnly bool) ([]m.ChangeRecord, error) {
	records := []m.ChangeRecord{}

	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}

		if len(line) < 4 {
			return nil, &m.ParseError{Code: line}
		}

		code, path := line[:2], line[3:]

		if stagedOnly && code[0] == ' ' {
			slog.Debug("skipping non-staged change", "path", path)
			continue
		}

		code = strings.TrimSpace(code)

		if strings.Contains(path, "->") {
			path = strings.TrimSpace(strings.SplitN(path, "->", 2)[1])
		}

		path = strings.Trim(path, `"`)

		kind, err := m.ParseStatusKind(code)
		if err != nil {
			return nil, err
		}

		records = append(records, m.ChangeRecord{Path: m.Path(path), Kind: kind})
	}

	return records, nil
}

// FilterArtifacts keeps the records whose path carries the tracked
// artifact extension, preserving order. Filtering is idempotent.
func FilterArtifacts(records []m.ChangeRecord, ext string) []m.ChangeRecord {
	filtered := []m.ChangeRecord{}

	for _, rec := range records {
		if rec.IsArtifact(ext) {
			filtered = append(filtered, rec)
		}
	}

	return filtered
}
