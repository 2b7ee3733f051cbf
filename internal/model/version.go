package model

import "strconv"

// ReleaseVersion is the repository-wide release counter. It is stored as a
// string but bumped arithmetically.
type ReleaseVersion struct {
	Version string `json:"version"`
}

// Number parses the stored version as an integer.
func (v ReleaseVersion) Number() (int, error) {
	n, err := strconv.Atoi(v.Version)
	if err != nil {
		return 0, &CorruptVersionError{Value: v.Version, Err: err}
	}

	return n, nil
}

// Bump returns a new version exactly one greater than v. The receiver is
// left untouched so the caller decides when the bump becomes visible.
func (v ReleaseVersion) Bump() (ReleaseVersion, error) {
	n, err := v.Number()
	if err != nil {
		return ReleaseVersion{}, err
	}

	return ReleaseVersion{Version: strconv.Itoa(n + 1)}, nil
}

// Tag returns the version-control tag name for v, e.g. "v42".
func (v ReleaseVersion) Tag() string {
	return "v" + v.Version
}
