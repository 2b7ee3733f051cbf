package model

import (
	"errors"
	"fmt"
)

// ErrUserAborted signals that the human cancelled at a prompt. It is a
// clean termination of the run, not a failure.
var ErrUserAborted = errors.New("aborted by user")

// ParseError reports an unrecognized status code in the version-control
// status output.
type ParseError struct {
	Code string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized status code %q", e.Code)
}

// CorruptLedgerError reports a ledger file that could not be decoded.
type CorruptLedgerError struct {
	Path string
	Err  error
}

func (e *CorruptLedgerError) Error() string {
	return fmt.Sprintf("corrupt ledger file %s: %v", e.Path, e.Err)
}

func (e *CorruptLedgerError) Unwrap() error { return e.Err }

// CorruptVersionError reports a version value that is not an integer, or a
// version file that could not be decoded.
type CorruptVersionError struct {
	Value string
	Err   error
}

func (e *CorruptVersionError) Error() string {
	return fmt.Sprintf("corrupt version value %q: %v", e.Value, e.Err)
}

func (e *CorruptVersionError) Unwrap() error { return e.Err }

// LedgerAlreadyExistsError refuses a warehouse bootstrap over a ledger
// that already has content.
type LedgerAlreadyExistsError struct {
	Path string
}

func (e *LedgerAlreadyExistsError) Error() string {
	return fmt.Sprintf("ledger %s already exists and is not empty", e.Path)
}

// NotAnArtifactError guards the ledger against tracking unrelated files.
type NotAnArtifactError struct {
	Path Path
}

func (e *NotAnArtifactError) Error() string {
	return fmt.Sprintf("%s is not a blueprint artifact", e.Path)
}

// ExternalCommandFailed reports a version-control command that exited
// non-zero. Already executed commands are not rolled back.
type ExternalCommandFailed struct {
	Command string
	Output  string
	Err     error
}

func (e *ExternalCommandFailed) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *ExternalCommandFailed) Unwrap() error { return e.Err }
