// Package controller provides the interactive surface for the bpship CLI.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "bpship.dev/pkg/bpship/internal/model"
)

// UI is the narrow capability interface the release workflow depends on.
// The prompting methods return m.ErrUserAborted when the human cancels,
// which the workflow treats as a clean whole-run abort.
type UI interface {
	// Confirm asks a yes/no question. An empty answer means yes.
	Confirm(ctx context.Context, prompt string) (bool, error)
	// PromptText solicits a free-text line, e.g. a commit annotation.
	PromptText(ctx context.Context, label string) (string, error)

	Infof(format string, args ...any)
	DisplayChanges(records []m.ChangeRecord)
	DisplayTracking(tracked, changed int)
	DisplayPlan(number int, plan m.ReleasePlan)
	DisplayLedger(ledger m.Ledger)
}

// NewUI selects the interactive Bubble Tea prompts when attached to a
// terminal and plain line-oriented prompts otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	simple := NewSimpleUI(cmd)
	if interactive {
		return NewTUI(simple)
	}

	return simple
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
