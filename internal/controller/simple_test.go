package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	m "bpship.dev/pkg/bpship/internal/model"
)

func newTestUI(input string) (*SimpleUI, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(input))

	return NewSimpleUI(cmd), out
}

func TestSimpleUI_Confirm(t *testing.T) {
	cases := map[string]struct {
		input string
		want  bool
	}{
		"explicit yes":    {"y\n", true},
		"spelled out yes": {"yes\n", true},
		"empty answer":    {"\n", true},
		"explicit no":     {"n\n", false},
		"anything else":   {"maybe\n", false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ui, _ := newTestUI(tc.input)

			got, err := ui.Confirm(context.Background(), "Proceed?")
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSimpleUI_ConfirmEOFAborts(t *testing.T) {
	ui, _ := newTestUI("")

	_, err := ui.Confirm(context.Background(), "Proceed?")
	require.ErrorIs(t, err, m.ErrUserAborted)
}

func TestSimpleUI_PromptText(t *testing.T) {
	ui, out := newTestUI("rebalanced thrusters\n")

	got, err := ui.PromptText(context.Background(), "Custom message")
	require.NoError(t, err)
	require.Equal(t, "rebalanced thrusters", got)
	require.Contains(t, out.String(), "Custom message")
}

func TestSimpleUI_PromptsShareOneReader(t *testing.T) {
	// Both answers arrive up front; the second prompt must still see its
	// line instead of losing it to a discarded buffer.
	ui, _ := newTestUI("first note\ny\n")

	note, err := ui.PromptText(context.Background(), "Note")
	require.NoError(t, err)
	require.Equal(t, "first note", note)

	confirmed, err := ui.Confirm(context.Background(), "Proceed?")
	require.NoError(t, err)
	require.True(t, confirmed)
}

func TestSimpleUI_DisplayPlan(t *testing.T) {
	ui, out := newTestUI("")

	plan := m.ReleasePlan{
		Record:  m.ChangeRecord{Path: "art/Hull.bp", Kind: m.StatusModified},
		Entry:   m.LedgerEntry{Name: "Hull", Path: "art/Hull.bp", Iteration: 4},
		Version: m.ReleaseVersion{Version: "8"},
	}
	plan.RenderCommands(m.Config{
		LedgerFile:  "iteration.json",
		VersionFile: "version.json",
		VCSBinary:   "git",
	})

	ui.DisplayPlan(1, plan)

	text := out.String()
	require.Contains(t, text, "Update Hull")
	require.Contains(t, text, "8")
	require.Contains(t, text, "git add iteration.json version.json 'art/Hull.bp'")
	require.Contains(t, text, "git tag v8")
	require.Contains(t, text, "Push to remote")
}

func TestSimpleUI_DisplayLedger(t *testing.T) {
	ui, out := newTestUI("")

	ledger := m.NewLedger().
		Put(m.LedgerEntry{Name: "Wing", Path: "art/Wing.bp", Iteration: 2}).
		Put(m.LedgerEntry{Name: "Hull", Path: "art/Hull.bp", Iteration: 4})

	ui.DisplayLedger(ledger)

	text := out.String()
	require.Contains(t, text, "art/Hull.bp")
	require.Contains(t, text, "art/Wing.bp")

	// Sorted by path: Hull before Wing.
	require.Less(t, strings.Index(text, "Hull"), strings.Index(text, "Wing"))
}

func TestSimpleUI_DisplayChangesEmpty(t *testing.T) {
	ui, out := newTestUI("")

	ui.DisplayChanges(nil)
	require.Contains(t, out.String(), "working tree clean")
}
