package controller

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "bpship.dev/pkg/bpship/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI with line-oriented prompts and cobra's output
// stream. It is the fallback for non-terminal stdin and the base the TUI
// builds on for display.
type SimpleUI struct {
	cmd    *cobra.Command
	reader *bufio.Reader
}

// NewSimpleUI creates a SimpleUI reading answers from the command's input.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		cmd: cmd,
		// One shared reader so buffered input survives across prompts.
		reader: bufio.NewReader(cmd.InOrStdin()),
	}
}

// Confirm asks prompt and reads a y/n answer. EOF maps to ErrUserAborted.
func (s *SimpleUI) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.cmd.Printf("%s [Y/n]: ", prompt)

	line, err := s.readLine()
	if err != nil {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "" || answer == "y" || answer == "yes", nil
}

// PromptText asks for one free-text line. EOF maps to ErrUserAborted.
func (s *SimpleUI) PromptText(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.cmd.Printf("%s: ", label)

	line, err := s.readLine()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (s *SimpleUI) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", m.ErrUserAborted
		}

		return "", fmt.Errorf("read input: %w", err)
	}

	return line, nil
}

// Infof prints a formatted informational line.
func (s *SimpleUI) Infof(format string, args ...any) {
	s.cmd.Printf(format+"\n", args...)
}

// DisplayChanges renders the parsed status records as a table.
func (s *SimpleUI) DisplayChanges(records []m.ChangeRecord) {
	s.cmd.Println(headerStyle.Render("Changed files"))

	if len(records) == 0 {
		s.cmd.Println(faintStyle.Render("working tree clean"))
		return
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, rec := range records {
		table.Append([]string{string(rec.Path), rec.Kind.Verb()})
	}

	table.Render()
	s.cmd.Print(buf.String())
}

// DisplayTracking summarizes the ledger against the filtered change set.
func (s *SimpleUI) DisplayTracking(tracked, changed int) {
	s.cmd.Println(headerStyle.Render("Ledger"))
	s.cmd.Printf("Tracking %d blueprints\n", tracked)
	s.cmd.Println(headerStyle.Render(fmt.Sprintf("Found %d changed blueprints", changed)))
	s.cmd.Println()
}

// DisplayPlan shows everything the user is about to confirm for one record.
func (s *SimpleUI) DisplayPlan(number int, plan m.ReleasePlan) {
	s.cmd.Printf("No. %d: %s\n\n", number, plan.Record.CommitMessage())
	s.cmd.Println(headerStyle.Render("Please confirm the following:"))
	s.cmd.Println(labelStyle.Render("- Update the iteration ledger:"))

	if plan.LedgerDiff != "" {
		s.cmd.Print(faintStyle.Render(plan.LedgerDiff))
	}

	s.cmd.Printf("%s %s\n",
		labelStyle.Render("- Update warehouse version to"),
		valueStyle.Render(plan.Version.Version),
	)
	s.cmd.Println(labelStyle.Render("- Run the following (stage, commit, tag) commands:"))
	s.cmd.Println(commandStyle.Render(plan.Stage + " && " + plan.Commit + " && " + plan.Tag))
	s.cmd.Println(labelStyle.Render("- Push to remote"))
}

// DisplayLedger renders the tracked artifacts as a table with a total.
func (s *SimpleUI) DisplayLedger(ledger m.Ledger) {
	entries := make([]m.LedgerEntry, 0, ledger.Len())
	for _, entry := range ledger.Iterations {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Name", "Path", "Iteration"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	for _, entry := range entries {
		table.Append([]string{entry.Name, entry.Path, fmt.Sprintf("%d", entry.Iteration)})
	}

	table.SetFooter([]string{"", "Total", fmt.Sprintf("%d", len(entries))})
	table.Render()
	s.cmd.Print(buf.String())
}
