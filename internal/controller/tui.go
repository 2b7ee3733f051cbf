package controller

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	m "bpship.dev/pkg/bpship/internal/model"
)

// TUI layers Bubble Tea prompts over the SimpleUI display methods. It is
// selected when stdin/stdout are attached to a terminal.
type TUI struct {
	*SimpleUI
}

// NewTUI wraps simple with interactive prompting.
func NewTUI(simple *SimpleUI) *TUI {
	return &TUI{SimpleUI: simple}
}

// Confirm asks a single-keypress yes/no question. Enter means yes, Esc or
// Ctrl-C aborts the run.
func (t *TUI) Confirm(ctx context.Context, prompt string) (bool, error) {
	program := tea.NewProgram(
		confirmModel{prompt: prompt},
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}

	result, ok := final.(confirmModel)
	if !ok || result.aborted {
		return false, m.ErrUserAborted
	}

	return result.confirmed, nil
}

// PromptText asks for one line of free text. Esc or Ctrl-C aborts the run.
func (t *TUI) PromptText(ctx context.Context, label string) (string, error) {
	program := tea.NewProgram(
		newPromptModel(label),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("text prompt: %w", err)
	}

	result, ok := final.(promptModel)
	if !ok || result.aborted {
		return "", m.ErrUserAborted
	}

	return result.input.Value(), nil
}

type confirmModel struct {
	prompt    string
	confirmed bool
	aborted   bool
	done      bool
}

func (c confirmModel) Init() tea.Cmd { return nil }

func (c confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.String() {
	case "y", "Y", "enter":
		c.confirmed = true
		c.done = true

		return c, tea.Quit
	case "n", "N":
		c.confirmed = false
		c.done = true

		return c, tea.Quit
	case "esc", "ctrl+c":
		c.aborted = true
		return c, tea.Quit
	}

	return c, nil
}

func (c confirmModel) View() string {
	if c.done || c.aborted {
		return ""
	}

	return fmt.Sprintf("%s %s\n", c.prompt, faintStyle.Render("[Y/n]"))
}

type promptModel struct {
	label   string
	input   textinput.Model
	aborted bool
	done    bool
}

func newPromptModel(label string) promptModel {
	input := textinput.New()
	input.Prompt = ""
	input.Focus()

	return promptModel{label: label, input: input}
}

func (p promptModel) Init() tea.Cmd { return textinput.Blink }

func (p promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			p.done = true
			return p, tea.Quit
		case "esc", "ctrl+c":
			p.aborted = true
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)

	return p, cmd
}

func (p promptModel) View() string {
	if p.done || p.aborted {
		return ""
	}

	return fmt.Sprintf("%s: %s\n", p.label, p.input.View())
}
