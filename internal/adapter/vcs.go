package adapter

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	m "bpship.dev/pkg/bpship/internal/model"
)

// DefaultCommandTimeout bounds a single version-control command.
const DefaultCommandTimeout = 2 * time.Minute

// VCS abstracts the version-control operations the release workflow
// issues. Implementations return combined output so failures can be shown
// to the user verbatim.
type VCS interface {
	// Status returns the raw short-status output.
	Status(ctx context.Context) (string, error)
	// Add stages the given paths.
	Add(ctx context.Context, paths ...string) error
	// Commit records the staged changes with message.
	Commit(ctx context.Context, message string) error
	// Tag creates an annotated tag with message.
	Tag(ctx context.Context, name, message string) error
	// Push publishes the current branch and its commits.
	Push(ctx context.Context) error
}

// GitVCS shells out to the configured git binary.
type GitVCS struct {
	binary  string
	workDir string
	timeout time.Duration
}

// NewGitVCS constructs a GitVCS running binary inside workDir.
func NewGitVCS(binary, workDir string, timeout time.Duration) *GitVCS {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}

	return &GitVCS{binary: binary, workDir: workDir, timeout: timeout}
}

// Status runs the porcelain short-status query.
func (g *GitVCS) Status(ctx context.Context) (string, error) {
	return g.run(ctx, "status", "--porcelain")
}

// Add stages the given paths.
func (g *GitVCS) Add(ctx context.Context, paths ...string) error {
	_, err := g.run(ctx, append([]string{"add"}, paths...)...)
	return err
}

// Commit records the staged changes.
func (g *GitVCS) Commit(ctx context.Context, message string) error {
	_, err := g.run(ctx, "commit", "-m", message)
	return err
}

// Tag creates an annotated tag.
func (g *GitVCS) Tag(ctx context.Context, name, message string) error {
	_, err := g.run(ctx, "tag", name, "-m", message)
	return err
}

// Push publishes to the default remote.
func (g *GitVCS) Push(ctx context.Context) error {
	_, err := g.run(ctx, "push")
	return err
}

func (g *GitVCS) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, g.binary, args...)
	cmd.Dir = g.workDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running vcs command", "binary", g.binary, "args", args)

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	if err != nil {
		return output, &m.ExternalCommandFailed{
			Command: g.binary + " " + strings.Join(args, " "),
			Output:  output,
			Err:     err,
		}
	}

	return output, nil
}
