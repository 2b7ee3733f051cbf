package model

import "fmt"

// ReleasePlan is everything the user must confirm before one record is
// released: the staged ledger entry, the bumped version, and the exact
// command sequence that will run.
type ReleasePlan struct {
	Record     ChangeRecord
	Entry      LedgerEntry
	Version    ReleaseVersion
	Annotation string

	// Stage, Commit, Tag and Push are the rendered command previews.
	Stage  string
	Commit string
	Tag    string
	Push   string

	// LedgerDiff is a unified diff of the ledger file before and after
	// the staged mutation.
	LedgerDiff string
}

// CommitMessage is the full message used for both the commit and the tag:
// the derived message, optionally followed by the user's annotation.
func (p ReleasePlan) CommitMessage() string {
	message := p.Record.CommitMessage()
	if p.Annotation != "" {
		message += "\n\n" + p.Annotation
	}

	return message
}

// RenderCommands builds the command previews from the config. The shapes
// mirror what the VCS adapter will execute.
func (p *ReleasePlan) RenderCommands(cfg Config) {
	message := p.CommitMessage()

	p.Stage = fmt.Sprintf("%s add %s %s '%s'", cfg.VCSBinary, cfg.LedgerFile, cfg.VersionFile, p.Record.Path)
	p.Commit = fmt.Sprintf("%s commit -m '%s'", cfg.VCSBinary, message)
	p.Tag = fmt.Sprintf("%s tag %s -m '%s'", cfg.VCSBinary, p.Version.Tag(), message)
	p.Push = cfg.VCSBinary + " push"
}
