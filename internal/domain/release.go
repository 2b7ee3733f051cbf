package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"bpship.dev/pkg/bpship/internal/adapter"
	"bpship.dev/pkg/bpship/internal/controller"
	m "bpship.dev/pkg/bpship/internal/model"
)

// ReleaseArgs selects the release run mode.
type ReleaseArgs struct {
	// StagedOnly drops status lines whose index column is blank.
	StagedOnly bool
	// DryRun prints every plan without prompting, persisting, or running
	// commands.
	DryRun bool
}

// Workflow drives the status-to-release pipeline and the warehouse
// bootstrap.
type Workflow interface {
	Release(ctx context.Context, args ReleaseArgs) error
	Bootstrap(ctx context.Context) error
}

type workflow struct {
	cfg       m.Config
	vcs       adapter.VCS
	ledgers   adapter.LedgerStore
	versions  adapter.VersionStore
	warehouse adapter.WarehouseFS
	ui        controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	cfg m.Config,
	vcs adapter.VCS,
	ledgers adapter.LedgerStore,
	versions adapter.VersionStore,
	warehouse adapter.WarehouseFS,
	ui controller.UI,
) Workflow {
	return &workflow{
		cfg:       cfg,
		vcs:       vcs,
		ledgers:   ledgers,
		versions:  versions,
		warehouse: warehouse,
		ui:        ui,
	}
}

// Release runs the confirmable stage/commit/tag/push sequence for every
// changed artifact. Declining a record skips it; cancelling a prompt
// aborts the whole run cleanly; a failed command halts with no rollback.
func (w *workflow) Release(ctx context.Context, args ReleaseArgs) error {
	var (
		statusOut string
		ledger    m.Ledger
	)

	// The status query waits on an external process; load the ledger
	// while it runs. Everything past the join is strictly sequential.
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		out, err := w.vcs.Status(groupCtx)
		if err != nil {
			return err
		}

		statusOut = out

		return nil
	})

	group.Go(func() error {
		loaded, err := w.ledgers.Load()
		if err != nil {
			return err
		}

		ledger = loaded

		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	records, err := ParseStatus(statusOut, args.StagedOnly)
	if err != nil {
		return err
	}

	w.ui.DisplayChanges(records)

	changed := FilterArtifacts(records, w.cfg.ArtifactExt)

	w.ui.DisplayTracking(ledger.Len(), len(changed))

	released := 0

	for index, rec := range changed {
		ok, err := w.releaseOne(ctx, index+1, rec, &ledger, args.DryRun)
		if err != nil {
			if errors.Is(err, m.ErrUserAborted) {
				slog.Info("release aborted by user", "path", rec.Path)
				w.ui.Infof("Leaving early...")

				return nil
			}

			return err
		}

		if ok {
			released++
		}
	}

	slog.Debug("release run complete", "changed", len(changed), "released", released)

	return nil
}

// releaseOne handles a single change record. It reports whether the
// record was confirmed and released.
func (w *workflow) releaseOne(ctx context.Context, number int, rec m.ChangeRecord, ledger *m.Ledger, dryRun bool) (bool, error) {
	// The version is re-read per record so a declined record never
	// advances what the next plan is computed from.
	version, err := w.versions.Load()
	if err != nil {
		return false, err
	}

	bumped, err := version.Bump()
	if err != nil {
		return false, err
	}

	annotation := ""
	if !dryRun {
		annotation, err = w.ui.PromptText(ctx, "Feel free to add a custom message to your commit and tag")
		if err != nil {
			return false, err
		}
	}

	plan, updated, err := w.buildPlan(*ledger, rec, bumped, annotation)
	if err != nil {
		return false, err
	}

	w.ui.DisplayPlan(number, plan)

	if dryRun {
		return false, nil
	}

	confirmed, err := w.ui.Confirm(ctx, "Proceed?")
	if err != nil {
		return false, err
	}

	if !confirmed {
		slog.Info("release declined", "path", rec.Path)
		w.ui.Infof("It's your choice. Totally understand.\n")

		return false, nil
	}

	// Stage the mutation in memory first, then persist; the store only
	// ever writes the already-updated ledger.
	if err := w.ledgers.Save(updated); err != nil {
		return false, err
	}

	*ledger = updated

	if err := w.versions.Save(bumped); err != nil {
		return false, err
	}

	if err := w.execute(ctx, plan); err != nil {
		return false, err
	}

	slog.Info("released", "path", rec.Path, "iteration", plan.Entry.Iteration, "version", bumped.Version)

	return true, nil
}

// buildPlan stages the ledger mutation and renders the confirmation
// material: the bumped version, the command previews, and a diff of the
// ledger file as it will be rewritten.
func (w *workflow) buildPlan(ledger m.Ledger, rec m.ChangeRecord, bumped m.ReleaseVersion, annotation string) (m.ReleasePlan, m.Ledger, error) {
	entry, err := ledger.RecordChange(rec, w.cfg.ArtifactExt)
	if err != nil {
		return m.ReleasePlan{}, m.Ledger{}, err
	}

	updated := ledger.Put(entry)

	plan := m.ReleasePlan{
		Record:     rec,
		Entry:      entry,
		Version:    bumped,
		Annotation: annotation,
	}
	plan.RenderCommands(w.cfg)

	diff, err := w.ledgerDiff(ledger, updated)
	if err != nil {
		return m.ReleasePlan{}, m.Ledger{}, err
	}

	plan.LedgerDiff = diff

	return plan, updated, nil
}

func (w *workflow) ledgerDiff(before, after m.Ledger) (string, error) {
	beforeBytes, err := w.ledgers.Render(before)
	if err != nil {
		return "", err
	}

	afterBytes, err := w.ledgers.Render(after)
	if err != nil {
		return "", err
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(beforeBytes)),
		B:        difflib.SplitLines(string(afterBytes)),
		FromFile: w.cfg.LedgerFile,
		ToFile:   w.cfg.LedgerFile,
		Context:  2,
	})
}

// execute runs the stage, commit, tag, and push commands in that fixed
// order. A non-zero exit surfaces as ExternalCommandFailed; commands that
// already ran are not undone.
func (w *workflow) execute(ctx context.Context, plan m.ReleasePlan) error {
	message := plan.CommitMessage()

	if err := w.vcs.Add(ctx, w.cfg.LedgerFile, w.cfg.VersionFile, string(plan.Record.Path)); err != nil {
		return fmt.Errorf("stage: %w", err)
	}

	if err := w.vcs.Commit(ctx, message); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	if err := w.vcs.Tag(ctx, plan.Version.Tag(), message); err != nil {
		return fmt.Errorf("tag: %w", err)
	}

	if err := w.vcs.Push(ctx); err != nil {
		return fmt.Errorf("push: %w", err)
	}

	return nil
}
