package domain

import (
	"context"
	"log/slog"

	m "bpship.dev/pkg/bpship/internal/model"
)

// Bootstrap populates an empty ledger from a recursive warehouse scan.
// Every discovered artifact starts at the first iteration. A ledger that
// already has content is refused so real data is never overwritten.
func (w *workflow) Bootstrap(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	hasContent, err := w.ledgers.HasContent()
	if err != nil {
		return err
	}

	if hasContent {
		return &m.LedgerAlreadyExistsError{Path: w.cfg.LedgerPath()}
	}

	paths, err := w.warehouse.FindArtifacts(w.cfg.Root, w.cfg.ArtifactExt)
	if err != nil {
		return err
	}

	ledger := m.NewLedger()
	for _, path := range paths {
		ledger = ledger.Put(m.LedgerEntry{
			Name:      path.Stem(),
			Path:      string(path),
			Iteration: m.FirstIteration,
		})
	}

	if err := w.ledgers.Save(ledger); err != nil {
		return err
	}

	slog.Info("warehouse initialized", "artifacts", ledger.Len(), "ledger", w.cfg.LedgerPath())
	w.ui.Infof("Tracking %d blueprints in %s", ledger.Len(), w.cfg.LedgerFile)

	return nil
}
