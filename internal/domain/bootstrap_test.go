package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"

	m "bpship.dev/pkg/bpship/internal/model"
)

func writeArtifact(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	if err := afero.WriteFile(fs, path, []byte("blueprint"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestBootstrap(t *testing.T) {
	t.Run("builds one entry per discovered artifact", func(t *testing.T) {
		env := newTestEnv(t, "", m.NewLedger(), "0")
		// Start from a missing ledger, as a fresh warehouse would.
		if err := env.fs.Remove(env.cfg.LedgerPath()); err != nil {
			t.Fatalf("remove seed ledger: %v", err)
		}

		writeArtifact(t, env.fs, "/warehouse/a/x.bp")
		writeArtifact(t, env.fs, "/warehouse/b/y.bp")
		writeArtifact(t, env.fs, "/warehouse/b/notes.txt")

		if err := env.workflow.Bootstrap(context.Background()); err != nil {
			t.Fatalf("Bootstrap error: %v", err)
		}

		ledger, err := env.ledgers.Load()
		if err != nil {
			t.Fatalf("load ledger: %v", err)
		}

		if ledger.Len() != 2 {
			t.Fatalf("ledger has %d entries, want 2", ledger.Len())
		}

		for _, key := range []string{"a/x.bp", "b/y.bp"} {
			entry, ok := ledger.Lookup(m.Path(key))
			if !ok {
				t.Errorf("missing entry for %q", key)
				continue
			}

			if entry.Iteration != 1 || entry.Path != key {
				t.Errorf("entry %q = %+v, want iteration 1", key, entry)
			}
		}
	})

	t.Run("duplicate stems under different paths both survive", func(t *testing.T) {
		env := newTestEnv(t, "", m.NewLedger(), "0")
		if err := env.fs.Remove(env.cfg.LedgerPath()); err != nil {
			t.Fatalf("remove seed ledger: %v", err)
		}

		writeArtifact(t, env.fs, "/warehouse/a/Hull.bp")
		writeArtifact(t, env.fs, "/warehouse/b/Hull.bp")

		if err := env.workflow.Bootstrap(context.Background()); err != nil {
			t.Fatalf("Bootstrap error: %v", err)
		}

		ledger, err := env.ledgers.Load()
		if err != nil {
			t.Fatalf("load ledger: %v", err)
		}

		if ledger.Len() != 2 {
			t.Errorf("ledger has %d entries, want 2", ledger.Len())
		}
	})

	t.Run("refuses a ledger with content", func(t *testing.T) {
		seed := m.NewLedger().Put(m.LedgerEntry{Name: "Hull", Path: "art/Hull.bp", Iteration: 3})
		env := newTestEnv(t, "", seed, "0")

		writeArtifact(t, env.fs, "/warehouse/a/x.bp")

		err := env.workflow.Bootstrap(context.Background())

		var exists *m.LedgerAlreadyExistsError
		if !errors.As(err, &exists) {
			t.Fatalf("err = %v, want LedgerAlreadyExistsError", err)
		}

		// The existing data was not overwritten.
		ledger, loadErr := env.ledgers.Load()
		if loadErr != nil {
			t.Fatalf("load ledger: %v", loadErr)
		}

		entry, _ := ledger.Lookup("art/Hull.bp")
		if entry.Iteration != 3 {
			t.Errorf("ledger overwritten: %+v", entry)
		}
	})

	t.Run("proceeds over an empty ledger file", func(t *testing.T) {
		env := newTestEnv(t, "", m.NewLedger(), "0")
		if err := afero.WriteFile(env.fs, env.cfg.LedgerPath(), []byte{}, 0o644); err != nil {
			t.Fatalf("truncate ledger: %v", err)
		}

		writeArtifact(t, env.fs, "/warehouse/a/x.bp")

		if err := env.workflow.Bootstrap(context.Background()); err != nil {
			t.Fatalf("Bootstrap error: %v", err)
		}

		ledger, err := env.ledgers.Load()
		if err != nil {
			t.Fatalf("load ledger: %v", err)
		}

		if ledger.Len() != 1 {
			t.Errorf("ledger has %d entries, want 1", ledger.Len())
		}
	})
}
