package model

import (
	"errors"
	"testing"
)

func TestLedgerRecordChange(t *testing.T) {
	t.Run("new artifact starts at first iteration", func(t *testing.T) {
		ledger := NewLedger()
		rec := ChangeRecord{Path: "art/Hull.bp", Kind: StatusAdded}

		entry, err := ledger.RecordChange(rec, ".bp")
		if err != nil {
			t.Fatalf("RecordChange error: %v", err)
		}

		if entry.Name != "Hull" || entry.Path != "art/Hull.bp" || entry.Iteration != 1 {
			t.Errorf("entry = %+v, want {Hull art/Hull.bp 1}", entry)
		}

		// The ledger itself must stay untouched until Put.
		if ledger.Len() != 0 {
			t.Errorf("ledger mutated by RecordChange, len = %d", ledger.Len())
		}
	})

	t.Run("existing artifact advances by exactly one", func(t *testing.T) {
		ledger := NewLedger().Put(LedgerEntry{Name: "Hull", Path: "art/Hull.bp", Iteration: 3})
		rec := ChangeRecord{Path: "art/Hull.bp", Kind: StatusModified}

		entry, err := ledger.RecordChange(rec, ".bp")
		if err != nil {
			t.Fatalf("RecordChange error: %v", err)
		}

		if entry.Iteration != 4 {
			t.Errorf("iteration = %d, want 4", entry.Iteration)
		}

		if entry.Name != "Hull" || entry.Path != "art/Hull.bp" {
			t.Errorf("name/path changed: %+v", entry)
		}
	})

	t.Run("rejects non-artifact paths", func(t *testing.T) {
		ledger := NewLedger()
		rec := ChangeRecord{Path: "notes.txt", Kind: StatusModified}

		_, err := ledger.RecordChange(rec, ".bp")

		var notArtifact *NotAnArtifactError
		if !errors.As(err, &notArtifact) {
			t.Fatalf("err = %v, want NotAnArtifactError", err)
		}
	})
}

func TestLedgerPut(t *testing.T) {
	original := NewLedger().Put(LedgerEntry{Name: "Hull", Path: "art/Hull.bp", Iteration: 1})
	updated := original.Put(LedgerEntry{Name: "Hull", Path: "art/Hull.bp", Iteration: 2})

	if got, _ := original.Lookup("art/Hull.bp"); got.Iteration != 1 {
		t.Errorf("Put aliased the original ledger: iteration = %d", got.Iteration)
	}

	if got, _ := updated.Lookup("art/Hull.bp"); got.Iteration != 2 {
		t.Errorf("updated iteration = %d, want 2", got.Iteration)
	}

	// The entry's own path is always the key it is stored under.
	entry, ok := updated.Iterations["art/Hull.bp"]
	if !ok || entry.Path != "art/Hull.bp" {
		t.Errorf("key/path mismatch: %+v", entry)
	}
}

func TestLedgerLookupMissing(t *testing.T) {
	ledger := NewLedger()

	if _, ok := ledger.Lookup("art/Missing.bp"); ok {
		t.Error("expected Lookup miss for untracked path")
	}
}
