package model

// FirstIteration is the counter value assigned to a newly tracked artifact.
const FirstIteration = 1

// LedgerEntry tracks one artifact's release state. The path doubles as the
// ledger key, so it is stored in string form.
type LedgerEntry struct {
	Name      string `json:"name" yaml:"name"`
	Path      string `json:"path" yaml:"path"`
	Iteration int    `json:"iteration" yaml:"iteration"`
}

// Ledger is the persisted mapping from artifact path to its entry.
type Ledger struct {
	Iterations map[string]LedgerEntry `json:"iterations" yaml:"iterations"`
}

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return Ledger{Iterations: map[string]LedgerEntry{}}
}

// Len returns the number of tracked artifacts.
func (l Ledger) Len() int {
	return len(l.Iterations)
}

// Lookup returns the entry for path, if one exists. Missing keys are not
// an error.
func (l Ledger) Lookup(path Path) (LedgerEntry, bool) {
	entry, ok := l.Iterations[string(path)]
	return entry, ok
}

// RecordChange computes the entry that tracking this change would produce:
// an existing artifact's iteration advances by one, a new artifact starts
// at FirstIteration. The ledger itself is not modified; install the result
// with Put when (and only when) the release is confirmed.
func (l Ledger) RecordChange(rec ChangeRecord, artifactExt string) (LedgerEntry, error) {
	if !rec.IsArtifact(artifactExt) {
		return LedgerEntry{}, &NotAnArtifactError{Path: rec.Path}
	}

	iteration := FirstIteration
	if existing, ok := l.Lookup(rec.Path); ok {
		iteration = existing.Iteration + 1
	}

	return LedgerEntry{
		Name:      rec.Path.Stem(),
		Path:      string(rec.Path),
		Iteration: iteration,
	}, nil
}

// Put returns a copy of the ledger with entry installed under its own path.
// Returning a new value keeps the stage-then-persist sequence explicit for
// the caller.
func (l Ledger) Put(entry LedgerEntry) Ledger {
	next := make(map[string]LedgerEntry, len(l.Iterations)+1)
	for key, value := range l.Iterations {
		next[key] = value
	}

	next[entry.Path] = entry

	return Ledger{Iterations: next}
}
