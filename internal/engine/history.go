package engine

import "time"

// HistoryCap bounds the ledger: only the 20 most recent snapshots are kept,
// oldest evicted first. Evicted entries are unrecoverable.
const HistoryCap = 20

// Snapshot is a full, independent copy of engine state taken immediately
// before a mutating action. Restoring one is an exact rollback.
type Snapshot struct {
	Profile    Profile
	Attributes map[Attribute]AttributeState
	Quests     map[Cadence][]Quest

	Amount int
	Label  string
	At     time.Time
}

// Ledger is the ordered undo history, newest first.
type Ledger struct {
	entries []Snapshot
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Record prepends a snapshot and truncates to HistoryCap.
func (l *Ledger) Record(s Snapshot) {
	l.entries = append([]Snapshot{s}, l.entries...)
	if len(l.entries) > HistoryCap {
		l.entries = l.entries[:HistoryCap]
	}
}

// UndoLast pops the newest snapshot. ok is false when there is nothing to
// undo; the ledger is left unchanged in that case.
func (l *Ledger) UndoLast() (Snapshot, bool) {
	if len(l.entries) == 0 {
		return Snapshot{}, false
	}
	s := l.entries[0]
	l.entries = l.entries[1:]
	return s, true
}

// Peek returns a read-only view of the ledger, newest first.
func (l *Ledger) Peek() []Snapshot {
	out := make([]Snapshot, len(l.entries))
	copy(out, l.entries)
	return out
}

// Drain returns all entries and clears the ledger.
func (l *Ledger) Drain() []Snapshot {
	out := l.entries
	l.entries = nil
	return out
}

func (l *Ledger) Len() int {
	return len(l.entries)
}
