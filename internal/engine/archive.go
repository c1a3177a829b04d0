package engine

import "time"

// ArchiveEntry is a closed weekly cycle: when it closed, the total XP
// awarded during it, and the profile level at close. Entries are append-only
// and never mutated.
type ArchiveEntry struct {
	Date     time.Time
	XPGained int
	Level    int
}

// CloseCycle closes out the current weekly cycle:
//
//  1. xpGained is the sum of ledger amounts: total XP awarded since the
//     last close, not the XP the profile currently holds.
//  2. A chronicle entry is prepended, newest first.
//  3. Daily and weekly counters reset; monthly quests span multiple cycles
//     and are untouched.
//  4. The ledger is drained: undo history does not survive a cycle close.
//
// Closing twice in a row just produces a second entry with XPGained == 0.
func (e *Engine) CloseCycle() ArchiveEntry {
	total := 0
	for _, s := range e.ledger.Peek() {
		total += s.Amount
	}

	entry := ArchiveEntry{
		Date:     e.now(),
		XPGained: total,
		Level:    e.profile.Level,
	}
	e.chronicle = append([]ArchiveEntry{entry}, e.chronicle...)

	e.registry.ResetCadence(CadenceDaily)
	e.registry.ResetCadence(CadenceWeekly)
	e.ledger.Drain()

	return entry
}

// Chronicle returns the archive view, newest first.
func (e *Engine) Chronicle() []ArchiveEntry {
	out := make([]ArchiveEntry, len(e.chronicle))
	copy(out, e.chronicle)
	return out
}
