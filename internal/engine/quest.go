package engine

// Quest is a recurring task definition plus its live counter for the current
// cycle. Daily quests carry a fixed per-unit reward; weekly and monthly
// quests carry a total pool split evenly across the target, floored.
type Quest struct {
	ID          string
	Cadence     Cadence
	Description string
	Target      int
	Count       int

	XPPerUnit int
	XPPool    int

	// Attribute also receiving the award; empty means profile-only.
	Attribute Attribute
}

// UnitReward returns the XP awarded for one completion unit.
func (q Quest) UnitReward() int {
	if q.Cadence == CadenceDaily {
		return q.XPPerUnit
	}
	if q.Target <= 0 {
		return 0
	}
	return q.XPPool / q.Target
}

// Done reports whether the quest has hit its target for this cycle.
func (q Quest) Done() bool {
	return q.Count >= q.Target
}

// Registry holds the three ordered cadence collections. The catalog is fixed
// after construction; only Count moves, and only through IncrementCompletion
// and ResetCadence (or a wholesale Restore during undo).
type Registry struct {
	quests map[Cadence][]Quest
}

func NewRegistry(quests []Quest) *Registry {
	r := &Registry{quests: map[Cadence][]Quest{}}
	for _, q := range quests {
		r.quests[q.Cadence] = append(r.quests[q.Cadence], q)
	}
	return r
}

// Get returns the quest with the given id in the given cadence collection.
func (r *Registry) Get(cadence Cadence, id string) (Quest, error) {
	for _, q := range r.quests[cadence] {
		if q.ID == id {
			return q, nil
		}
	}
	return Quest{}, QuestNotFoundError{Cadence: cadence, ID: id}
}

// IncrementCompletion advances a quest by one unit and returns the XP award
// and reward attribute. A quest already at its target is left untouched and
// reported with incremented=false; the caller must not apply XP or record
// history in that case.
func (r *Registry) IncrementCompletion(cadence Cadence, id string) (award int, attr Attribute, incremented bool, err error) {
	qs := r.quests[cadence]
	for i := range qs {
		if qs[i].ID != id {
			continue
		}
		if qs[i].Count >= qs[i].Target {
			return 0, "", false, nil
		}
		qs[i].Count++
		return qs[i].UnitReward(), qs[i].Attribute, true, nil
	}
	return 0, "", false, QuestNotFoundError{Cadence: cadence, ID: id}
}

// ResetCadence zeroes the live counter of every quest in one collection.
func (r *Registry) ResetCadence(cadence Cadence) {
	qs := r.quests[cadence]
	for i := range qs {
		qs[i].Count = 0
	}
}

// List returns a copy of one cadence collection in catalog order.
func (r *Registry) List(cadence Cadence) []Quest {
	qs := r.quests[cadence]
	out := make([]Quest, len(qs))
	copy(out, qs)
	return out
}

// SnapshotQuests returns an independent deep copy of all three collections,
// safe to keep across later mutations.
func (r *Registry) SnapshotQuests() map[Cadence][]Quest {
	out := make(map[Cadence][]Quest, len(r.quests))
	for c, qs := range r.quests {
		cp := make([]Quest, len(qs))
		copy(cp, qs)
		out[c] = cp
	}
	return out
}

// Restore replaces the live collections with a previously captured snapshot.
// The snapshot is copied again so the ledger's copy stays independent.
func (r *Registry) Restore(snapshot map[Cadence][]Quest) {
	r.quests = map[Cadence][]Quest{}
	for c, qs := range snapshot {
		cp := make([]Quest, len(qs))
		copy(cp, qs)
		r.quests[c] = cp
	}
}
