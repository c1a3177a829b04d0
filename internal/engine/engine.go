package engine

import (
	"fmt"
	"time"
)

// Engine owns all progression state: profile, attributes, quest registry,
// undo ledger and the weekly chronicle. The presentation layer holds read
// views only and routes every mutation through the operations below; each
// operation either completes against one consistent prior state or no-ops.
type Engine struct {
	profile   Profile
	attrs     map[Attribute]AttributeState
	registry  *Registry
	ledger    *Ledger
	chronicle []ArchiveEntry

	now func() time.Time
}

// Setup seeds a fresh engine. Zero values fall back to a level-1 profile and
// level-1 attributes.
type Setup struct {
	Profile         Profile
	AttributeLevels map[Attribute]int
	Quests          []Quest
}

func New(s Setup) (*Engine, error) {
	p := s.Profile
	if p.Level < 1 {
		p.Level = 1
	}
	if p.XP < 0 || p.XP >= RequiredXPForLevel(p.Level) {
		return nil, fmt.Errorf("profile xp %d out of range for level %d", p.XP, p.Level)
	}

	attrs := make(map[Attribute]AttributeState, len(AllAttributes()))
	for _, a := range AllAttributes() {
		lvl := s.AttributeLevels[a]
		if lvl < 1 {
			lvl = 1
		}
		attrs[a] = AttributeState{Level: lvl}
	}

	for _, q := range s.Quests {
		if !q.Cadence.IsValid() {
			return nil, fmt.Errorf("quest %q: invalid cadence %q", q.ID, q.Cadence)
		}
		if q.Target < 1 {
			return nil, fmt.Errorf("quest %q: target must be positive", q.ID)
		}
		if q.Attribute != "" && !q.Attribute.IsValid() {
			return nil, fmt.Errorf("quest %q: invalid attribute %q", q.ID, q.Attribute)
		}
	}

	return &Engine{
		profile:  p,
		attrs:    attrs,
		registry: NewRegistry(s.Quests),
		ledger:   NewLedger(),
		now:      time.Now,
	}, nil
}

// AwardResult reports what one XP application did.
type AwardResult struct {
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool

	Attribute            Attribute
	AttributeLevelBefore int
	AttributeLevelAfter  int
	AttributeLevelUp     bool
}

// CompleteResult reports one quest-unit completion.
type CompleteResult struct {
	AwardResult

	Quest Quest // post-increment view

	// AlreadyComplete marks the no-op case: the quest was at its target,
	// nothing changed and no snapshot was recorded.
	AlreadyComplete bool

	// QuestDone is set when this unit hit the target.
	QuestDone bool
}

// CompleteQuestUnit advances a quest by one unit and awards its XP, as one
// atomic sequence: snapshot, counter increment, carry loops. Both carry
// loops run against the single state captured at entry.
func (e *Engine) CompleteQuestUnit(cadence Cadence, id string) (*CompleteResult, error) {
	q, err := e.registry.Get(cadence, id)
	if err != nil {
		return nil, err
	}
	if q.Done() {
		return &CompleteResult{Quest: q, AlreadyComplete: true}, nil
	}

	award := q.UnitReward()
	e.ledger.Record(e.snapshot(award, q.Description))

	_, _, incremented, err := e.registry.IncrementCompletion(cadence, id)
	if err != nil || !incremented {
		// Unreachable after the Done check above; fail closed anyway.
		if _, ok := e.ledger.UndoLast(); !ok {
			return nil, fmt.Errorf("inconsistent ledger during %s/%s", cadence, id)
		}
		if err != nil {
			return nil, err
		}
		return &CompleteResult{Quest: q, AlreadyComplete: true}, nil
	}

	res := e.apply(award, q.Attribute)

	after, err := e.registry.Get(cadence, id)
	if err != nil {
		return nil, err
	}
	return &CompleteResult{
		AwardResult: res,
		Quest:       after,
		QuestDone:   after.Done(),
	}, nil
}

// AwardXP applies a direct grant outside any quest, with the same
// snapshot-first contract as quest completions. Negative amounts are
// rejected before anything is recorded.
func (e *Engine) AwardXP(amount int, attr Attribute, label string) (*AwardResult, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	if attr != "" && !attr.IsValid() {
		return nil, fmt.Errorf("invalid attribute: %q", attr)
	}
	e.ledger.Record(e.snapshot(amount, label))
	res := e.apply(amount, attr)
	return &res, nil
}

// apply runs the overall carry loop and, when attr is set, the independent
// attribute carry loop. Both consume the amount in full; level-ups cascade
// through as many levels as the amount covers.
func (e *Engine) apply(amount int, attr Attribute) AwardResult {
	res := AwardResult{
		XPAwarded:   amount,
		LevelBefore: e.profile.Level,
		Attribute:   attr,
	}

	e.profile.XP, e.profile.Level = carry(e.profile.XP+amount, e.profile.Level, RequiredXPForLevel)
	res.LevelAfter = e.profile.Level
	res.LevelUp = res.LevelAfter > res.LevelBefore

	if attr != "" {
		st := e.attrs[attr]
		res.AttributeLevelBefore = st.Level
		st.ProgressXP, st.Level = carry(st.ProgressXP+amount, st.Level, AttributeXPNeeded)
		e.attrs[attr] = st
		res.AttributeLevelAfter = st.Level
		res.AttributeLevelUp = st.Level > res.AttributeLevelBefore
	}
	return res
}

// UndoLast restores the newest snapshot wholesale. Returns false when the
// ledger is empty; state is unchanged in that case.
func (e *Engine) UndoLast() bool {
	s, ok := e.ledger.UndoLast()
	if !ok {
		return false
	}
	e.profile = s.Profile
	e.attrs = make(map[Attribute]AttributeState, len(s.Attributes))
	for a, st := range s.Attributes {
		e.attrs[a] = st
	}
	e.registry.Restore(s.Quests)
	return true
}

// snapshot deep-copies the current state; the copy is never aliased to live
// state.
func (e *Engine) snapshot(amount int, label string) Snapshot {
	attrs := make(map[Attribute]AttributeState, len(e.attrs))
	for a, st := range e.attrs {
		attrs[a] = st
	}
	return Snapshot{
		Profile:    e.profile,
		Attributes: attrs,
		Quests:     e.registry.SnapshotQuests(),
		Amount:     amount,
		Label:      label,
		At:         e.now(),
	}
}

// Profile returns the current overall progression pair.
func (e *Engine) Profile() Profile {
	return e.profile
}

// Attributes returns a copy of the current attribute states.
func (e *Engine) Attributes() map[Attribute]AttributeState {
	out := make(map[Attribute]AttributeState, len(e.attrs))
	for a, st := range e.attrs {
		out[a] = st
	}
	return out
}

// AttributeState returns one attribute's current pair.
func (e *Engine) AttributeState(a Attribute) AttributeState {
	return e.attrs[a]
}

// Quests returns a copy of one cadence collection in catalog order.
func (e *Engine) Quests(cadence Cadence) []Quest {
	return e.registry.List(cadence)
}

// History returns the undo ledger view, newest first.
func (e *Engine) History() []Snapshot {
	return e.ledger.Peek()
}
