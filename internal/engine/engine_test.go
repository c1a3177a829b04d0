package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(Setup{
		AttributeLevels: map[Attribute]int{
			AttributeWits:     1,
			AttributeVitality: 1,
			AttributeRhetoric: 1,
			AttributeEditing:  10,
		},
		Quests: []Quest{
			{ID: "d1", Cadence: CadenceDaily, Description: "Daily Joke Writing", Target: 7, XPPerUnit: 50, Attribute: AttributeWits},
			{ID: "w1", Cadence: CadenceWeekly, Description: "Talking Head Videos", Target: 4, XPPool: 300, Attribute: AttributeRhetoric},
			{ID: "w2", Cadence: CadenceWeekly, Description: "Vlog Edit", Target: 1, XPPool: 1000, Attribute: AttributeEditing},
			{ID: "m1", Cadence: CadenceMonthly, Description: "Skit Script", Target: 1, XPPool: 1000, Attribute: AttributeWits},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) }
	return e
}

type worldState struct {
	Profile Profile
	Attrs   map[Attribute]AttributeState
	Quests  map[Cadence][]Quest
}

func captureWorld(e *Engine) worldState {
	w := worldState{
		Profile: e.Profile(),
		Attrs:   e.Attributes(),
		Quests:  map[Cadence][]Quest{},
	}
	for _, c := range AllCadences() {
		w.Quests[c] = e.Quests(c)
	}
	return w
}

func TestAwardXPSingleLevelUp(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.AwardXP(600, "", "grant")
	if err != nil {
		t.Fatalf("AwardXP: %v", err)
	}
	if !res.LevelUp || res.LevelBefore != 1 || res.LevelAfter != 2 {
		t.Fatalf("levels=%d→%d levelUp=%v, want 1→2 true", res.LevelBefore, res.LevelAfter, res.LevelUp)
	}
	p := e.Profile()
	if p.Level != 2 || p.XP != 100 {
		t.Fatalf("profile=(L%d,%d), want (L2,100)", p.Level, p.XP)
	}
}

func TestAwardXPCascadesMultipleLevels(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.AwardXP(3000, "", "windfall"); err != nil {
		t.Fatalf("AwardXP: %v", err)
	}
	p := e.Profile()
	if p.Level != 5 || p.XP != 680 {
		t.Fatalf("profile=(L%d,%d), want (L5,680)", p.Level, p.XP)
	}
	if p.XP < 0 || p.XP >= RequiredXPForLevel(p.Level) {
		t.Fatalf("xp %d outside [0,%d)", p.XP, RequiredXPForLevel(p.Level))
	}
}

func TestAwardXPRejectsNegative(t *testing.T) {
	e := newTestEngine(t)
	before := captureWorld(e)

	if _, err := e.AwardXP(-10, "", "bad"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err=%v, want ErrInvalidAmount", err)
	}
	if diff := cmp.Diff(before, captureWorld(e)); diff != "" {
		t.Fatalf("state changed on rejected award:\n%s", diff)
	}
	if e.ledger.Len() != 0 {
		t.Fatalf("ledger recorded a snapshot for a rejected award")
	}
}

func TestAttributeIndependence(t *testing.T) {
	e := newTestEngine(t)
	before := e.Attributes()

	if _, err := e.AwardXP(120, AttributeWits, "wits grant"); err != nil {
		t.Fatalf("AwardXP: %v", err)
	}

	after := e.Attributes()
	for _, a := range []Attribute{AttributeVitality, AttributeRhetoric, AttributeEditing} {
		if after[a] != before[a] {
			t.Fatalf("%s changed: %+v → %+v", a, before[a], after[a])
		}
	}
	// 120 into wits at level 1: -50 → L2, -100 would exceed, so 70 remains.
	if w := after[AttributeWits]; w.Level != 2 || w.ProgressXP != 70 {
		t.Fatalf("wits=(L%d,%d), want (L2,70)", w.Level, w.ProgressXP)
	}
}

func TestCompleteQuestUnitAwardsAndCounts(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.CompleteQuestUnit(CadenceWeekly, "w1")
	if err != nil {
		t.Fatalf("CompleteQuestUnit: %v", err)
	}
	// Pool 300 over target 4 → 75 per unit.
	if res.XPAwarded != 75 {
		t.Fatalf("award=%d, want 75", res.XPAwarded)
	}
	if res.Quest.Count != 1 {
		t.Fatalf("count=%d, want 1", res.Quest.Count)
	}
	if res.Attribute != AttributeRhetoric {
		t.Fatalf("attribute=%q, want rhetoric", res.Attribute)
	}
	if got := e.AttributeState(AttributeRhetoric); got.Level != 2 || got.ProgressXP != 25 {
		t.Fatalf("rhetoric=(L%d,%d), want (L2,25)", got.Level, got.ProgressXP)
	}
	if len(e.History()) != 1 {
		t.Fatalf("history len=%d, want 1", len(e.History()))
	}
}

func TestDailyQuestFullWeek(t *testing.T) {
	e := newTestEngine(t)

	total := 0
	for i := 0; i < 7; i++ {
		res, err := e.CompleteQuestUnit(CadenceDaily, "d1")
		if err != nil {
			t.Fatalf("unit %d: %v", i+1, err)
		}
		if res.AlreadyComplete {
			t.Fatalf("unit %d unexpectedly already complete", i+1)
		}
		total += res.XPAwarded
	}
	if total != 350 {
		t.Fatalf("total awarded=%d, want 350", total)
	}

	q, err := e.registry.Get(CadenceDaily, "d1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if q.Count != 7 || !q.Done() {
		t.Fatalf("count=%d done=%v, want 7 true", q.Count, q.Done())
	}
	if p := e.Profile(); p.Level != 1 || p.XP != 350 {
		t.Fatalf("profile=(L%d,%d), want (L1,350)", p.Level, p.XP)
	}
	// 350 XP into wits from level 1: 50+100+150 consumed, 50 into level 4.
	if w := e.AttributeState(AttributeWits); w.Level != 4 || w.ProgressXP != 50 {
		t.Fatalf("wits=(L%d,%d), want (L4,50)", w.Level, w.ProgressXP)
	}
}

func TestCompleteQuestUnitCapIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 7; i++ {
		if _, err := e.CompleteQuestUnit(CadenceDaily, "d1"); err != nil {
			t.Fatalf("unit %d: %v", i+1, err)
		}
	}
	before := captureWorld(e)
	histBefore := len(e.History())

	res, err := e.CompleteQuestUnit(CadenceDaily, "d1")
	if err != nil {
		t.Fatalf("8th unit: %v", err)
	}
	if !res.AlreadyComplete {
		t.Fatalf("expected AlreadyComplete on 8th unit")
	}
	if res.XPAwarded != 0 {
		t.Fatalf("award=%d on no-op, want 0", res.XPAwarded)
	}
	if diff := cmp.Diff(before, captureWorld(e)); diff != "" {
		t.Fatalf("state changed on capped quest:\n%s", diff)
	}
	if len(e.History()) != histBefore {
		t.Fatalf("no-op recorded a snapshot")
	}
}

func TestCompleteQuestUnitNotFound(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.CompleteQuestUnit(CadenceDaily, "nope")
	var nf QuestNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v, want QuestNotFoundError", err)
	}
	if nf.Cadence != CadenceDaily || nf.ID != "nope" {
		t.Fatalf("QuestNotFoundError=%+v", nf)
	}

	// Same id under another cadence is still not found: ids are scoped to
	// their collection.
	if _, err := e.CompleteQuestUnit(CadenceMonthly, "d1"); !errors.As(err, &nf) {
		t.Fatalf("cross-cadence lookup err=%v, want QuestNotFoundError", err)
	}
}

func TestUndoRestoresExactState(t *testing.T) {
	e := newTestEngine(t)

	// Build up some history first so undo lands on a non-fresh state.
	if _, err := e.CompleteQuestUnit(CadenceWeekly, "w2"); err != nil {
		t.Fatalf("setup completion: %v", err)
	}
	before := captureWorld(e)

	if _, err := e.CompleteQuestUnit(CadenceDaily, "d1"); err != nil {
		t.Fatalf("completion: %v", err)
	}
	if diff := cmp.Diff(before, captureWorld(e)); diff == "" {
		t.Fatalf("completion did not change state")
	}

	if !e.UndoLast() {
		t.Fatalf("UndoLast returned false with history present")
	}
	if diff := cmp.Diff(before, captureWorld(e)); diff != "" {
		t.Fatalf("undo is not an exact inverse:\n%s", diff)
	}
}

func TestUndoOnEmptyHistoryIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	before := captureWorld(e)

	if e.UndoLast() {
		t.Fatalf("UndoLast returned true on empty history")
	}
	if diff := cmp.Diff(before, captureWorld(e)); diff != "" {
		t.Fatalf("state changed on empty undo:\n%s", diff)
	}
}

func TestUndoIsSingleStep(t *testing.T) {
	e := newTestEngine(t)

	for i := 0; i < 3; i++ {
		if _, err := e.CompleteQuestUnit(CadenceDaily, "d1"); err != nil {
			t.Fatalf("unit %d: %v", i+1, err)
		}
	}

	undone := 0
	for e.UndoLast() {
		undone++
	}
	if undone != 3 {
		t.Fatalf("undone=%d, want 3", undone)
	}
	fresh := newTestEngine(t)
	if diff := cmp.Diff(captureWorld(fresh), captureWorld(e)); diff != "" {
		t.Fatalf("full unwind did not reach the initial state:\n%s", diff)
	}
}

func TestSnapshotsAreNotAliased(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.CompleteQuestUnit(CadenceDaily, "d1"); err != nil {
		t.Fatalf("completion: %v", err)
	}
	snap := e.History()[0]

	// Mutate live state heavily; the captured snapshot must not move.
	for i := 0; i < 6; i++ {
		if _, err := e.CompleteQuestUnit(CadenceDaily, "d1"); err != nil {
			t.Fatalf("completion %d: %v", i, err)
		}
	}

	if snap.Profile.XP != 0 || snap.Profile.Level != 1 {
		t.Fatalf("snapshot profile mutated: %+v", snap.Profile)
	}
	for _, q := range snap.Quests[CadenceDaily] {
		if q.ID == "d1" && q.Count != 0 {
			t.Fatalf("snapshot quest count mutated: %d", q.Count)
		}
	}
}

func TestNewRejectsBadSetup(t *testing.T) {
	if _, err := New(Setup{Profile: Profile{Level: 1, XP: 500}}); err == nil {
		t.Fatalf("expected error for xp at threshold")
	}
	if _, err := New(Setup{Quests: []Quest{{ID: "x", Cadence: "yearly", Target: 1}}}); err == nil {
		t.Fatalf("expected error for invalid cadence")
	}
	if _, err := New(Setup{Quests: []Quest{{ID: "x", Cadence: CadenceDaily, Target: 0}}}); err == nil {
		t.Fatalf("expected error for zero target")
	}
}
