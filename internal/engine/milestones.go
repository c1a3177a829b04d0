package engine

import (
	"strconv"
	"strings"
)

// Milestone is an ungoverned display counter (follower count, watch hours).
// It is edited directly by the user, is not derived from XP or levels, and
// sits outside the snapshot/undo domain.
type Milestone struct {
	Name   string
	Value  int
	Target int
}

// Set replaces the value with the coerced input.
func (m *Milestone) Set(input string) {
	m.Value = CoerceCount(input)
}

// Percent returns display progress toward the target, capped at 100.
func (m Milestone) Percent() float64 {
	if m.Target <= 0 {
		return 0
	}
	p := float64(m.Value) / float64(m.Target) * 100
	if p > 100 {
		return 100
	}
	return p
}

// CoerceCount turns free-form input into a counter value. Anything that is
// not a non-negative integer becomes 0.
func CoerceCount(input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// WeightTracker is the body-weight side quest: a manually stepped value
// walking from Start down to Goal. Display state only.
type WeightTracker struct {
	Start   float64
	Goal    float64
	Current float64
}

// Step moves the current weight by delta (the UI steps by ±0.5).
func (w *WeightTracker) Step(delta float64) {
	w.Current += delta
}

// Progress returns 0..1 of the distance covered from Start toward Goal.
func (w WeightTracker) Progress() float64 {
	span := w.Start - w.Goal
	if span <= 0 {
		return 0
	}
	p := (w.Start - w.Current) / span
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
