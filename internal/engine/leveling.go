package engine

import "math"

const (
	// LevelBaseXP is the XP required to clear level 1.
	LevelBaseXP = 500.0

	// LevelGrowthRate is the per-level geometric growth of the profile curve.
	LevelGrowthRate = 1.1

	// AttributeXPStep is the linear per-level cost of the attribute curve.
	AttributeXPStep = 50
)

// RequiredXPForLevel returns the XP needed to advance past the given profile
// level: floor(500 * 1.1^(level-1)). Strictly increasing.
func RequiredXPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(LevelBaseXP * math.Pow(LevelGrowthRate, float64(level-1))))
}

// AttributeXPNeeded returns the XP needed to advance past the given attribute
// level: 50 * level. Strictly increasing.
func AttributeXPNeeded(level int) int {
	if level < 1 {
		level = 1
	}
	return AttributeXPStep * level
}

// carry runs the subtract-threshold/increment-level loop until xp sits below
// the next threshold. Thresholds are strictly positive, so the loop
// terminates for any finite non-negative xp.
func carry(xp, level int, needed func(int) int) (int, int) {
	for xp >= needed(level) {
		xp -= needed(level)
		level++
	}
	return xp, level
}
