package engine

import (
	"fmt"
	"strings"
)

type Attribute string

const (
	AttributeWits     Attribute = "wits"
	AttributeVitality Attribute = "vitality"
	AttributeRhetoric Attribute = "rhetoric"
	AttributeEditing  Attribute = "editing"
)

func (a Attribute) IsValid() bool {
	switch a {
	case AttributeWits, AttributeVitality, AttributeRhetoric, AttributeEditing:
		return true
	default:
		return false
	}
}

// AllAttributes returns the fixed attribute set in display order.
// The set never grows or shrinks at runtime.
func AllAttributes() []Attribute {
	return []Attribute{AttributeWits, AttributeVitality, AttributeRhetoric, AttributeEditing}
}

// ParseAttribute parses user/catalog input to an Attribute.
// Empty input is valid and means "no attribute reward".
func ParseAttribute(input string) (Attribute, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return "", nil
	}
	a := Attribute(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid attribute: %q", input)
	}
	return a, nil
}

type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

func (c Cadence) IsValid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly:
		return true
	default:
		return false
	}
}

// AllCadences returns the cadence collections in display order.
func AllCadences() []Cadence {
	return []Cadence{CadenceDaily, CadenceWeekly, CadenceMonthly}
}

func ParseCadence(input string) (Cadence, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	c := Cadence(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid cadence: %q", input)
	}
	return c, nil
}

// Profile is the overall progression pair. XP always stays below
// RequiredXPForLevel(Level).
type Profile struct {
	Level int
	XP    int
}

// AttributeState is one attribute's progression pair, independent of the
// profile and of the other attributes.
type AttributeState struct {
	Level      int
	ProgressXP int
}
