// Package config resolves the runtime configuration and the quest catalog.
// The catalog seeds the engine once at startup; a custom catalog can be
// supplied as a YAML file, otherwise the built-in one is used.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ebgeebee/tokyo-creator-rpg/internal/engine"
)

// Config is the environment-driven app configuration.
type Config struct {
	// CatalogPath points at a YAML catalog file. Empty means built-in.
	CatalogPath string `env:"TCR_CATALOG"`
}

func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Catalog is the YAML shape of a full session seed: starting profile and
// attribute levels, the three quest collections, and the display-only
// milestone counters and weight tracker.
type Catalog struct {
	Profile    ProfileSpec     `yaml:"profile"`
	Attributes map[string]int  `yaml:"attributes"`
	Quests     QuestsSpec      `yaml:"quests"`
	Milestones []MilestoneSpec `yaml:"milestones"`
	Weight     WeightSpec      `yaml:"weight"`
}

type ProfileSpec struct {
	Level int `yaml:"level"`
	XP    int `yaml:"xp"`
}

type QuestsSpec struct {
	Daily   []QuestSpec `yaml:"daily"`
	Weekly  []QuestSpec `yaml:"weekly"`
	Monthly []QuestSpec `yaml:"monthly"`
}

type QuestSpec struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Target      int    `yaml:"target"`
	XPPerUnit   int    `yaml:"xp_per_unit,omitempty"`
	XPPool      int    `yaml:"xp_pool,omitempty"`
	Attribute   string `yaml:"attribute,omitempty"`
}

type MilestoneSpec struct {
	Name   string `yaml:"name"`
	Value  int    `yaml:"value"`
	Target int    `yaml:"target"`
}

type WeightSpec struct {
	Start float64 `yaml:"start"`
	Goal  float64 `yaml:"goal"`
}

// LoadCatalog reads and validates a catalog. An empty path resolves to the
// built-in catalog.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the catalog before it ever reaches the engine: positive
// targets, reward policy matching the cadence, known attributes, and ids
// unique within their collection.
func (c Catalog) Validate() error {
	if c.Profile.Level < 1 {
		return fmt.Errorf("profile level must be at least 1")
	}
	for name := range c.Attributes {
		if _, err := engine.ParseAttribute(name); err != nil || name == "" {
			return fmt.Errorf("unknown attribute %q", name)
		}
	}

	check := func(cadence engine.Cadence, specs []QuestSpec) error {
		seen := map[string]bool{}
		for _, q := range specs {
			if q.ID == "" {
				return fmt.Errorf("%s quest with empty id", cadence)
			}
			if seen[q.ID] {
				return fmt.Errorf("duplicate %s quest id %q", cadence, q.ID)
			}
			seen[q.ID] = true
			if q.Target < 1 {
				return fmt.Errorf("%s quest %q: target must be positive", cadence, q.ID)
			}
			if cadence == engine.CadenceDaily {
				if q.XPPerUnit < 1 || q.XPPool != 0 {
					return fmt.Errorf("daily quest %q: wants xp_per_unit, not xp_pool", q.ID)
				}
			} else {
				if q.XPPool < 1 || q.XPPerUnit != 0 {
					return fmt.Errorf("%s quest %q: wants xp_pool, not xp_per_unit", cadence, q.ID)
				}
			}
			if _, err := engine.ParseAttribute(q.Attribute); err != nil {
				return fmt.Errorf("%s quest %q: %w", cadence, q.ID, err)
			}
		}
		return nil
	}

	if err := check(engine.CadenceDaily, c.Quests.Daily); err != nil {
		return err
	}
	if err := check(engine.CadenceWeekly, c.Quests.Weekly); err != nil {
		return err
	}
	return check(engine.CadenceMonthly, c.Quests.Monthly)
}

// EngineSetup converts the catalog into the engine seed.
func (c Catalog) EngineSetup() (engine.Setup, error) {
	if err := c.Validate(); err != nil {
		return engine.Setup{}, err
	}

	levels := make(map[engine.Attribute]int, len(c.Attributes))
	for name, lvl := range c.Attributes {
		a, err := engine.ParseAttribute(name)
		if err != nil {
			return engine.Setup{}, err
		}
		levels[a] = lvl
	}

	var quests []engine.Quest
	add := func(cadence engine.Cadence, specs []QuestSpec) error {
		for _, q := range specs {
			attr, err := engine.ParseAttribute(q.Attribute)
			if err != nil {
				return err
			}
			quests = append(quests, engine.Quest{
				ID:          q.ID,
				Cadence:     cadence,
				Description: q.Description,
				Target:      q.Target,
				XPPerUnit:   q.XPPerUnit,
				XPPool:      q.XPPool,
				Attribute:   attr,
			})
		}
		return nil
	}
	if err := add(engine.CadenceDaily, c.Quests.Daily); err != nil {
		return engine.Setup{}, err
	}
	if err := add(engine.CadenceWeekly, c.Quests.Weekly); err != nil {
		return engine.Setup{}, err
	}
	if err := add(engine.CadenceMonthly, c.Quests.Monthly); err != nil {
		return engine.Setup{}, err
	}

	return engine.Setup{
		Profile:         engine.Profile{Level: c.Profile.Level, XP: c.Profile.XP},
		AttributeLevels: levels,
		Quests:          quests,
	}, nil
}

// MilestoneCounters returns the seeded display counters.
func (c Catalog) MilestoneCounters() []engine.Milestone {
	out := make([]engine.Milestone, 0, len(c.Milestones))
	for _, m := range c.Milestones {
		out = append(out, engine.Milestone{Name: m.Name, Value: m.Value, Target: m.Target})
	}
	return out
}

// WeightTracker returns the seeded weight tracker.
func (c Catalog) WeightTracker() engine.WeightTracker {
	return engine.WeightTracker{Start: c.Weight.Start, Goal: c.Weight.Goal, Current: c.Weight.Start}
}
