package config

// Default returns the built-in catalog: the creator-grind season plan the
// tracker ships with.
func Default() Catalog {
	return Catalog{
		Profile: ProfileSpec{Level: 1},
		Attributes: map[string]int{
			"wits":     1,
			"vitality": 1,
			"rhetoric": 1,
			// A decade of cutting footage; editing starts well ahead.
			"editing": 10,
		},
		Quests: QuestsSpec{
			Daily: []QuestSpec{
				{
					ID:          "d1",
					Description: "Daily Joke Writing (Scott Dikkers Method)",
					Target:      7,
					XPPerUnit:   50,
					Attribute:   "wits",
				},
			},
			Weekly: []QuestSpec{
				{
					ID:          "w1",
					Description: "3-4 Talking Head Videos",
					Target:      4,
					XPPool:      300,
					Attribute:   "rhetoric",
				},
				{
					ID:          "w2",
					Description: "RPG Style Vlog Edit (High Level)",
					Target:      1,
					XPPool:      1000,
					Attribute:   "editing",
				},
				{
					ID:          "w3",
					Description: "3 Gym Sessions",
					Target:      3,
					XPPool:      400,
					Attribute:   "vitality",
				},
			},
			Monthly: []QuestSpec{
				{
					ID:          "m1",
					Description: "Big Boss: One Skit Script",
					Target:      1,
					XPPool:      1000,
					Attribute:   "wits",
				},
				{
					ID:          "m2",
					Description: "Final Boss: One Skit Video",
					Target:      1,
					XPPool:      2000,
					Attribute:   "editing",
				},
			},
		},
		Milestones: []MilestoneSpec{
			{Name: "TikTok Followers", Value: 9500, Target: 10000},
			{Name: "YouTube Watch Hours", Value: 2100, Target: 3000},
		},
		Weight: WeightSpec{Start: 91, Goal: 75},
	}
}
