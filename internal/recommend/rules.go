package recommend

// DefaultRules returns the built-in rule table.
func DefaultRules() []Rule {
	return []Rule{
		{
			Key:     "skin_type",
			Matches: []string{"Acne-prone"},
			Recommendation: Recommendation{
				Kind:        KindIssue,
				Title:       "Acne-Prone Skin",
				Description: "Focus on a consistent skincare routine with salicylic acid and niacinamide. Avoid touching your face and change pillowcases weekly.",
			},
		},
		{
			Key:     "sitting_hours",
			Matches: []string{"More than 8 hours", "6-8 hours"},
			Recommendation: Recommendation{
				Kind:        KindIssue,
				Title:       "Excessive Sitting",
				Description: "You sit for long periods which affects posture. Set hourly reminders to stretch and do the posture exercises from the article.",
			},
		},
		{
			Key:     "mewing_status",
			Matches: []string{"I wasn't aware of it", "Rarely"},
			Recommendation: Recommendation{
				Kind:        KindImprovement,
				Title:       "Start Mewing Practice",
				Description: "Begin practicing proper tongue posture. Start with awareness—check your tongue position hourly until it becomes habit.",
			},
		},
		{
			Key:     "cooking_oils",
			Matches: []string{"Vegetable/Seed oils", "Mix of everything"},
			Recommendation: Recommendation{
				Kind:        KindIssue,
				Title:       "Switch Your Cooking Oils",
				Description: "You're using inflammatory seed oils. Switch to butter, ghee, tallow, or olive oil for better health outcomes.",
			},
		},
		{
			Key:     "organ_meat_exp",
			Matches: []string{"Never but willing to try", "Not interested"},
			Recommendation: Recommendation{
				Kind:        KindImprovement,
				Title:       "Try Organ Meats",
				Description: "Organ meats are nature's multivitamin. Start with beef heart (tastes like steak) or freeze liver into pill-sized pieces.",
			},
		},
		{
			Key:     "digestion_issues",
			Matches: []string{"Frequently", "After certain foods"},
			Recommendation: Recommendation{
				Kind:        KindIssue,
				Title:       "Improve Digestion",
				Description: "Focus on chewing thoroughly, eating mindfully, and incorporating fermented foods like sauerkraut into your diet.",
			},
		},
		{
			Key:     "current_diet",
			Matches: []string{"Standard American Diet"},
			Recommendation: Recommendation{
				Kind:        KindIssue,
				Title:       "Diet Overhaul Needed",
				Description: "Your current diet is far from optimal. Start by eliminating processed foods and seed oils before adding in nutrient-dense foods.",
			},
		},
		{
			Key:     "primary_goal",
			Matches: []string{"All of the above"},
			Recommendation: Recommendation{
				Kind:        KindImprovement,
				Title:       "Holistic Approach",
				Description: "Great that you want to improve everything! Focus on one area at a time—start with skincare as it shows results fastest.",
			},
		},
	}
}
