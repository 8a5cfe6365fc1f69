package quiz

// bank is the question set for every article in the catalog.
var bank = map[string]Quiz{
	"lm-1": {
		ArticleID: "lm-1",
		Comprehension: Comprehension{
			Question: "What are the three pillars of looksmaxxing mentioned in the article?",
			Options:  []string{"Diet, Exercise, Sleep", "Skincare, Bone Structure, Body Composition", "Posture, Mewing, Cardio", "Supplements, Surgery, Grooming"},
			Correct:  1,
		},
		Personalization: []Personalization{{
			Key:      "primary_goal",
			Question: "What's your primary goal with looksmaxxing?",
			Options:  []string{"Improve my skin", "Enhance facial structure", "Build a better body", "All of the above"},
		}},
	},
	"lm-2": {
		ArticleID: "lm-2",
		Comprehension: Comprehension{
			Question: "What is the most important step in a morning skincare routine according to the article?",
			Options:  []string{"Vitamin C serum", "Moisturizer", "Sunscreen", "Cleanser"},
			Correct:  2,
		},
		Personalization: []Personalization{{
			Key:      "skin_type",
			Question: "How would you describe your current skin?",
			Options:  []string{"Clear with minor issues", "Acne-prone", "Dry/Sensitive", "Oily"},
		}},
	},
	"lm-3": {
		ArticleID: "lm-3",
		Comprehension: Comprehension{
			Question: "What's the correct way to start mewing?",
			Options:  []string{"Push tongue against teeth", "Say 'sing' and note tongue position", "Open mouth wide", "Breathe through mouth"},
			Correct:  1,
		},
		Personalization: []Personalization{{
			Key:      "mewing_status",
			Question: "Do you currently practice proper tongue posture?",
			Options:  []string{"Yes, consistently", "Sometimes", "Rarely", "I wasn't aware of it"},
		}},
	},
	"lm-4": {
		ArticleID: "lm-4",
		Comprehension: Comprehension{
			Question: "What causes forward head posture?",
			Options:  []string{"Sleeping wrong", "Looking at screens", "Walking too much", "Eating poorly"},
			Correct:  1,
		},
		Personalization: []Personalization{{
			Key:      "sitting_hours",
			Question: "How many hours per day do you spend sitting?",
			Options:  []string{"Less than 4 hours", "4-6 hours", "6-8 hours", "More than 8 hours"},
		}},
	},
	"lm-5": {
		ArticleID: "lm-5",
		Comprehension: Comprehension{
			Question: "Why should you be careful with jaw exercises?",
			Options:  []string{"They don't work", "Can cause TMJ issues", "They're expensive", "Need equipment"},
			Correct:  1,
		},
		Personalization: []Personalization{{
			Key:      "facial_exercise_exp",
			Question: "Have you tried any facial exercises before?",
			Options:  []string{"Yes, regularly", "A few times", "Never", "Interested to start"},
		}},
	},
	"ae-1": {
		ArticleID: "ae-1",
		Comprehension: Comprehension{
			Question: "What should you avoid according to ancestral eating principles?",
			Options:  []string{"Organ meats", "Seed oils", "Bone broth", "Fatty fish"},
			Correct:  1,
		},
		Personalization: []Personalization{{
			Key:      "current_diet",
			Question: "How would you describe your current diet?",
			Options:  []string{"Standard American Diet", "Mostly whole foods", "Keto/Low carb", "Vegetarian/Vegan"},
		}},
	},
	"ae-2": {
		ArticleID: "ae-2",
		Comprehension: Comprehension{
			Question: "Why is liver called 'nature's multivitamin'?",
			Options:  []string{"It's very filling", "It's the most nutrient-dense food", "It's cheap", "It tastes good"},
			Correct:  1,
		},
		Personalization: []Personalization{{
			Key:      "organ_meat_exp",
			Question: "Have you ever eaten organ meats?",
			Options:  []string{"Yes, regularly", "Occasionally", "Never but willing to try", "Not interested"},
		}},
	},
	"ae-3": {
		ArticleID: "ae-3",
		Comprehension: Comprehension{
			Question: "What's the main problem with seed oils?",
			Options:  []string{"They're expensive", "High in Omega-6 causing inflammation", "They taste bad", "Low in calories"},
			Correct:  1,
		},
		Personalization: []Personalization{{
			Key:      "cooking_oils",
			Question: "What oils do you currently cook with?",
			Options:  []string{"Butter/Ghee/Tallow", "Olive oil only", "Vegetable/Seed oils", "Mix of everything"},
		}},
	},
	"ae-4": {
		ArticleID: "ae-4",
		Comprehension: Comprehension{
			Question: "What's the benefit of making bone broth?",
			Options:  []string{"It's very tasty", "Rich in collagen and minerals, great for gut health", "It's quick to make", "Low in nutrients"},
			Correct:  1,
		},
		Personalization: []Personalization{{
			Key:      "bone_broth_habit",
			Question: "Do you make bone broth at home?",
			Options:  []string{"Yes, weekly", "Sometimes", "Never tried", "Interested to learn"},
		}},
	},
	"ae-5": {
		ArticleID: "ae-5",
		Comprehension: Comprehension{
			Question: "What's a sign of poor digestion mentioned in the article?",
			Options:  []string{"Being hungry", "Bloating after meals", "Weight loss", "Better sleep"},
			Correct:  1,
		},
		Personalization: []Personalization{{
			Key:      "digestion_issues",
			Question: "Do you experience digestive issues?",
			Options:  []string{"Rarely or never", "Sometimes", "Frequently", "After certain foods"},
		}},
	},
}
