package gamify

// BadgeType identifies a one-time achievement.
type BadgeType string

const (
	BadgeFirstArticle         BadgeType = "first_article"
	BadgeStreak7              BadgeType = "streak_7"
	BadgeStreak30             BadgeType = "streak_30"
	BadgeLooksmaxxingMaster   BadgeType = "looksmaxxing_master"
	BadgeAncestralMaster      BadgeType = "ancestral_master"
	BadgeQuizAce              BadgeType = "quiz_ace"
	BadgeLevel5               BadgeType = "level_5"
	BadgeLevel10              BadgeType = "level_10"
	BadgeCommunityContributor BadgeType = "community_contributor"
	BadgeEarlyAdopter         BadgeType = "early_adopter"
)

// AllBadgeTypes returns every badge type in display order.
func AllBadgeTypes() []BadgeType {
	return []BadgeType{
		BadgeFirstArticle,
		BadgeStreak7,
		BadgeStreak30,
		BadgeLooksmaxxingMaster,
		BadgeAncestralMaster,
		BadgeQuizAce,
		BadgeLevel5,
		BadgeLevel10,
		BadgeCommunityContributor,
		BadgeEarlyAdopter,
	}
}

// DisplayName returns a human-readable label for the badge.
func (t BadgeType) DisplayName() string {
	switch t {
	case BadgeFirstArticle:
		return "First Steps"
	case BadgeStreak7:
		return "Week Warrior"
	case BadgeStreak30:
		return "Monthly Master"
	case BadgeLooksmaxxingMaster:
		return "Looksmaxxing Master"
	case BadgeAncestralMaster:
		return "Ancestral Master"
	case BadgeQuizAce:
		return "Quiz Ace"
	case BadgeLevel5:
		return "Rising Star"
	case BadgeLevel10:
		return "Elite"
	case BadgeCommunityContributor:
		return "Community Contributor"
	case BadgeEarlyAdopter:
		return "Early Adopter"
	default:
		return string(t)
	}
}

// Description says what earns the badge.
func (t BadgeType) Description() string {
	switch t {
	case BadgeFirstArticle:
		return "Completed your first article"
	case BadgeStreak7:
		return "Maintained a 7-day streak"
	case BadgeStreak30:
		return "Maintained a 30-day streak"
	case BadgeLooksmaxxingMaster:
		return "Completed all looksmaxxing articles"
	case BadgeAncestralMaster:
		return "Completed all ancestral eating articles"
	case BadgeQuizAce:
		return "Got 100% on 5 quizzes"
	case BadgeLevel5:
		return "Reached level 5"
	case BadgeLevel10:
		return "Reached level 10"
	case BadgeCommunityContributor:
		return "Created 5 discussions"
	case BadgeEarlyAdopter:
		return "Joined during launch"
	default:
		return ""
	}
}

// Icon returns the display icon for the badge.
func (t BadgeType) Icon() string {
	switch t {
	case BadgeFirstArticle:
		return "🚀"
	case BadgeStreak7:
		return "🔥"
	case BadgeStreak30:
		return "💪"
	case BadgeLooksmaxxingMaster:
		return "✨"
	case BadgeAncestralMaster:
		return "🥩"
	case BadgeQuizAce:
		return "🎯"
	case BadgeLevel5:
		return "⭐"
	case BadgeLevel10:
		return "🏆"
	case BadgeCommunityContributor:
		return "💬"
	case BadgeEarlyAdopter:
		return "🌟"
	default:
		return "🏅"
	}
}
