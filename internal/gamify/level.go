package gamify

// XPPerLevel is the flat XP cost of every level.
const XPPerLevel = 100

// DefaultXPPerArticle is awarded for each completed article.
const DefaultXPPerArticle = 25

// LevelForXP returns the level for an XP total. Level 1 starts at 0 XP.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// LevelProgress returns XP earned into the current level and XP still
// needed to reach the next one.
func LevelProgress(xp int) (into, needed int) {
	if xp < 0 {
		xp = 0
	}
	into = xp % XPPerLevel
	return into, XPPerLevel - into
}
