package catalog

// CategoryID identifies a content category.
type CategoryID string

const (
	CategoryLooksmaxxing    CategoryID = "looksmaxxing"
	CategoryAncestralEating CategoryID = "ancestral-eating"
)

// AllCategoryIDs returns all category IDs in display order.
func AllCategoryIDs() []CategoryID {
	return []CategoryID{CategoryLooksmaxxing, CategoryAncestralEating}
}

// Category is a build-time constant grouping of articles.
type Category struct {
	ID           CategoryID
	Title        string
	Description  string
	Icon         string
	ArticleCount int // nominal count shown on the overview; not the seeded count
}

// Level is the difficulty ordinal of an article (1-3).
type Level int

const (
	LevelBeginner     Level = 1
	LevelIntermediate Level = 2
	LevelAdvanced     Level = 3
)

// Label returns the display label for a level.
func (l Level) Label() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}

// Article is a single read-only piece of content.
type Article struct {
	ID          string
	Title       string
	Description string
	Category    CategoryID
	Level       Level
	Duration    string // display string, e.g. "5 min"
	Content     string // line-based markup, see ui/markup
}

// ArticleState represents an article's state relative to the learner.
type ArticleState int

const (
	StateLocked    ArticleState = iota // previous article in the chain not completed
	StateAvailable                     // unlocked, not yet completed
	StateCompleted                     // quiz passed at least once
)

// Icon returns the display icon for an article state.
func (s ArticleState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateAvailable:
		return "🔓"
	case StateCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for an article state.
func (s ArticleState) Label() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateAvailable:
		return "Available"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
