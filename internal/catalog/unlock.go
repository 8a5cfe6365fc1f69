package catalog

// IsUnlocked reports whether an article is accessible given the set of
// completed article IDs. The first article of a category is always
// unlocked; every later one needs its immediate predecessor completed.
// An unknown ID is a caller error, not a locked article.
func IsUnlocked(articleID string, completed map[string]bool) (bool, error) {
	a, err := GetArticle(articleID)
	if err != nil {
		return false, err
	}
	pos := c.position[articleID]
	if pos == 0 {
		return true, nil
	}
	prev := c.byCategory[a.Category][pos-1]
	return completed[prev.ID], nil
}

// StateOf returns the learner-relative state of an article.
func StateOf(articleID string, completed map[string]bool) (ArticleState, error) {
	unlocked, err := IsUnlocked(articleID, completed)
	if err != nil {
		return StateLocked, err
	}
	switch {
	case completed[articleID]:
		return StateCompleted, nil
	case unlocked:
		return StateAvailable, nil
	default:
		return StateLocked, nil
	}
}

// ArticleStatus pairs an article with its state.
type ArticleStatus struct {
	Article Article
	State   ArticleState
}

// StatesFor returns every article in a category with its state, in
// authorial order.
func StatesFor(id CategoryID, completed map[string]bool) []ArticleStatus {
	articles := c.byCategory[id]
	out := make([]ArticleStatus, 0, len(articles))
	for _, a := range articles {
		// IDs come from the catalog itself, so StateOf cannot fail here.
		st, _ := StateOf(a.ID, completed)
		out = append(out, ArticleStatus{Article: a, State: st})
	}
	return out
}

// NextArticle returns the first unlocked, uncompleted article of a category.
func NextArticle(id CategoryID, completed map[string]bool) (Article, bool) {
	for _, s := range StatesFor(id, completed) {
		if s.State == StateAvailable {
			return s.Article, true
		}
	}
	return Article{}, false
}

// CompletedIn counts completed articles in a category.
func CompletedIn(id CategoryID, completed map[string]bool) int {
	n := 0
	for _, a := range c.byCategory[id] {
		if completed[a.ID] {
			n++
		}
	}
	return n
}
