package catalog

import (
	"fmt"
	"strings"
)

// validateCatalog performs all structural checks on the given content.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(categories []Category, articles []Article) error {
	var errs []string

	catSet := make(map[CategoryID]bool, len(categories))
	for _, cat := range categories {
		if catSet[cat.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", cat.ID))
		}
		catSet[cat.ID] = true
		if strings.TrimSpace(cat.Title) == "" {
			errs = append(errs, fmt.Sprintf("category %q has no title", cat.ID))
		}
	}

	idSet := make(map[string]bool, len(articles))
	perCategory := make(map[CategoryID]int)
	for _, a := range articles {
		if idSet[a.ID] {
			errs = append(errs, fmt.Sprintf("duplicate article ID: %q", a.ID))
		}
		idSet[a.ID] = true

		if !catSet[a.Category] {
			errs = append(errs, fmt.Sprintf("article %q references unknown category %q", a.ID, a.Category))
		}
		perCategory[a.Category]++

		if a.Level < LevelBeginner || a.Level > LevelAdvanced {
			errs = append(errs, fmt.Sprintf("article %q: level must be in [1, 3], got %d", a.ID, a.Level))
		}
		if strings.TrimSpace(a.Title) == "" {
			errs = append(errs, fmt.Sprintf("article %q has no title", a.ID))
		}
		if strings.TrimSpace(a.Content) == "" {
			errs = append(errs, fmt.Sprintf("article %q has no content", a.ID))
		}
	}

	for _, cat := range categories {
		if perCategory[cat.ID] == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no articles", cat.ID))
		}
		for _, id := range MasteryArticleIDs(cat.ID) {
			if !idSet[id] {
				errs = append(errs, fmt.Sprintf("mastery list for %q references missing article %q", cat.ID, id))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
