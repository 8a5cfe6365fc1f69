package catalog

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// catalog holds the content registry with precomputed indices.
type catalog struct {
	categories []Category
	articles   []Article
	byID       map[string]*Article
	byCategory map[CategoryID][]Article
	position   map[string]int // article ID → index within its category
	categoryOf map[CategoryID]*Category
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the registry from ordered categories and articles.
// Article order within a category is the order of appearance in articles.
func buildCatalog(categories []Category, articles []Article) *catalog {
	cat := &catalog{
		categories: categories,
		articles:   articles,
		byID:       make(map[string]*Article, len(articles)),
		byCategory: make(map[CategoryID][]Article),
		position:   make(map[string]int, len(articles)),
		categoryOf: make(map[CategoryID]*Category, len(categories)),
	}

	for i := range cat.categories {
		cat.categoryOf[cat.categories[i].ID] = &cat.categories[i]
	}

	for i := range cat.articles {
		a := cat.articles[i]
		cat.byID[a.ID] = &cat.articles[i]
		cat.position[a.ID] = len(cat.byCategory[a.Category])
		cat.byCategory[a.Category] = append(cat.byCategory[a.Category], a)
	}

	return cat
}

// Categories returns all categories in display order.
func Categories() []Category {
	return slices.Clone(c.categories)
}

// GetCategory returns a category by ID.
func GetCategory(id CategoryID) (Category, error) {
	cat, ok := c.categoryOf[id]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, id)
	}
	return *cat, nil
}

// ArticlesByCategory returns a category's articles in authorial order.
func ArticlesByCategory(id CategoryID) []Article {
	return slices.Clone(c.byCategory[id])
}

// AllArticles returns every article, categories in display order.
func AllArticles() []Article {
	return slices.Clone(c.articles)
}

// GetArticle returns an article by ID.
func GetArticle(id string) (Article, error) {
	a, ok := c.byID[id]
	if !ok {
		return Article{}, fmt.Errorf("%w: %q", ErrArticleNotFound, id)
	}
	return *a, nil
}

// MasteryArticleIDs returns the fixed article list whose completion earns
// the category's mastery badge.
func MasteryArticleIDs(id CategoryID) []string {
	switch id {
	case CategoryLooksmaxxing:
		return []string{"lm-1", "lm-2", "lm-3", "lm-4", "lm-5"}
	case CategoryAncestralEating:
		return []string{"ae-1", "ae-2", "ae-3", "ae-4", "ae-5"}
	default:
		return nil
	}
}

// Validate checks the catalog for structural issues.
func Validate() error {
	return validateCatalog(c.categories, c.articles)
}
