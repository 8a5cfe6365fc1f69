package quiz

import (
	"fmt"
	"maps"
	"slices"
	"sort"
)

// Bank resolves article IDs to their quiz.
type Bank struct {
	quizzes map[string]Quiz
}

// DefaultBank returns the built-in question bank.
func DefaultBank() *Bank {
	return NewBank(bank)
}

// NewBank creates a bank over the given quizzes, keyed by article ID.
func NewBank(quizzes map[string]Quiz) *Bank {
	return &Bank{quizzes: quizzes}
}

// Lookup returns a copy of the quiz for the article.
func (b *Bank) Lookup(articleID string) (Quiz, error) {
	q, ok := b.quizzes[articleID]
	if !ok {
		return Quiz{}, fmt.Errorf("%w: %q", ErrNoQuiz, articleID)
	}
	q.Comprehension.Options = slices.Clone(q.Comprehension.Options)
	ps := make([]Personalization, len(q.Personalization))
	for i, p := range q.Personalization {
		p.Options = slices.Clone(p.Options)
		ps[i] = p
	}
	q.Personalization = ps
	return q, nil
}

// ArticleIDs returns the IDs that have a quiz, sorted.
func (b *Bank) ArticleIDs() []string {
	ids := slices.Collect(maps.Keys(b.quizzes))
	sort.Strings(ids)
	return ids
}

// Validate checks every quiz is well formed and that every given article
// has one.
func (b *Bank) Validate(articleIDs []string) error {
	for _, id := range articleIDs {
		if _, ok := b.quizzes[id]; !ok {
			return fmt.Errorf("%w: %q", ErrNoQuiz, id)
		}
	}
	for id, q := range b.quizzes {
		c := q.Comprehension
		if len(c.Options) < 2 {
			return fmt.Errorf("quiz %q: comprehension needs at least 2 options", id)
		}
		if c.Correct < 0 || c.Correct >= len(c.Options) {
			return fmt.Errorf("quiz %q: correct index %d out of range", id, c.Correct)
		}
		if len(q.Personalization) == 0 {
			return fmt.Errorf("quiz %q: no personalization questions", id)
		}
		seen := make(map[string]bool, len(q.Personalization))
		for _, p := range q.Personalization {
			if p.Key == "" || seen[p.Key] {
				return fmt.Errorf("quiz %q: empty or duplicate personalization key %q", id, p.Key)
			}
			seen[p.Key] = true
			if len(p.Options) == 0 {
				return fmt.Errorf("quiz %q: question %q has no options", id, p.Key)
			}
		}
	}
	return nil
}
