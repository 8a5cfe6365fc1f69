// Package quiz holds the per-article question bank and the evaluator that
// walks a learner through the comprehension check and personalization
// questions.
package quiz

import "errors"

var (
	ErrNoQuiz        = errors.New("no quiz defined for article")
	ErrWrongStep     = errors.New("operation not allowed in current step")
	ErrInvalidOption = errors.New("invalid option")
	ErrIncomplete    = errors.New("personalization answers incomplete")
)

// Comprehension is the single multiple-choice check that gates an article.
type Comprehension struct {
	Question string
	Options  []string
	Correct  int // index into Options
}

// Personalization is a fixed-choice preference question whose answer feeds
// the learner's personalized plan.
type Personalization struct {
	Key      string
	Question string
	Options  []string
}

// HasOption reports whether option is one of the question's choices.
func (p Personalization) HasOption(option string) bool {
	for _, o := range p.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Quiz is the complete question set for one article.
type Quiz struct {
	ArticleID       string
	Comprehension   Comprehension
	Personalization []Personalization
}

// Question returns the personalization question with the given key.
func (q Quiz) Question(key string) (Personalization, bool) {
	for _, p := range q.Personalization {
		if p.Key == key {
			return p, true
		}
	}
	return Personalization{}, false
}

// Result is emitted once a quiz is completed.
type Result struct {
	ArticleID string
	Answers   map[string]string
	Score     int
}
