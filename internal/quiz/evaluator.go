package quiz

import (
	"fmt"
	"maps"
)

// Step is the evaluator's position in the quiz flow.
type Step int

const (
	StepComprehension Step = iota
	StepPersonalization
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepComprehension:
		return "comprehension"
	case StepPersonalization:
		return "personalization"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Evaluator drives a single quiz attempt. Steps only move forward; a fresh
// evaluator is created for every attempt.
type Evaluator struct {
	quiz     Quiz
	step     Step
	attempts int
	answers  map[string]string
}

// NewEvaluator creates an evaluator for the article's quiz.
func NewEvaluator(b *Bank, articleID string) (*Evaluator, error) {
	q, err := b.Lookup(articleID)
	if err != nil {
		return nil, err
	}
	return &Evaluator{
		quiz:    q,
		step:    StepComprehension,
		answers: make(map[string]string, len(q.Personalization)),
	}, nil
}

// Quiz returns the quiz being evaluated.
func (e *Evaluator) Quiz() Quiz { return e.quiz }

// Step returns the current step.
func (e *Evaluator) Step() Step { return e.step }

// Attempts returns the number of comprehension submissions so far.
func (e *Evaluator) Attempts() int { return e.attempts }

// SubmitComprehension checks a choice against the answer key. A correct
// choice advances to personalization; a wrong one leaves the step as is.
func (e *Evaluator) SubmitComprehension(choice int) (bool, error) {
	if e.step != StepComprehension {
		return false, fmt.Errorf("submit comprehension in %s step: %w", e.step, ErrWrongStep)
	}
	c := e.quiz.Comprehension
	if choice < 0 || choice >= len(c.Options) {
		return false, fmt.Errorf("choice %d of %d: %w", choice, len(c.Options), ErrInvalidOption)
	}
	e.attempts++
	if choice != c.Correct {
		return false, nil
	}
	e.step = StepPersonalization
	return true, nil
}

// Answer records the chosen option for a personalization question.
// Answering the same key again replaces the earlier choice.
func (e *Evaluator) Answer(key, option string) error {
	if e.step != StepPersonalization {
		return fmt.Errorf("answer in %s step: %w", e.step, ErrWrongStep)
	}
	p, ok := e.quiz.Question(key)
	if !ok {
		return fmt.Errorf("unknown question %q: %w", key, ErrInvalidOption)
	}
	if !p.HasOption(option) {
		return fmt.Errorf("option %q for %q: %w", option, key, ErrInvalidOption)
	}
	e.answers[key] = option
	return nil
}

// Missing returns the keys of unanswered personalization questions in
// declared order.
func (e *Evaluator) Missing() []string {
	var out []string
	for _, p := range e.quiz.Personalization {
		if _, ok := e.answers[p.Key]; !ok {
			out = append(out, p.Key)
		}
	}
	return out
}

// Ready reports whether Complete would succeed.
func (e *Evaluator) Ready() bool {
	return e.step == StepPersonalization && len(e.Missing()) == 0
}

// Complete finishes the quiz and returns its result. While answers are
// missing it returns ErrIncomplete and nothing changes.
func (e *Evaluator) Complete() (Result, error) {
	if e.step != StepPersonalization {
		return Result{}, fmt.Errorf("complete in %s step: %w", e.step, ErrWrongStep)
	}
	if missing := e.Missing(); len(missing) > 0 {
		return Result{}, fmt.Errorf("%w: missing %v", ErrIncomplete, missing)
	}
	e.step = StepComplete
	return Result{
		ArticleID: e.quiz.ArticleID,
		Answers:   maps.Clone(e.answers),
		Score:     Score(e.attempts),
	}, nil
}

// Score converts the number of comprehension attempts into a percentage.
// A first-try pass scores 100.
func Score(attempts int) int {
	if attempts <= 1 {
		return 100
	}
	return 100 / attempts
}
