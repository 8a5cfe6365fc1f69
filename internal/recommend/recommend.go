// Package recommend turns a learner's personalization answers into an
// ordered list of recommendations using a fixed rule table.
package recommend

import "slices"

// Kind classifies a recommendation.
type Kind string

const (
	KindIssue       Kind = "issue"
	KindImprovement Kind = "improvement"
)

// Icon returns the display icon for the kind.
func (k Kind) Icon() string {
	if k == KindIssue {
		return "⚠"
	}
	return "✔"
}

// Recommendation is one piece of advice.
type Recommendation struct {
	Kind        Kind   `yaml:"kind"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Rule emits its recommendation when the answer for Key is one of Matches.
type Rule struct {
	Key            string   `yaml:"key"`
	Matches        []string `yaml:"matches"`
	Recommendation `yaml:",inline"`
}

// Match reports whether the rule fires for the given answers.
func (r Rule) Match(data map[string]string) bool {
	v, ok := data[r.Key]
	return ok && slices.Contains(r.Matches, v)
}

// Engine evaluates a rule table.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine over rules, evaluated in the given order.
func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: slices.Clone(rules)}
}

// Default returns an engine over the built-in rules.
func Default() *Engine {
	return NewEngine(DefaultRules())
}

// Rules returns the engine's rule table.
func (e *Engine) Rules() []Rule {
	return slices.Clone(e.rules)
}

// Recommend returns one recommendation per matching rule in declaration
// order. Rules are independent; nothing is deduplicated.
func (e *Engine) Recommend(data map[string]string) []Recommendation {
	var out []Recommendation
	for _, r := range e.rules {
		if r.Match(data) {
			out = append(out, r.Recommendation)
		}
	}
	return out
}
