package recommend

import (
	"maps"
	"slices"
	"strings"
)

// Status summarizes the plan when there are no recommendations to show.
type Status int

const (
	StatusRecommendations Status = iota // at least one recommendation
	StatusNoData                        // nothing completed yet
	StatusOnTrack                       // completed articles, nothing flagged
)

// Headline returns the status heading shown on the plan.
func (s Status) Headline() string {
	switch s {
	case StatusNoData:
		return "No Data Yet"
	case StatusOnTrack:
		return "You're On Track!"
	default:
		return "Your Recommendations"
	}
}

// Message returns the status body text.
func (s Status) Message() string {
	switch s {
	case StatusNoData:
		return "Complete articles and quizzes to build your personalized improvement plan. Each quiz helps us understand your unique situation."
	case StatusOnTrack:
		return "Based on your responses, you're doing well. Keep completing articles to refine your personalized recommendations."
	default:
		return ""
	}
}

// Answer is one personalization answer for display.
type Answer struct {
	Key   string
	Label string // key with underscores as spaces
	Value string
}

// Plan is the personalized plan view model.
type Plan struct {
	Status          Status
	Recommendations []Recommendation
	Answers         []Answer // sorted by key
}

// BuildPlan assembles a plan from the learner's folded answers and how many
// articles they have completed.
func (e *Engine) BuildPlan(data map[string]string, completedCount int) Plan {
	p := Plan{Recommendations: e.Recommend(data)}
	switch {
	case len(p.Recommendations) > 0:
		p.Status = StatusRecommendations
	case completedCount == 0:
		p.Status = StatusNoData
	default:
		p.Status = StatusOnTrack
	}
	for _, k := range slices.Sorted(maps.Keys(data)) {
		p.Answers = append(p.Answers, Answer{
			Key:   k,
			Label: strings.ReplaceAll(k, "_", " "),
			Value: data[k],
		})
	}
	return p
}
