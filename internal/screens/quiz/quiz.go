package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/catalog"
	"github.com/abhisek/ascend/internal/journey"
	"github.com/abhisek/ascend/internal/nav"
	quizpkg "github.com/abhisek/ascend/internal/quiz"
	"github.com/abhisek/ascend/internal/router"
	"github.com/abhisek/ascend/internal/screen"
	"github.com/abhisek/ascend/internal/ui/components"
	"github.com/abhisek/ascend/internal/ui/layout"
	"github.com/abhisek/ascend/internal/ui/theme"
)

// advanceDelay is how long the "correct" feedback stays up before the
// personalization step.
const advanceDelay = 1500 * time.Millisecond

// Completer persists a finished quiz.
type Completer interface {
	CompleteArticle(ctx context.Context, userID string, res quizpkg.Result) (*journey.Outcome, error)
}

type phase int

const (
	phaseComprehension phase = iota
	phaseWrong
	phaseCorrect
	phasePersonalization
	phaseSaving
	phaseSaveFailed
	phaseSummary
)

type advanceMsg struct{}

type savedMsg struct {
	Outcome *journey.Outcome
	Err     error
}

// QuizScreen walks through the comprehension check, the personalization
// questions and the completion summary.
type QuizScreen struct {
	completer Completer
	userID    string
	article   catalog.Article
	eval      *quizpkg.Evaluator

	phase  phase
	check  components.MultiChoice
	prefs  []components.MultiChoice
	pq     int
	result quizpkg.Result

	outcome *journey.Outcome
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.BackHandler = (*QuizScreen)(nil)

// New creates a QuizScreen for the article. It fails when the article has
// no quiz.
func New(completer Completer, bank *quizpkg.Bank, userID string, a catalog.Article) (*QuizScreen, error) {
	eval, err := quizpkg.NewEvaluator(bank, a.ID)
	if err != nil {
		return nil, err
	}
	q := eval.Quiz()

	s := &QuizScreen{
		completer: completer,
		userID:    userID,
		article:   a,
		eval:      eval,
		check:     components.NewMultiChoice(q.Comprehension.Question, q.Comprehension.Options, q.Comprehension.Correct),
	}
	for _, p := range q.Personalization {
		s.prefs = append(s.prefs, components.NewMultiChoice(p.Question, p.Options, components.NoCorrect))
	}
	return s, nil
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz: " + s.article.Title
}

// HandlesBack keeps Esc on the summary from returning to a finished quiz's
// article.
func (s *QuizScreen) HandlesBack() bool {
	return s.phase == phaseSummary || s.phase == phaseSaving
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseWrong:
		return []layout.KeyHint{
			{Key: "r", Description: "Re-read article"},
			{Key: "Enter", Description: "Try again"},
			{Key: "Esc", Description: "Back"},
		}
	case phasePersonalization:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "←", Description: "Previous"},
		}
	case phaseSaveFailed:
		return []layout.KeyHint{{Key: "Enter", Description: "Retry"}, {Key: "Esc", Description: "Back"}}
	case phaseSummary:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Check answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if s.phase == phaseCorrect {
			s.phase = phasePersonalization
		}
		return s, nil

	case savedMsg:
		if msg.Err != nil {
			s.phase = phaseSaveFailed
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.outcome = msg.Outcome
		s.phase = phaseSummary
		return s, func() tea.Msg { return screen.StatsChangedMsg{} }

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch s.phase {
	case phaseComprehension:
		var cmd tea.Cmd
		s.check, cmd = s.check.Update(msg)
		if !s.check.Submitted {
			return cmd
		}
		correct, err := s.eval.SubmitComprehension(s.check.ChosenIndex)
		if err != nil {
			s.errMsg = err.Error()
			s.check.Retry()
			return nil
		}
		if !correct {
			s.phase = phaseWrong
			return nil
		}
		s.phase = phaseCorrect
		return tea.Tick(advanceDelay, func(time.Time) tea.Msg { return advanceMsg{} })

	case phaseWrong:
		switch msg.String() {
		case "r":
			return router.Navigate(nav.Event{Kind: nav.Reread})
		case "enter":
			s.check.Retry()
			s.phase = phaseComprehension
		}
		return nil

	case phaseCorrect:
		if msg.String() == "enter" {
			s.phase = phasePersonalization
		}
		return nil

	case phasePersonalization:
		return s.handlePersonalization(msg)

	case phaseSaveFailed:
		if msg.String() == "enter" {
			return s.save()
		}

	case phaseSummary:
		if k := msg.String(); k == "enter" || k == "esc" {
			return router.Navigate(nav.Event{Kind: nav.QuizComplete})
		}
	}
	return nil
}

func (s *QuizScreen) handlePersonalization(msg tea.KeyMsg) tea.Cmd {
	if len(s.prefs) == 0 {
		return s.finish()
	}
	if msg.String() == "left" && s.pq > 0 {
		s.pq--
		s.prefs[s.pq].Retry()
		return nil
	}

	cur := &s.prefs[s.pq]
	*cur, _ = cur.Update(msg)
	if !cur.Submitted {
		return nil
	}

	key := s.eval.Quiz().Personalization[s.pq].Key
	option, _ := cur.Choice()
	if err := s.eval.Answer(key, option); err != nil {
		s.errMsg = err.Error()
		cur.Retry()
		return nil
	}
	if s.pq < len(s.prefs)-1 {
		s.pq++
		s.prefs[s.pq].Retry()
		return nil
	}
	return s.finish()
}

func (s *QuizScreen) finish() tea.Cmd {
	res, err := s.eval.Complete()
	if err != nil {
		// Answers stay editable; step back to the first gap.
		s.errMsg = err.Error()
		if missing := s.eval.Missing(); len(missing) > 0 {
			for i, p := range s.eval.Quiz().Personalization {
				if p.Key == missing[0] {
					s.pq = i
					s.prefs[i].Retry()
				}
			}
		}
		return nil
	}
	s.result = res
	return s.save()
}

func (s *QuizScreen) save() tea.Cmd {
	s.phase = phaseSaving
	s.errMsg = ""
	res := s.result
	return func() tea.Msg {
		out, err := s.completer.CompleteArticle(context.Background(), s.userID, res)
		return savedMsg{Outcome: out, Err: err}
	}
}

func (s *QuizScreen) View(width, height int) string {
	cw := min(width-4, 76)
	var b strings.Builder

	b.WriteString(renderSteps(s.phase) + "\n\n")

	switch s.phase {
	case phaseComprehension, phaseWrong, phaseCorrect:
		b.WriteString(theme.Subheading.Render("Comprehension Check") + "\n\n")
		b.WriteString(s.check.View() + "\n")
		switch s.phase {
		case phaseWrong:
			b.WriteString(theme.Incorrect.Render("✗ Not quite. Try reading the article again."))
		case phaseCorrect:
			b.WriteString(theme.Correct.Render("✓ Correct! Moving to personalization..."))
		}

	case phasePersonalization:
		b.WriteString(theme.Subheading.Render("Personalize Your Plan") + "\n")
		b.WriteString(theme.Hint.Render("Your answers shape your improvement recommendations.") + "\n\n")
		if len(s.prefs) > 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("Question %d of %d", s.pq+1, len(s.prefs))) + "\n\n")
			b.WriteString(s.prefs[s.pq].View())
		}

	case phaseSaving:
		b.WriteString(theme.Hint.Render("Saving your progress..."))

	case phaseSaveFailed:
		b.WriteString(theme.Incorrect.Render("Your progress was not saved.") + "\n")
		b.WriteString(theme.Hint.Render("Press enter to try again."))

	case phaseSummary:
		b.WriteString(renderSummary(s.outcome, s.result, cw))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}

	content := lipgloss.NewStyle().Width(cw).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, lipgloss.NewStyle().PaddingTop(1).Render(content))
}

func renderSteps(p phase) string {
	labels := []string{"1 Check", "2 Personalize", "3 Done"}
	active := 0
	switch p {
	case phasePersonalization, phaseSaving, phaseSaveFailed:
		active = 1
	case phaseSummary:
		active = 2
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		switch {
		case i == active:
			parts[i] = theme.Selected.Render(l)
		case i < active:
			parts[i] = theme.Completed.Render(l)
		default:
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(l)
		}
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(theme.Border).Render("  ──  "))
}
