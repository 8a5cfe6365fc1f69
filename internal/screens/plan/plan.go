package plan

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/journey"
	"github.com/abhisek/ascend/internal/recommend"
	"github.com/abhisek/ascend/internal/screen"
	"github.com/abhisek/ascend/internal/ui/components"
	"github.com/abhisek/ascend/internal/ui/layout"
	"github.com/abhisek/ascend/internal/ui/theme"
)

// DashboardLoader loads the learner overview, which carries the plan.
type DashboardLoader interface {
	Dashboard(ctx context.Context, userID string) (*journey.Dashboard, error)
}

type planLoadedMsg struct {
	Dashboard *journey.Dashboard
	Err       error
}

// PlanScreen shows category progress, recommendations and the answers
// they were derived from.
type PlanScreen struct {
	loader DashboardLoader
	userID string
	dash   *journey.Dashboard
	vp     viewport.Model
	errMsg string
}

var _ screen.Screen = (*PlanScreen)(nil)
var _ screen.KeyHintProvider = (*PlanScreen)(nil)

// New creates a new PlanScreen.
func New(loader DashboardLoader, userID string) *PlanScreen {
	return &PlanScreen{loader: loader, userID: userID, vp: viewport.New()}
}

func (s *PlanScreen) Init() tea.Cmd {
	return func() tea.Msg {
		d, err := s.loader.Dashboard(context.Background(), s.userID)
		return planLoadedMsg{Dashboard: d, Err: err}
	}
}

func (s *PlanScreen) Title() string {
	return "Your Plan"
}

func (s *PlanScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(planLoadedMsg); ok {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.dash = msg.Dashboard
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *PlanScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if s.dash == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Building your plan...")
	}

	cw := min(width-4, 80)
	s.vp.SetWidth(cw)
	s.vp.SetHeight(max(1, height-1))
	s.vp.SetContent(Render(s.dash, cw))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.vp.View())
}

// Render lays out the plan for a dashboard at the given width.
func Render(d *journey.Dashboard, width int) string {
	var b strings.Builder
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	b.WriteString(theme.Heading.Render("Progress") + "\n\n")
	for _, p := range d.Progress {
		b.WriteString(components.NewCountBar(
			fmt.Sprintf("%s %-18s", p.Category.Icon, p.Category.Title), p.Completed, p.Total, width).View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	plan := d.Plan
	b.WriteString(theme.Heading.Render(plan.Status.Headline()) + "\n\n")
	if msg := plan.Status.Message(); msg != "" {
		b.WriteString(dim.Width(width).Render(msg) + "\n\n")
	}
	for _, r := range plan.Recommendations {
		b.WriteString(renderRecommendation(r, width) + "\n\n")
	}

	if len(plan.Answers) > 0 {
		b.WriteString(theme.Heading.Render("Your Profile") + "\n\n")
		for _, a := range plan.Answers {
			b.WriteString(dim.Render(fmt.Sprintf("  %-22s", a.Label)) +
				lipgloss.NewStyle().Foreground(theme.Text).Render(a.Value) + "\n")
		}
	}
	return b.String()
}

func renderRecommendation(r recommend.Recommendation, width int) string {
	style := theme.Correct
	if r.Kind == recommend.KindIssue {
		style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}
	title := style.Render(r.Kind.Icon() + " " + r.Title)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(width - 4).PaddingLeft(2).Render(r.Description)
	return title + "\n" + desc
}
