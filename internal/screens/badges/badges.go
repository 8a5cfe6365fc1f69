package badges

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/gamify"
	"github.com/abhisek/ascend/internal/journey"
	"github.com/abhisek/ascend/internal/screen"
	"github.com/abhisek/ascend/internal/ui/layout"
	"github.com/abhisek/ascend/internal/ui/theme"
)

// DashboardLoader loads the learner overview, which carries earned badges.
type DashboardLoader interface {
	Dashboard(ctx context.Context, userID string) (*journey.Dashboard, error)
}

type badgesLoadedMsg struct {
	Earned map[gamify.BadgeType]time.Time
	Err    error
}

// BadgesScreen shows every badge, earned ones first in display order.
type BadgesScreen struct {
	loader       DashboardLoader
	userID       string
	earned       map[gamify.BadgeType]time.Time
	earnedOnly   bool
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*BadgesScreen)(nil)
var _ screen.KeyHintProvider = (*BadgesScreen)(nil)

// New creates a new BadgesScreen.
func New(loader DashboardLoader, userID string) *BadgesScreen {
	return &BadgesScreen{loader: loader, userID: userID}
}

func (s *BadgesScreen) Init() tea.Cmd {
	return func() tea.Msg {
		d, err := s.loader.Dashboard(context.Background(), s.userID)
		if err != nil {
			return badgesLoadedMsg{Err: err}
		}
		earned := make(map[gamify.BadgeType]time.Time, len(d.Badges))
		for _, b := range d.Badges {
			earned[gamify.BadgeType(b.Type)] = b.EarnedAt
		}
		return badgesLoadedMsg{Earned: earned}
	}
}

func (s *BadgesScreen) Title() string {
	return "Badges"
}

func (s *BadgesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Earned/All"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case badgesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.earned = msg.Earned
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			s.earnedOnly = !s.earnedOnly
			s.scrollOffset = 0
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.visible())-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *BadgesScreen) visible() []gamify.BadgeType {
	var out []gamify.BadgeType
	for _, t := range gamify.AllBadgeTypes() {
		if _, ok := s.earned[t]; ok || !s.earnedOnly {
			out = append(out, t)
		}
	}
	return out
}

func (s *BadgesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading badges...")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nEarned %d of %d badges\n", len(s.earned), len(gamify.AllBadgeTypes()))))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 64)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	list := s.visible()
	if len(list) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No badges yet. Complete an article to earn your first."))
		return b.String()
	}

	maxVisible := max(2, (height-8)/2)
	end := min(len(list), s.scrollOffset+maxVisible)
	for _, t := range list[s.scrollOffset:end] {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderBadge(t)))
		b.WriteString("\n")
	}
	if end < len(list) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(list)-end)))
	}
	return b.String()
}

func (s *BadgesScreen) renderBadge(t gamify.BadgeType) string {
	at, ok := s.earned[t]
	name := fmt.Sprintf("%s %-22s", t.Icon(), t.DisplayName())
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-44s", t.Description()))
	if !ok {
		return theme.BadgeLocked.Render(name) + " " + desc + theme.BadgeLocked.Render("  locked")
	}
	return theme.Badge.Render(name) + " " + desc + "  " +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(at.Local().Format("Jan 02, 2006"))
}
