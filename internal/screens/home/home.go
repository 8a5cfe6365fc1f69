package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/gamify"
	"github.com/abhisek/ascend/internal/journey"
	"github.com/abhisek/ascend/internal/nav"
	"github.com/abhisek/ascend/internal/router"
	"github.com/abhisek/ascend/internal/screen"
	"github.com/abhisek/ascend/internal/ui/components"
	"github.com/abhisek/ascend/internal/ui/layout"
	"github.com/abhisek/ascend/internal/ui/theme"
)

// DashboardLoader loads the learner overview.
type DashboardLoader interface {
	Dashboard(ctx context.Context, userID string) (*journey.Dashboard, error)
}

type dashboardLoadedMsg struct {
	Dashboard *journey.Dashboard
	Err       error
}

// HomeScreen is the categories overview: level bar, category progress and
// the main menu.
type HomeScreen struct {
	loader DashboardLoader
	userID string
	dash   *journey.Dashboard
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(loader DashboardLoader, userID string) *HomeScreen {
	h := &HomeScreen{loader: loader, userID: userID}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

// Init reloads the dashboard; it also runs each time the screen is revealed.
func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		d, err := h.loader.Dashboard(context.Background(), h.userID)
		return dashboardLoadedMsg{Dashboard: d, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.dash = msg.Dashboard
		h.menu.SetItems(h.menuItems())
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	var items []components.MenuItem
	if h.dash != nil {
		for _, p := range h.dash.Progress {
			id := p.Category.ID
			items = append(items, components.MenuItem{
				Icon:   p.Category.Icon,
				Label:  p.Category.Title,
				Detail: fmt.Sprintf("%d/%d mastered", p.Completed, p.Total),
				Action: func() tea.Cmd {
					return router.Navigate(nav.Event{Kind: nav.OpenCategory, CategoryID: id})
				},
			})
		}
	}
	items = append(items,
		components.MenuItem{Icon: "🎯", Label: "Your Plan", Action: func() tea.Cmd {
			return router.Navigate(nav.Event{Kind: nav.OpenPlan})
		}},
		components.MenuItem{Icon: "💬", Label: "Community", Action: func() tea.Cmd {
			return router.Navigate(nav.Event{Kind: nav.OpenCommunity})
		}},
		components.MenuItem{Icon: "🏆", Label: "Badges", Action: func() tea.Cmd {
			return router.Navigate(nav.Event{Kind: nav.OpenBadges})
		}},
		components.MenuItem{Icon: "↩", Label: "Sign out", Action: func() tea.Cmd {
			return func() tea.Msg { return screen.SignOutMsg{} }
		}},
		components.MenuItem{Icon: "✕", Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	return items
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(width-4, 72)
	var sections []string

	if h.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).
			Render("Could not load your progress: "+h.errMsg))
	}

	if h.dash != nil {
		p := h.dash.Profile
		sections = append(sections, theme.Heading.Render(fmt.Sprintf("Welcome back, %s", p.Username)))

		into, needed := gamify.LevelProgress(p.XP)
		bar := components.ProgressBar{
			Label:   fmt.Sprintf("Level %d", p.Level),
			Percent: float64(into) / float64(gamify.XPPerLevel),
			Caption: fmt.Sprintf("%d XP to level %d", needed, p.Level+1),
			Width:   cw,
		}
		sections = append(sections, bar.View())

		var bars []string
		for _, cp := range h.dash.Progress {
			bars = append(bars, components.NewCountBar(
				fmt.Sprintf("%-18s", cp.Category.Title), cp.Completed, cp.Total, cw).View())
		}
		sections = append(sections, strings.Join(bars, "\n"))
	} else if h.errMsg == "" {
		sections = append(sections, theme.Hint.Render("Loading..."))
	}

	sections = append(sections, h.menu.View())

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
