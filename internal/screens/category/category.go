package category

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/catalog"
	"github.com/abhisek/ascend/internal/nav"
	"github.com/abhisek/ascend/internal/router"
	"github.com/abhisek/ascend/internal/screen"
	"github.com/abhisek/ascend/internal/ui/layout"
	"github.com/abhisek/ascend/internal/ui/theme"
)

// CompletionLoader returns the set of completed article IDs.
type CompletionLoader interface {
	Completed(ctx context.Context, userID string) (map[string]bool, error)
}

type completedLoadedMsg struct {
	Completed map[string]bool
	Err       error
}

// CategoryScreen lists a category's articles with their lock state.
type CategoryScreen struct {
	loader       CompletionLoader
	userID       string
	category     catalog.Category
	rows         []catalog.ArticleStatus
	cursor       int
	scrollOffset int
	notice       string
	errMsg       string
}

var _ screen.Screen = (*CategoryScreen)(nil)
var _ screen.KeyHintProvider = (*CategoryScreen)(nil)

// New creates a CategoryScreen for a known category.
func New(loader CompletionLoader, userID string, cat catalog.Category) *CategoryScreen {
	return &CategoryScreen{
		loader:   loader,
		userID:   userID,
		category: cat,
		rows:     catalog.StatesFor(cat.ID, nil),
	}
}

func (s *CategoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		done, err := s.loader.Completed(context.Background(), s.userID)
		return completedLoadedMsg{Completed: done, Err: err}
	}
}

func (s *CategoryScreen) Title() string {
	return s.category.Title
}

func (s *CategoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Read"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CategoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case completedLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.rows = catalog.StatesFor(s.category.ID, msg.Completed)
		return s, nil

	case tea.KeyMsg:
		s.notice = ""
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.rows)-1 {
				s.cursor++
			}
		case "enter":
			return s, s.open()
		}
	}
	return s, nil
}

func (s *CategoryScreen) open() tea.Cmd {
	if s.cursor >= len(s.rows) {
		return nil
	}
	row := s.rows[s.cursor]
	if row.State == catalog.StateLocked {
		s.notice = "Complete the previous article to unlock this one."
		return nil
	}
	return router.Navigate(nav.Event{Kind: nav.OpenArticle, ArticleID: row.Article.ID})
}

func (s *CategoryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Heading.Render(s.category.Icon+" "+s.category.Title) + "\n")
	b.WriteString(theme.Hint.Render(s.category.Description) + "\n")
	done := 0
	for _, r := range s.rows {
		if r.State == catalog.StateCompleted {
			done++
		}
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d completed", done, len(s.rows))) + "\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg) + "\n\n")
	}

	// Each article takes two lines plus a spacer.
	visible := max(1, (height-6)/3)
	s.adjustScroll(visible)
	end := min(len(s.rows), s.scrollOffset+visible)
	for i := s.scrollOffset; i < end; i++ {
		b.WriteString(s.renderRow(s.rows[i], i == s.cursor, width))
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *CategoryScreen) renderRow(r catalog.ArticleStatus, selected bool, width int) string {
	prefix := "  "
	titleStyle := theme.Unselected
	switch {
	case r.State == catalog.StateLocked:
		titleStyle = theme.Locked
	case selected:
		titleStyle = theme.Selected
	}
	if selected {
		prefix = "▸ "
	}

	title := titleStyle.Render(fmt.Sprintf("%s%s  %s", prefix, r.State.Icon(), r.Article.Title))
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · %s · %s", r.Article.Level.Label(), r.Article.Duration, r.State.Label()))
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(max(20, width-12)).
		Render(r.Article.Description)

	return title + "   " + meta + "\n      " + desc + "\n"
}

// adjustScroll keeps the cursor inside the visible window.
func (s *CategoryScreen) adjustScroll(visible int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+visible {
		s.scrollOffset = s.cursor - visible + 1
	}
}
