package article

import (
	"fmt"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/catalog"
	"github.com/abhisek/ascend/internal/nav"
	"github.com/abhisek/ascend/internal/router"
	"github.com/abhisek/ascend/internal/screen"
	"github.com/abhisek/ascend/internal/ui/layout"
	"github.com/abhisek/ascend/internal/ui/markup"
	"github.com/abhisek/ascend/internal/ui/theme"
)

// ArticleScreen renders an article body in a scrollable viewport.
type ArticleScreen struct {
	article  catalog.Article
	vp       viewport.Model
	renderAt int // width the content was last rendered at
}

var _ screen.Screen = (*ArticleScreen)(nil)
var _ screen.KeyHintProvider = (*ArticleScreen)(nil)

// New creates an ArticleScreen.
func New(a catalog.Article) *ArticleScreen {
	return &ArticleScreen{
		article: a,
		vp:      viewport.New(),
	}
}

func (s *ArticleScreen) Init() tea.Cmd {
	s.vp.GotoTop()
	return nil
}

func (s *ArticleScreen) Title() string {
	return s.article.Title
}

func (s *ArticleScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "q", Description: "Take quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ArticleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q", "enter":
			return s, router.Navigate(nav.Event{Kind: nav.StartQuiz})
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ArticleScreen) View(width, height int) string {
	cw := min(width-4, 88)
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s read · %s", s.article.Duration, s.article.Level.Label()))

	if s.renderAt != cw {
		s.vp.SetContent(markup.Render(s.article.Content, cw))
		s.renderAt = cw
	}
	s.vp.SetWidth(cw)
	s.vp.SetHeight(max(1, height-4))

	scroll := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%3.0f%%", s.vp.ScrollPercent()*100))

	body := meta + "\n\n" + s.vp.View() + "\n" + scroll
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}
