package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/auth"
	"github.com/abhisek/ascend/internal/catalog"
	"github.com/abhisek/ascend/internal/community"
	"github.com/abhisek/ascend/internal/journey"
	"github.com/abhisek/ascend/internal/logger"
	"github.com/abhisek/ascend/internal/nav"
	"github.com/abhisek/ascend/internal/quiz"
	"github.com/abhisek/ascend/internal/router"
	"github.com/abhisek/ascend/internal/screen"
	"github.com/abhisek/ascend/internal/screens/article"
	"github.com/abhisek/ascend/internal/screens/badges"
	"github.com/abhisek/ascend/internal/screens/category"
	communityscreen "github.com/abhisek/ascend/internal/screens/community"
	"github.com/abhisek/ascend/internal/screens/home"
	"github.com/abhisek/ascend/internal/screens/plan"
	quizscreen "github.com/abhisek/ascend/internal/screens/quiz"
	"github.com/abhisek/ascend/internal/screens/welcome"
	"github.com/abhisek/ascend/internal/ui/layout"
)

// Options carries the services the TUI drives.
type Options struct {
	Auth      *auth.Service
	Journey   *journey.Service
	Community *community.Service
	Bank      *quiz.Bank
	Logger    *logger.Logger
}

type sessionMsg struct {
	Event auth.Event
}

type statsLoadedMsg struct {
	Stats layout.Stats
}

type signOutFailedMsg struct {
	Err error
}

// AppModel is the root Bubble Tea model. While nobody is signed in it shows
// the welcome gate; afterwards a router rooted at the categories view.
type AppModel struct {
	opts   Options
	events chan auth.Event

	gate   *welcome.WelcomeScreen
	router *router.Router
	user   *auth.User
	stats  layout.Stats
	status string

	width  int
	height int
}

// newAppModel creates an AppModel and subscribes it to session events. The
// returned func unsubscribes.
func newAppModel(opts Options) (AppModel, func()) {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Bank == nil {
		opts.Bank = quiz.DefaultBank()
	}
	m := AppModel{
		opts:   opts,
		events: make(chan auth.Event, 4),
	}
	// Listeners run synchronously inside auth calls, which happen in
	// command goroutines; the channel hands events to the update loop.
	unsubscribe := opts.Auth.Session().Subscribe(func(ev auth.Event) {
		m.events <- ev
	})

	if u := opts.Auth.Session().CurrentUser(); u != nil {
		m.enter(u)
	} else {
		m.gate = welcome.New(opts.Auth)
	}
	return m, unsubscribe
}

func (m *AppModel) enter(u *auth.User) {
	m.user = u
	m.gate = nil
	m.stats = layout.Stats{SignedIn: true, Level: 1}
	m.router = router.New(nav.Categories(), home.New(m.opts.Journey, u.ID), m.screenFor)
}

func (m *AppModel) leave() {
	m.user = nil
	m.router = nil
	m.stats = layout.Stats{}
	m.gate = welcome.New(m.opts.Auth)
}

// screenFor builds the screen for a navigation view.
func (m *AppModel) screenFor(v nav.View) (screen.Screen, error) {
	uid := m.user.ID
	switch v.Kind {
	case nav.KindCategories:
		return home.New(m.opts.Journey, uid), nil
	case nav.KindCategory:
		cat, err := catalog.GetCategory(v.CategoryID)
		if err != nil {
			return nil, err
		}
		return category.New(m.opts.Journey, uid, cat), nil
	case nav.KindArticle:
		a, err := catalog.GetArticle(v.ArticleID)
		if err != nil {
			return nil, err
		}
		return article.New(a), nil
	case nav.KindQuiz:
		a, err := catalog.GetArticle(v.ArticleID)
		if err != nil {
			return nil, err
		}
		return quizscreen.New(m.opts.Journey, m.opts.Bank, uid, a)
	case nav.KindPlan:
		return plan.New(m.opts.Journey, uid), nil
	case nav.KindCommunity:
		return communityscreen.New(m.opts.Community, uid), nil
	case nav.KindBadges:
		return badges.New(m.opts.Journey, uid), nil
	}
	return nil, fmt.Errorf("no screen for %s", v)
}

func (m AppModel) waitForSession() tea.Cmd {
	ch := m.events
	return func() tea.Msg {
		return sessionMsg{Event: <-ch}
	}
}

func (m AppModel) refreshStats() tea.Cmd {
	if m.user == nil {
		return nil
	}
	uid := m.user.ID
	return func() tea.Msg {
		p, err := m.opts.Journey.Profile(context.Background(), uid)
		if err != nil {
			m.opts.Logger.Warn("load header stats", "user", uid, "error", err)
			return nil
		}
		return statsLoadedMsg{Stats: layout.Stats{
			SignedIn: true,
			Level:    p.Level,
			XP:       p.XP,
			Streak:   p.StreakDays,
		}}
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForSession()}
	if m.router != nil {
		cmds = append(cmds, m.router.Active().Init(), m.refreshStats())
	} else {
		cmds = append(cmds, m.gate.Init())
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionMsg:
		switch msg.Event.Kind {
		case auth.SignedIn:
			m.enter(msg.Event.User)
			m.opts.Logger.Info("tui session started", "user", m.user.ID)
			return m, tea.Batch(m.waitForSession(), m.router.Active().Init(), m.refreshStats())
		case auth.SignedOut:
			m.leave()
			return m, tea.Batch(m.waitForSession(), m.gate.Init())
		}
		return m, m.waitForSession()

	case statsLoadedMsg:
		m.stats = msg.Stats
		return m, nil

	case screen.StatsChangedMsg:
		return m, m.refreshStats()

	case screen.SignOutMsg:
		return m, func() tea.Msg {
			if err := m.opts.Auth.SignOut(context.Background()); err != nil {
				return signOutFailedMsg{Err: err}
			}
			return nil
		}

	case signOutFailedMsg:
		m.opts.Logger.Error("sign out", "error", msg.Err)
		m.status = "Sign out failed: " + msg.Err.Error()
		return m, nil

	case router.NavErrorMsg:
		m.opts.Logger.Warn("navigation rejected", "error", msg.Err)
		m.status = msg.Err.Error()
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router != nil && !m.activeHandlesBack() {
				if m.router.Depth() > 1 {
					return m, router.Navigate(nav.Event{Kind: nav.Back})
				}
				return m, nil
			}
		}
	}

	if m.router == nil {
		_, cmd := m.gate.Update(msg)
		return m, cmd
	}
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) activeHandlesBack() bool {
	bh, ok := m.router.Active().(screen.BackHandler)
	return ok && bh.HandlesBack()
}

func (m AppModel) active() screen.Screen {
	if m.router != nil {
		return m.router.Active()
	}
	return m.gate
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.active()
	header := layout.RenderHeader(active.Title(), m.stats, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router != nil && m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.status, m.width)

	contentHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))

	var content string
	if m.router != nil {
		content = m.router.View(m.width, contentHeight)
	} else {
		content = m.gate.View(m.width, contentHeight)
	}
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, unsubscribe := newAppModel(opts)
	defer unsubscribe()

	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
