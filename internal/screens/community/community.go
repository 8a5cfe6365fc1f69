package community

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/community"
	"github.com/abhisek/ascend/internal/screen"
	"github.com/abhisek/ascend/internal/store"
	"github.com/abhisek/ascend/internal/ui/components"
	"github.com/abhisek/ascend/internal/ui/layout"
	"github.com/abhisek/ascend/internal/ui/theme"
)

// listLimit caps how many discussions the screen loads.
const listLimit = 50

// Forum is the part of the community service the screen drives.
type Forum interface {
	ListDiscussions(ctx context.Context, limit int) ([]store.Discussion, error)
	LikedBy(ctx context.Context, userID string) (map[string]bool, error)
	Comments(ctx context.Context, discussionID string) ([]store.Comment, error)
	AddComment(ctx context.Context, userID, discussionID, content string) (*store.Comment, error)
	ToggleLike(ctx context.Context, userID, discussionID string) (bool, error)
	CreateDiscussion(ctx context.Context, userID, title, content, category string) (*community.Posted, error)
}

type mode int

const (
	modeList mode = iota
	modeThread
	modeComment
	modeCompose
)

type listLoadedMsg struct {
	Discussions []store.Discussion
	Liked       map[string]bool
	Err         error
}

type threadLoadedMsg struct {
	DiscussionID string
	Comments     []store.Comment
	Err          error
}

type likedMsg struct {
	Err error
}

type commentedMsg struct {
	Err error
}

type postedMsg struct {
	Posted *community.Posted
	Err    error
}

// CommunityScreen is the discussion board: a list, a thread view with
// replies, and composers for comments and new discussions.
type CommunityScreen struct {
	forum  Forum
	userID string

	mode        mode
	discussions []store.Discussion
	liked       map[string]bool
	cursor      int
	comments    []store.Comment

	title    components.TextInput
	body     textarea.Model
	category int // index into community.AllCategories
	focus    int // 0 title, 1 body while composing

	notice string
	errMsg string
	busy   bool
}

var _ screen.Screen = (*CommunityScreen)(nil)
var _ screen.KeyHintProvider = (*CommunityScreen)(nil)
var _ screen.BackHandler = (*CommunityScreen)(nil)

// New creates a new CommunityScreen.
func New(forum Forum, userID string) *CommunityScreen {
	body := textarea.New()
	body.ShowLineNumbers = false
	body.CharLimit = 2000
	return &CommunityScreen{
		forum:  forum,
		userID: userID,
		title:  components.NewTextInput("Title", "What's on your mind?", 120),
		body:   body,
	}
}

func (s *CommunityScreen) Init() tea.Cmd {
	return s.loadList()
}

func (s *CommunityScreen) Title() string {
	return "Community"
}

// HandlesBack lets Esc leave a thread or composer before leaving the board.
func (s *CommunityScreen) HandlesBack() bool {
	return s.mode != modeList
}

func (s *CommunityScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeThread:
		return []layout.KeyHint{
			{Key: "c", Description: "Comment"},
			{Key: "l", Description: "Like"},
			{Key: "Esc", Description: "Back"},
		}
	case modeComment:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Post"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeCompose:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+T", Description: "Category"},
			{Key: "Ctrl+S", Description: "Post"},
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "l", Description: "Like"},
			{Key: "n", Description: "New"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *CommunityScreen) loadList() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		ds, err := s.forum.ListDiscussions(ctx, listLimit)
		if err != nil {
			return listLoadedMsg{Err: err}
		}
		liked, err := s.forum.LikedBy(ctx, s.userID)
		return listLoadedMsg{Discussions: ds, Liked: liked, Err: err}
	}
}

func (s *CommunityScreen) loadThread(id string) tea.Cmd {
	return func() tea.Msg {
		cs, err := s.forum.Comments(context.Background(), id)
		return threadLoadedMsg{DiscussionID: id, Comments: cs, Err: err}
	}
}

func (s *CommunityScreen) selected() (store.Discussion, bool) {
	if s.cursor < 0 || s.cursor >= len(s.discussions) {
		return store.Discussion{}, false
	}
	return s.discussions[s.cursor], true
}

func (s *CommunityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.discussions = msg.Discussions
		s.liked = msg.Liked
		s.cursor = min(s.cursor, max(0, len(s.discussions)-1))
		return s, nil

	case threadLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		if d, ok := s.selected(); ok && d.ID == msg.DiscussionID {
			s.comments = msg.Comments
		}
		return s, nil

	case likedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.loadList()

	case commentedMsg:
		s.busy = false
		if msg.Err != nil {
			s.notice = userMessage(msg.Err)
			return s, nil
		}
		s.body.Reset()
		s.mode = modeThread
		d, _ := s.selected()
		return s, tea.Batch(s.loadList(), s.loadThread(d.ID))

	case postedMsg:
		s.busy = false
		if msg.Err != nil {
			s.notice = userMessage(msg.Err)
			return s, nil
		}
		s.title.Reset()
		s.body.Reset()
		s.mode = modeList
		s.cursor = 0
		s.notice = "Posted!"
		for _, b := range msg.Posted.Badges {
			s.notice += fmt.Sprintf("  %s %s unlocked", b.Icon(), b.DisplayName())
		}
		cmds := []tea.Cmd{s.loadList()}
		if len(msg.Posted.Badges) > 0 {
			cmds = append(cmds, func() tea.Msg { return screen.StatsChangedMsg{} })
		}
		return s, tea.Batch(cmds...)

	case tea.KeyMsg:
		s.errMsg = ""
		switch s.mode {
		case modeList:
			return s, s.updateList(msg)
		case modeThread:
			return s, s.updateThread(msg)
		case modeComment:
			return s, s.updateComment(msg)
		case modeCompose:
			return s, s.updateCompose(msg)
		}
	}

	// Cursor blink and other input messages.
	var cmd tea.Cmd
	switch s.mode {
	case modeComment:
		s.body, cmd = s.body.Update(msg)
	case modeCompose:
		if s.focus == 0 {
			s.title, cmd = s.title.Update(msg)
		} else {
			s.body, cmd = s.body.Update(msg)
		}
	}
	return s, cmd
}

func (s *CommunityScreen) updateList(msg tea.KeyMsg) tea.Cmd {
	s.notice = ""
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.discussions)-1 {
			s.cursor++
		}
	case "enter":
		if d, ok := s.selected(); ok {
			s.mode = modeThread
			s.comments = nil
			return s.loadThread(d.ID)
		}
	case "l":
		return s.toggleLike()
	case "n":
		s.mode = modeCompose
		s.focus = 0
		s.body.Blur()
		return s.title.Init()
	}
	return nil
}

func (s *CommunityScreen) updateThread(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.mode = modeList
	case "l":
		return s.toggleLike()
	case "c":
		s.mode = modeComment
		s.notice = ""
		s.body.Reset()
		return s.body.Focus()
	}
	return nil
}

func (s *CommunityScreen) updateComment(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.body.Blur()
		s.mode = modeThread
		s.notice = ""
		return nil
	case "ctrl+s":
		d, ok := s.selected()
		if !ok || s.busy {
			return nil
		}
		s.busy = true
		content := s.body.Value()
		return func() tea.Msg {
			_, err := s.forum.AddComment(context.Background(), s.userID, d.ID, content)
			return commentedMsg{Err: err}
		}
	}
	var cmd tea.Cmd
	s.body, cmd = s.body.Update(msg)
	return cmd
}

func (s *CommunityScreen) updateCompose(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.body.Blur()
		s.mode = modeList
		s.notice = ""
		return nil
	case "tab", "shift+tab":
		s.focus = 1 - s.focus
		if s.focus == 1 {
			return s.body.Focus()
		}
		s.body.Blur()
		return s.title.Init()
	case "ctrl+t":
		s.category = (s.category + 1) % len(community.AllCategories())
		return nil
	case "ctrl+s":
		if s.busy {
			return nil
		}
		s.busy = true
		title, body := s.title.Value(), s.body.Value()
		cat := community.AllCategories()[s.category]
		return func() tea.Msg {
			p, err := s.forum.CreateDiscussion(context.Background(), s.userID, title, body, cat)
			return postedMsg{Posted: p, Err: err}
		}
	}

	var cmd tea.Cmd
	if s.focus == 0 {
		s.title, cmd = s.title.Update(msg)
	} else {
		s.body, cmd = s.body.Update(msg)
	}
	return cmd
}

func (s *CommunityScreen) toggleLike() tea.Cmd {
	d, ok := s.selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		_, err := s.forum.ToggleLike(context.Background(), s.userID, d.ID)
		return likedMsg{Err: err}
	}
}

// userMessage strips the sentinel prefix from validation errors.
func userMessage(err error) string {
	if errors.Is(err, community.ErrValidation) {
		msg := err.Error()
		if i := strings.Index(msg, ": "); i >= 0 && len(msg) > i+2 {
			return strings.ToUpper(msg[i+2:i+3]) + msg[i+3:]
		}
	}
	return err.Error()
}

func (s *CommunityScreen) View(width, height int) string {
	cw := min(width-4, 84)
	var b strings.Builder

	switch s.mode {
	case modeList:
		b.WriteString(s.viewList(cw, height))
	case modeThread, modeComment:
		b.WriteString(s.viewThread(cw, height))
	case modeCompose:
		b.WriteString(s.viewCompose(cw))
	}

	if s.notice != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).PaddingTop(1).Render(b.String()))
}

func (s *CommunityScreen) viewList(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Discussions") + "\n")
	b.WriteString(theme.Hint.Render("Share progress and ask questions. Press n to start a thread.") + "\n\n")

	if len(s.discussions) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("No discussions yet. Be the first to post!"))
		return b.String()
	}

	visible := max(1, (height-6)/3)
	start := 0
	if s.cursor >= visible {
		start = s.cursor - visible + 1
	}
	end := min(len(s.discussions), start+visible)
	for i := start; i < end; i++ {
		b.WriteString(s.renderDiscussion(s.discussions[i], i == s.cursor, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *CommunityScreen) renderDiscussion(d store.Discussion, selected bool, width int) string {
	prefix, style := "  ", theme.Unselected
	if selected {
		prefix, style = "▸ ", theme.Selected
	}
	heart := "♡"
	if s.liked[d.ID] {
		heart = "♥"
	}
	title := style.Render(prefix + d.Title)
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
		"    %s · %s · %s   %s %d   💬 %d",
		d.Author, d.Category, ago(d.CreatedAt), heart, d.LikesCount, d.CommentsCount))
	return title + "\n" + meta + "\n"
}

func (s *CommunityScreen) viewThread(width, height int) string {
	d, ok := s.selected()
	if !ok {
		return ""
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(theme.Heading.Render(d.Title) + "\n")
	heart := "♡"
	if s.liked[d.ID] {
		heart = "♥"
	}
	b.WriteString(dim.Render(fmt.Sprintf("%s · %s · %s   %s %d", d.Author, d.Category, ago(d.CreatedAt), heart, d.LikesCount)) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(d.Content) + "\n\n")

	b.WriteString(theme.Subheading.Render(fmt.Sprintf("Comments (%d)", len(s.comments))) + "\n\n")
	if len(s.comments) == 0 {
		b.WriteString(dim.Italic(true).Render("No comments yet.") + "\n")
	}
	// Newest replies stay visible when the thread is long.
	room := max(1, (height-14)/3)
	if s.mode == modeComment {
		room = max(1, room-3)
	}
	cs := s.comments
	if len(cs) > room {
		b.WriteString(dim.Render(fmt.Sprintf("... %d earlier", len(cs)-room)) + "\n")
		cs = cs[len(cs)-room:]
	}
	for _, c := range cs {
		b.WriteString(theme.Strong.Render(c.Author) + dim.Render("  "+ago(c.CreatedAt)) + "\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width-2).PaddingLeft(2).Render(c.Content) + "\n")
	}

	if s.mode == modeComment {
		s.body.SetWidth(width)
		s.body.SetHeight(3)
		b.WriteString("\n" + dim.Render("Your reply") + "\n" + s.body.View())
	}
	return b.String()
}

func (s *CommunityScreen) viewCompose(width int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("New Discussion") + "\n\n")
	b.WriteString(s.title.View() + "\n\n")

	s.body.SetWidth(width)
	s.body.SetHeight(6)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Content") + "\n")
	b.WriteString(s.body.View() + "\n\n")

	var cats []string
	for i, c := range community.AllCategories() {
		if i == s.category {
			cats = append(cats, theme.Selected.Render("["+c+"]"))
		} else {
			cats = append(cats, lipgloss.NewStyle().Foreground(theme.TextDim).Render(c))
		}
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Category  ") + strings.Join(cats, "  "))
	return b.String()
}

// ago formats a timestamp relative to now.
func ago(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format("Jan 02, 2006")
	}
}
