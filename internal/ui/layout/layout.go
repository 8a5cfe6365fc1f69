package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/ui/theme"
)

// Smallest terminal the article reader still fits in.
const (
	MinWidth  = 72
	MinHeight = 20
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the learner to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf("Ascend needs a little more room.\n\nResize to at least %d×%d (now %d×%d).",
			MinWidth, MinHeight, width, height))
}

// Stats is the learner summary shown on the right of the header. A zero
// value with SignedIn false renders a sign-in prompt.
type Stats struct {
	SignedIn bool
	Level    int
	XP       int
	Streak   int
}

// RenderHeader renders the brand and screen title on the left and the
// learner's stats on the right.
func RenderHeader(title string, stats Stats, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▲ Ascend")
	left := brand
	if title != "" {
		left += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" / ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	}
	right := renderStats(stats)

	inner := max(0, width-theme.Header.GetHorizontalFrameSize())
	gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(right))
	line := left + strings.Repeat(" ", gap) + right

	return theme.Header.Width(width).Render(line)
}

func renderStats(s Stats) string {
	if !s.SignedIn {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("not signed in")
	}
	accent := lipgloss.NewStyle().Foreground(theme.Accent)
	parts := []string{
		accent.Render(fmt.Sprintf("Lv %d", s.Level)),
		accent.Render(fmt.Sprintf("%d XP", s.XP)),
	}
	if s.Streak > 0 {
		parts = append(parts, accent.Render(fmt.Sprintf("🔥 %d", s.Streak)))
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(" · "))
}

// RenderFooter renders the key hints, preceded by a status line when
// status is not empty.
func RenderFooter(hints []KeyHint, status string, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	line := strings.Join(parts, "   ")
	if status != "" {
		line = lipgloss.NewStyle().Foreground(theme.Error).Render("! "+status) + "\n" + line
	}

	return theme.Footer.Width(width).Render(line)
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
