package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/journey"
	quizpkg "github.com/abhisek/ascend/internal/quiz"
	"github.com/abhisek/ascend/internal/ui/theme"
)

// renderSummary renders the completion summary for a saved quiz.
func renderSummary(out *journey.Outcome, res quizpkg.Result, width int) string {
	if out == nil {
		return ""
	}
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Article complete!") + "\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	b.WriteString(center.Foreground(theme.Text).Render(
		fmt.Sprintf("Score: %d%%", res.Score)) + "\n")
	if !out.Created {
		b.WriteString(center.Foreground(theme.TextDim).Render("Already completed before; your answers were updated.") + "\n")
	}
	b.WriteString("\n")

	if a := out.Award; a != nil {
		b.WriteString(center.Foreground(theme.Accent).Render(
			fmt.Sprintf("+%d XP   (%d → %d)", a.Amount, a.OldXP, a.NewXP)) + "\n")
		if a.LeveledUp() {
			b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(
				fmt.Sprintf("Level up! %d → %d", a.OldLevel, a.NewLevel)) + "\n")
		}
		b.WriteString(center.Foreground(theme.TextDim).Render(
			fmt.Sprintf("🔥 %d day streak", a.NewStreak)) + "\n")
	}

	if len(out.Badges) > 0 {
		b.WriteString("\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("New badges")) + "\n")
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 40)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n")
		for _, bt := range out.Badges {
			b.WriteString(center.Render(theme.Badge.Render(bt.Icon()+" "+bt.DisplayName())+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+bt.Description())) + "\n")
		}
	}

	b.WriteString("\n")
	if out.Next != nil {
		b.WriteString(center.Foreground(theme.Secondary).Render("Unlocked next: "+out.Next.Title) + "\n")
	}
	return b.String()
}
