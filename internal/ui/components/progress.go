package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64 // 0..1
	Caption string  // rendered after the bar, e.g. "3/5"
	Width   int
}

// NewProgressBar creates a progress bar with a percentage caption.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Caption: fmt.Sprintf("%d%%", int(percent*100)),
		Width:   width,
	}
}

// NewCountBar creates a progress bar for done out of total items.
func NewCountBar(label string, done, total, width int) ProgressBar {
	var pct float64
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	return ProgressBar{
		Label:   label,
		Percent: pct,
		Caption: fmt.Sprintf("%d/%d", done, total),
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	captionWidth := 0
	if p.Caption != "" {
		captionWidth = len(p.Caption) + 2
	}

	barWidth := p.Width - labelWidth - captionWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	filled = max(0, min(filled, barWidth))

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.Caption != "" {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + p.Caption)
	}

	return result
}
