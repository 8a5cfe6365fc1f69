package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/ui/theme"
)

const bannerArt = `
  █████╗ ███████╗ ██████╗███████╗███╗   ██╗██████╗
 ██╔══██╗██╔════╝██╔════╝██╔════╝████╗  ██║██╔══██╗
 ███████║███████╗██║     █████╗  ██╔██╗ ██║██║  ██║
 ██╔══██║╚════██║██║     ██╔══╝  ██║╚██╗██║██║  ██║
 ██║  ██║███████║╚██████╗███████╗██║ ╚████║██████╔╝
 ╚═╝  ╚═╝╚══════╝ ╚═════╝╚══════╝╚═╝  ╚═══╝╚═════╝`

const bannerCompact = "A S C E N D"

// RenderBanner returns the ASCEND banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 54 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 54 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
