package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/viralquiz/internal/ui/theme"
)

const bannerArt = `
 ╦  ╦╦╦═╗╔═╗╦    ╔═╗ ╦ ╦╦╔═╗
 ╚╗╔╝║╠╦╝╠═╣║    ║═╬╗║ ║║╔═╝
  ╚╝ ╩╩╚═╩ ╩╩═╝  ╚═╝╚╚═╝╩╚═╝`

const bannerCompact = "V I R A L Q U I Z"

// RenderBanner returns the banner in the primary color, falling back to a
// single line below 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
