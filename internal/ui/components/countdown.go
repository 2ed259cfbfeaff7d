package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/viralquiz/internal/ui/theme"
)

// Countdown renders the seconds left in a question. The last two seconds
// turn red.
func Countdown(label string, seconds int) string {
	color := theme.Primary
	if seconds <= 2 {
		color = theme.Error
	}
	num := lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("⏱ %d", seconds))
	return theme.Dimmed.Render(label+" ") + num
}
