package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/viralquiz/internal/ui/theme"
)

// ProgressBar is a horizontal bar filled to Percent (0..1).
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

// Filled returns how many of n cells are filled.
func (p ProgressBar) Filled(n int) int {
	return min(max(int(float64(n)*p.Percent), 0), n)
}

// View renders the bar.
func (p ProgressBar) View() string {
	var prefix, suffix string
	if p.Label != "" {
		prefix = theme.Dimmed.Render(p.Label) + "  "
	}
	if p.ShowPercent {
		suffix = theme.Dimmed.Render(fmt.Sprintf("  %3d%%", int(p.Percent*100)))
	}

	cells := max(p.Width-lipgloss.Width(prefix)-lipgloss.Width(suffix), 4)
	filled := p.Filled(cells)

	return prefix +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", cells-filled)) +
		suffix
}
