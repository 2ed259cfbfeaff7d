package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/viralquiz/internal/playback"
	"github.com/abhisek/viralquiz/internal/ui/theme"
)

// OptionList renders answer choices. Once revealed, the correct option is
// highlighted and the others are dimmed.
type OptionList struct {
	Options  []playback.Choice
	Revealed bool
	Width    int
}

// View renders one boxed line per option.
func (o OptionList) View() string {
	rows := make([]string, 0, len(o.Options))
	for _, opt := range o.Options {
		line := fmt.Sprintf("%s  %s", opt.Letter, opt.Text)
		style := lipgloss.NewStyle().
			Width(max(o.Width, 10)).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text)

		switch {
		case o.Revealed && opt.Correct:
			style = style.BorderForeground(theme.Success).Foreground(theme.Success).Bold(true)
			line += "  ✓"
		case o.Revealed:
			style = style.Foreground(theme.TextDim)
		}
		rows = append(rows, style.Render(line))
	}
	return strings.Join(rows, "\n")
}
