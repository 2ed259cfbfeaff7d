package player

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/viralquiz/internal/playback"
	"github.com/abhisek/viralquiz/internal/ui/components"
	"github.com/abhisek/viralquiz/internal/ui/layout"
	"github.com/abhisek/viralquiz/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	cardWidth := min(layout.PhoneWidth, width-4)
	inner := cardWidth - 6

	var body string
	switch f := s.frame; f.Stage {
	case playback.StageIntro:
		body = renderIntro(f, inner)
	case playback.StageHook:
		body = renderHook(f, inner)
	case playback.StageQuiz:
		body = renderQuestion(f, inner)
	case playback.StageTwist:
		body = renderTwist(f, inner)
	case playback.StageCTA:
		body = renderCTA(f, s.retry, inner)
	}

	bar := components.NewProgressBar("", s.frame.Progress, false, inner).View()
	card := theme.Card.
		Width(cardWidth).
		Height(max(height-2, 10)).
		Render(bar + "\n\n" + body)

	return layout.Center(card, width, height)
}

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

func renderIntro(f playback.Frame, w int) string {
	return strings.Join([]string{
		centered(w).Render("🛑"),
		"",
		centered(w).Foreground(theme.Primary).Bold(true).Render(f.Heading),
		"",
		centered(w).Inherit(theme.Hint).Render("দৃশ্য: " + f.Visual),
	}, "\n")
}

func renderHook(f playback.Frame, w int) string {
	return strings.Join([]string{
		centered(w).Render(theme.Banner.Render(f.Heading)),
		"",
		centered(w).Foreground(theme.Text).Bold(true).Render(f.Body),
	}, "\n")
}

func renderQuestion(f playback.Frame, w int) string {
	parts := []string{
		theme.Label.Render(f.Heading),
		lipgloss.NewStyle().Width(w).Foreground(theme.Text).Bold(true).Render(f.Body),
		"",
		components.OptionList{Options: f.Options, Revealed: f.ShowAnswer, Width: w - 2}.View(),
		"",
	}
	if f.ShowAnswer {
		parts = append(parts,
			centered(w).Render(theme.Banner.Background(theme.Success).Render(f.Banner)),
			lipgloss.NewStyle().Width(w).Inherit(theme.Hint).Render(f.Fact),
		)
	} else {
		parts = append(parts, centered(w).Render(components.Countdown(playback.LabelTimeLeft, f.Countdown)))
	}
	return strings.Join(parts, "\n")
}

func renderTwist(f playback.Frame, w int) string {
	return strings.Join([]string{
		centered(w).Render(theme.Banner.Render(f.Heading)),
		"",
		centered(w).Foreground(theme.Primary).Bold(true).Render(f.Body),
		"",
		lipgloss.NewStyle().Width(w).Foreground(theme.Text).Render(f.Fact),
	}, "\n")
}

func renderCTA(f playback.Frame, retry components.Button, w int) string {
	return strings.Join([]string{
		centered(w).Render("🏆"),
		"",
		centered(w).Foreground(theme.Text).Bold(true).Italic(true).Render(f.Body),
		"",
		centered(w).Render(retry.View()),
	}, "\n")
}
