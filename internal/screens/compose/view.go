package compose

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/viralquiz/internal/quizscript"
	"github.com/abhisek/viralquiz/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	w := min(width-4, 90)

	top := []string{
		theme.Title.Width(w).Render("ViralQuiz AI"),
		theme.Subtitle.Width(w).Render("১ ক্লিকে ভাইরাল কুইজ ভিডিওর স্ক্রিপ্ট"),
		"",
		theme.Label.Render("টপিক লিখুন"),
		s.input.View(),
		"",
	}
	if s.generating {
		top = append(top, s.spinner.View()+" "+theme.Label.Render(generatingLabel))
	} else {
		top = append(top, s.submit.View())
	}
	if s.err != nil {
		top = append(top, "", theme.ErrorBox.Width(w).Render(quizscript.FailureMessage))
	}

	header := strings.Join(top, "\n")
	if s.script == nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(header)
	}

	avail := max(height-lipgloss.Height(header)-3, 3)
	lines := strings.Split(renderScript(s.script, w), "\n")
	s.scroll = min(s.scroll, max(len(lines)-avail, 0))
	end := min(s.scroll+avail, len(lines))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		header + "\n\n" + strings.Join(lines[s.scroll:end], "\n"),
	)
}

func section(title string) string {
	return theme.Label.Render("▌ " + title)
}

func renderScript(sc *quizscript.Script, w int) string {
	text := lipgloss.NewStyle().Width(w).Foreground(theme.Text)
	var b strings.Builder

	b.WriteString(theme.Title.Render("আপনার ভাইরাল স্ক্রিপ্ট") + "\n\n")

	b.WriteString(section("সুপার ফাস্ট ইন্ট্রো (0-3s)") + "\n")
	b.WriteString(text.Bold(true).Render(sc.Intro.Text) + "\n")
	b.WriteString(theme.Hint.Width(w).Render("দৃশ্য: "+sc.Intro.VisualDescription) + "\n\n")

	b.WriteString(section("ইনফরমেশনাল হুক (3-7s)") + "\n")
	b.WriteString(text.Render(sc.Hook) + "\n\n")

	b.WriteString(section("মূল কুইজ বডি") + "\n")
	for i, q := range sc.Questions {
		b.WriteString(text.Bold(true).Render(fmt.Sprintf("%d. %s", i+1, q.Question)) + "\n")
		for _, opt := range q.Options {
			if q.IsAnswer(opt) {
				b.WriteString("   " + theme.Correct.Render(" "+opt+" ✓ ") + "\n")
			} else {
				b.WriteString("   " + theme.Dimmed.Render(opt) + "\n")
			}
		}
		b.WriteString(theme.Hint.Width(w).Render("   ফ্যাক্ট: "+q.Fact) + "\n\n")
	}

	b.WriteString(section("চমক বা টুইস্ট") + "\n")
	b.WriteString(text.Bold(true).Render(sc.Twist.Title) + "\n")
	b.WriteString(text.Render(sc.Twist.Description) + "\n\n")

	b.WriteString(section("আপনার ভিডিওর CTA") + "\n")
	b.WriteString(text.Italic(true).Render(sc.CTA))

	return b.String()
}
