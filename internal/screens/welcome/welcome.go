package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/viralquiz/internal/router"
	"github.com/abhisek/viralquiz/internal/screen"
	"github.com/abhisek/viralquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	sparkleStart = 400 * time.Millisecond
	bannerStart  = 1200 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "১ ক্লিকে ভাইরাল কুইজ ভিডিও"

const phoneArt = `╭─────────╮
│ ▶  0:15 │
│         │
│  ? ? ?  │
│  A B C  │
│         │
╰─────────╯`

var sparkleFrames = []string{"✦", "✧"}

type tickMsg time.Time

// Screen is the startup splash. It hands over to the screen built by next
// after the animation or on any key.
type Screen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*Screen)(nil)

// New creates the splash.
func New(next func() screen.Screen) *Screen {
	return &Screen{next: next}
}

func (w *Screen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *Screen) Title() string {
	return ""
}

func (w *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.tickCount++
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *Screen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.next())
}

func (w *Screen) View(width, height int) string {
	art := lipgloss.NewStyle().Foreground(theme.Primary).Render(phoneArt)

	if w.elapsed >= sparkleStart {
		s := sparkleFrames[w.tickCount%len(sparkleFrames)]
		left := lipgloss.NewStyle().Foreground(theme.Accent).Render(s)
		right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(s)

		lines := strings.Split(art, "\n")
		for i := range lines {
			switch i {
			case 1, 5:
				lines[i] = left + "  " + lines[i] + "  " + right
			default:
				lines[i] = "   " + lines[i] + "   "
			}
		}
		art = strings.Join(lines, "\n")
	}

	sections := []string{art}
	if w.elapsed >= bannerStart {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
