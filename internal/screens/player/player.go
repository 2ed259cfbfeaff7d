package player

import (
	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/viralquiz/internal/playback"
	"github.com/abhisek/viralquiz/internal/quizscript"
	"github.com/abhisek/viralquiz/internal/router"
	"github.com/abhisek/viralquiz/internal/screen"
	"github.com/abhisek/viralquiz/internal/ui/components"
	"github.com/abhisek/viralquiz/internal/ui/layout"
)

// stateBuffer bounds how far playback may run ahead of rendering.
const stateBuffer = 64

// Config holds what the player needs besides the script.
type Config struct {
	Timings   playback.Timings
	Scheduler playback.Scheduler // nil means wall clock
	Logger    logrus.FieldLogger
}

// Screen previews a script as a timed video.
type Screen struct {
	seq    *playback.Sequencer
	states chan playback.State
	done   chan struct{}
	frame  playback.Frame
	retry  components.Button
	closed bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.Closer = (*Screen)(nil)

// stateMsg carries a playback state into the Bubble Tea loop.
type stateMsg struct {
	session string
	state   playback.State
}

// restartMsg is emitted by the retry button.
type restartMsg struct{}

// New creates a player for script. Playback starts in Init.
func New(script *quizscript.Script, cfg Config) *Screen {
	s := &Screen{
		states: make(chan playback.State, stateBuffer),
		done:   make(chan struct{}),
	}

	opts := []playback.Option{
		playback.WithTimings(cfg.Timings),
		playback.WithObserver(s.observe),
	}
	if cfg.Scheduler != nil {
		opts = append(opts, playback.WithScheduler(cfg.Scheduler))
	}
	if cfg.Logger != nil {
		opts = append(opts, playback.WithLogger(cfg.Logger))
	}
	s.seq = playback.New(script, opts...)
	s.frame = playback.FrameFor(script, playback.Initial())
	s.retry = components.NewButton(playback.LabelRetry+" (R)", "r", func() tea.Cmd {
		return func() tea.Msg { return restartMsg{} }
	})
	s.retry.Disabled = true
	return s
}

// observe runs on the timer goroutine.
func (s *Screen) observe(st playback.State) {
	select {
	case s.states <- st:
	case <-s.done:
	}
}

func (s *Screen) waitForState() tea.Cmd {
	states, done, id := s.states, s.done, s.seq.ID()
	return func() tea.Msg {
		select {
		case st := <-states:
			return stateMsg{session: id, state: st}
		case <-done:
			return nil
		}
	}
}

func (s *Screen) Init() tea.Cmd {
	s.seq.Start()
	return s.waitForState()
}

func (s *Screen) Title() string {
	return "প্রিভিউ"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc/Q", Description: "Close"}}
	if s.frame.Stage == playback.StageCTA {
		hints = append([]layout.KeyHint{{Key: "R", Description: playback.LabelRetry}}, hints...)
	}
	return hints
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		if s.closed || msg.session != s.seq.ID() {
			return s, nil
		}
		s.frame = playback.FrameFor(s.seq.Script(), msg.state)
		s.retry.Disabled = s.frame.Stage != playback.StageCTA
		return s, s.waitForState()

	case restartMsg:
		s.seq.Restart()
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc":
			return s, router.Pop()
		}
		var cmd tea.Cmd
		s.retry, cmd = s.retry.Update(msg)
		return s, cmd
	}
	return s, nil
}

// Close stops playback. The router calls it when the screen is popped.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.seq.Close()
	close(s.done)
}

// Frame returns what is currently shown.
func (s *Screen) Frame() playback.Frame {
	return s.frame
}
