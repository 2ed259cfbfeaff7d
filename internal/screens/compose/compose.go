package compose

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/viralquiz/internal/quizscript"
	"github.com/abhisek/viralquiz/internal/router"
	"github.com/abhisek/viralquiz/internal/screen"
	"github.com/abhisek/viralquiz/internal/screens/player"
	"github.com/abhisek/viralquiz/internal/ui/components"
	"github.com/abhisek/viralquiz/internal/ui/layout"
	"github.com/abhisek/viralquiz/internal/ui/theme"
)

const (
	topicPlaceholder = "যেমন: মহাকাশ, ক্রিকেট, অদ্ভুত তথ্য..."
	topicCharLimit   = 120
	submitLabel      = "ম্যাজিক দেখুন ✨"
	generatingLabel  = "তৈরি হচ্ছে..."
)

// Config holds the compose screen's collaborators.
type Config struct {
	Player player.Config
	Logger logrus.FieldLogger
}

// Screen takes a topic, generates a script and shows it.
type Screen struct {
	generator quizscript.Generator
	cfg       Config
	log       logrus.FieldLogger

	input   components.TextInput
	submit  components.Button
	spinner spinner.Model

	generating bool
	seq        int
	script     *quizscript.Script
	err        error
	scroll     int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the compose screen.
func New(generator quizscript.Generator, cfg Config) *Screen {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Screen{
		generator: generator,
		cfg:       cfg,
		log:       log,
		input:     components.NewTextInput(topicPlaceholder, topicCharLimit),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.Label),
		),
	}
	s.submit = components.NewButton(submitLabel, "enter", s.start)
	s.submit.Disabled = true
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Title() string {
	return "স্ক্রিপ্ট"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Generate"}}
	if s.script != nil {
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+P", Description: "প্লে প্রিভিউ ▶️"},
			layout.KeyHint{Key: "↑/↓", Description: "Scroll"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scriptReadyMsg:
		if msg.Seq != s.seq {
			return s, nil
		}
		s.generating = false
		s.syncSubmit()
		if msg.Err != nil {
			s.err = msg.Err
			s.log.WithError(msg.Err).WithField("topic", msg.Topic).Debug("showing generation failure")
			return s, nil
		}
		s.err = nil
		s.script = msg.Script
		s.scroll = 0
		s.log.WithFields(logrus.Fields{
			"topic":     msg.Topic,
			"questions": len(msg.Script.Questions),
		}).Debug("showing script")
		return s, nil

	case spinner.TickMsg:
		if !s.generating {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+p":
			if s.script == nil || s.generating {
				return s, nil
			}
			return s, router.Push(player.New(s.script, s.cfg.Player))
		case "up":
			s.scroll = max(s.scroll-1, 0)
			return s, nil
		case "down":
			s.scroll++
			return s, nil
		case "pgup":
			s.scroll = max(s.scroll-10, 0)
			return s, nil
		case "pgdown":
			s.scroll += 10
			return s, nil
		case "enter":
			var cmd tea.Cmd
			s.submit, cmd = s.submit.Update(msg)
			return s, cmd
		}
		if s.generating {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.syncSubmit()
	return s, cmd
}

// syncSubmit enables the button only for a non-blank topic while idle.
func (s *Screen) syncSubmit() {
	s.submit.Disabled = s.generating || s.input.Trimmed() == ""
}

// start begins a generation for the current topic. It is the submit
// button's action and is never reached while a generation is in flight.
func (s *Screen) start() tea.Cmd {
	topic := s.input.Trimmed()
	if s.generating || topic == "" {
		return nil
	}
	s.generating = true
	s.err = nil
	s.seq++
	s.syncSubmit()
	return tea.Batch(s.generate(s.seq, topic), s.spinner.Tick)
}

// generate runs one generation asynchronously.
func (s *Screen) generate(seq int, topic string) tea.Cmd {
	gen := s.generator
	return func() tea.Msg {
		script, err := gen.Generate(context.Background(), topic)
		return scriptReadyMsg{Seq: seq, Topic: topic, Script: script, Err: err}
	}
}

// Script returns the last generated script, or nil.
func (s *Screen) Script() *quizscript.Script {
	return s.script
}

// Generating reports whether a generation is in flight.
func (s *Screen) Generating() bool {
	return s.generating
}
