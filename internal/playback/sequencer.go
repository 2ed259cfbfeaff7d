package playback

import (
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/viralquiz/internal/quizscript"
)

// Sequencer drives one playback of a script through its stages.
//
// Exactly one timer is pending while playback runs. Each transition stops
// the previous timer and bumps the epoch, so a callback that fires late
// for a superseded state is ignored. Once Close returns no further
// transition is made.
type Sequencer struct {
	id       string
	script   *quizscript.Script
	timings  Timings
	sched    Scheduler
	observer func(State)
	log      logrus.FieldLogger

	mu      sync.Mutex
	state   State
	epoch   uint64
	timer   Timer
	started bool
	closed  bool

	// notifyMu keeps observer calls in transition order without holding mu.
	notifyMu sync.Mutex
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) Option {
	return func(q *Sequencer) { q.sched = s }
}

// WithTimings overrides stage durations. Zero fields keep their defaults.
func WithTimings(t Timings) Option {
	return func(q *Sequencer) { q.timings = t.withDefaults() }
}

// WithObserver registers fn to receive states in transition order,
// starting with the initial intro state. fn runs on the goroutine that
// caused the transition. A state that is replaced or closed before fn gets
// to it is skipped. fn may call State, Closed or Close. It must not call
// Start or Restart synchronously.
func WithObserver(fn func(State)) Option {
	return func(q *Sequencer) { q.observer = fn }
}

// WithLogger sets the logger for transition traces.
func WithLogger(l logrus.FieldLogger) Option {
	return func(q *Sequencer) { q.log = l }
}

// New creates a stopped Sequencer for script. Call Start to begin.
func New(script *quizscript.Script, opts ...Option) *Sequencer {
	q := &Sequencer{
		id:      uuid.NewString(),
		script:  script,
		timings: DefaultTimings(),
		sched:   RealScheduler{},
		state:   Initial(),
	}
	for _, opt := range opts {
		opt(q)
	}
	if q.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		q.log = l
	}
	q.log = q.log.WithField("session", q.id)
	return q
}

// ID identifies this playback session.
func (q *Sequencer) ID() string { return q.id }

// Script returns the script being played.
func (q *Sequencer) Script() *quizscript.Script { return q.script }

// Timings returns the effective stage durations.
func (q *Sequencer) Timings() Timings { return q.timings }

// State returns the current state.
func (q *Sequencer) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Closed reports whether Close has been called.
func (q *Sequencer) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Start enters the intro stage. Calling it again, or after Close, has no
// effect.
func (q *Sequencer) Start() {
	q.mu.Lock()
	if q.started || q.closed {
		q.mu.Unlock()
		return
	}
	q.started = true
	q.log.WithField("questions", q.questionCount()).Debug("playback started")
	q.enter(Initial())
}

// Restart returns to the intro stage from wherever playback is.
func (q *Sequencer) Restart() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.started = true
	q.log.Debug("playback restarted")
	q.enter(Initial())
}

// Close cancels the pending timer. It is safe to call more than once.
func (q *Sequencer) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.epoch++
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	q.log.WithField("stage", q.state.Stage).Debug("playback closed")
}

// enter installs s, schedules its expiry and notifies the observer.
// It must be called with mu held and releases it.
func (q *Sequencer) enter(s State) {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	q.epoch++
	q.state = s

	epoch := q.epoch
	if d, ok := Delay(s, q.timings); ok {
		q.timer = q.sched.AfterFunc(d, func() { q.fire(epoch) })
	}

	q.log.WithFields(logrus.Fields{
		"stage":      s.Stage,
		"question":   s.QuestionIndex,
		"countdown":  s.Countdown,
		"showAnswer": s.ShowAnswer,
	}).Debug("playback transition")

	q.mu.Unlock()

	// mu is never held while waiting for notifyMu, so an observer may read
	// State and Close never waits on a slow observer.
	q.notifyMu.Lock()
	defer q.notifyMu.Unlock()
	if q.observer == nil || q.superseded(epoch) {
		return
	}
	q.observer(s)
}

// superseded reports whether the state installed at epoch has since been
// replaced or closed.
func (q *Sequencer) superseded(epoch uint64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed || q.epoch != epoch
}

func (q *Sequencer) fire(epoch uint64) {
	q.mu.Lock()
	if q.closed || epoch != q.epoch {
		q.mu.Unlock()
		return
	}
	q.timer = nil
	q.enter(Advance(q.state, q.timings, q.questionCount()))
}

func (q *Sequencer) questionCount() int {
	if q.script == nil {
		return 0
	}
	return len(q.script.Questions)
}
