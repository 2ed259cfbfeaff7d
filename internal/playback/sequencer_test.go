package playback_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/viralquiz/internal/playback"
	"github.com/abhisek/viralquiz/internal/playback/playbacktest"
	"github.com/abhisek/viralquiz/internal/quizscript"
)

func script(questions int) *quizscript.Script {
	s := &quizscript.Script{
		Topic: "নদী",
		Intro: quizscript.Intro{VisualDescription: "river floods the screen", Text: "নদী উল্টো দিকে বয়!"},
		Hook:  "৯৯% মানুষ পারে না!",
		Twist: quizscript.Twist{Title: "আমাজন", Description: "আমাজনে কোনো সেতু নেই।"},
		CTA:   "কয়টা পারলেন? লাইক দিন!",
	}
	for i := 0; i < questions; i++ {
		s.Questions = append(s.Questions, quizscript.Question{
			Question: "প্রশ্ন?",
			Options:  []string{"ক", "খ", "গ", "ঘ"},
			Answer:   "খ",
			Fact:     "তথ্য",
		})
	}
	return s
}

type recorder struct {
	mu     sync.Mutex
	states []playback.State
}

func (r *recorder) observe(s playback.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) all() []playback.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]playback.State(nil), r.states...)
}

func start(t *testing.T, questions int) (*playback.Sequencer, *playbacktest.Scheduler, *recorder) {
	t.Helper()
	clock := playbacktest.New()
	rec := &recorder{}
	seq := playback.New(script(questions),
		playback.WithScheduler(clock),
		playback.WithObserver(rec.observe),
	)
	seq.Start()
	t.Cleanup(seq.Close)
	return seq, clock, rec
}

func TestSequencer_IntroThenHookThenQuiz(t *testing.T) {
	seq, clock, _ := start(t, 5)
	assert.Equal(t, playback.StageIntro, seq.State().Stage)

	clock.Advance(2999 * time.Millisecond)
	assert.Equal(t, playback.StageIntro, seq.State().Stage)
	clock.Advance(time.Millisecond)
	assert.Equal(t, playback.StageHook, seq.State().Stage)

	clock.Advance(3999 * time.Millisecond)
	assert.Equal(t, playback.StageHook, seq.State().Stage)
	clock.Advance(time.Millisecond)

	assert.Equal(t, playback.State{Stage: playback.StageQuiz, QuestionIndex: 0, Countdown: 5}, seq.State())
}

func TestSequencer_CountdownIsMonotonicAndRevealsOnce(t *testing.T) {
	seq, clock, rec := start(t, 1)
	clock.Advance(7 * time.Second)

	for want := 4; want >= 0; want-- {
		clock.Advance(time.Second)
		st := seq.State()
		require.Equal(t, playback.StageQuiz, st.Stage)
		assert.Equal(t, want, st.Countdown)
		assert.Equal(t, want == 0, st.ShowAnswer, "countdown %d", want)
	}

	reveals := 0
	prev := -1
	for _, st := range rec.all() {
		if st.Stage != playback.StageQuiz {
			continue
		}
		if prev >= 0 {
			assert.Equal(t, prev-1, st.Countdown)
		}
		assert.GreaterOrEqual(t, st.Countdown, 0)
		prev = st.Countdown
		if st.ShowAnswer {
			reveals++
		}
	}
	assert.Equal(t, 1, reveals)
}

func TestSequencer_RevealThenNextQuestion(t *testing.T) {
	seq, clock, _ := start(t, 3)
	clock.Advance(7*time.Second + 5*time.Second)
	require.True(t, seq.State().ShowAnswer)

	clock.Advance(2999 * time.Millisecond)
	assert.True(t, seq.State().ShowAnswer)
	clock.Advance(time.Millisecond)

	assert.Equal(t, playback.State{Stage: playback.StageQuiz, QuestionIndex: 1, Countdown: 5}, seq.State())
}

func TestSequencer_TwoQuestionsEndToEnd(t *testing.T) {
	seq, clock, rec := start(t, 2)

	clock.Advance(3*time.Second + 4*time.Second)
	clock.Advance(2 * (5*time.Second + 3*time.Second))
	assert.Equal(t, playback.StageTwist, seq.State().Stage)

	clock.Advance(6999 * time.Millisecond)
	assert.Equal(t, playback.StageTwist, seq.State().Stage)
	clock.Advance(time.Millisecond)
	assert.Equal(t, playback.StageCTA, seq.State().Stage)

	assert.Equal(t, 0, clock.Pending(), "cta must not schedule anything")
	clock.Advance(time.Hour)
	assert.Equal(t, playback.StageCTA, seq.State().Stage)

	var stages []playback.Stage
	for _, st := range rec.all() {
		if len(stages) == 0 || stages[len(stages)-1] != st.Stage {
			stages = append(stages, st.Stage)
		}
	}
	assert.Equal(t, []playback.Stage{
		playback.StageIntro, playback.StageHook, playback.StageQuiz, playback.StageTwist, playback.StageCTA,
	}, stages)

	// 1 intro + 1 hook + 2*(6 quiz states) + twist + cta
	assert.Len(t, rec.all(), 16)
	assert.Equal(t, playback.DefaultTimings().Total(2), clock.Now()-time.Hour)
}

func TestSequencer_ZeroQuestionsSkipToTwist(t *testing.T) {
	seq, clock, _ := start(t, 0)
	clock.Advance(7 * time.Second)
	assert.Equal(t, playback.StageTwist, seq.State().Stage)
	clock.Advance(7 * time.Second)
	assert.Equal(t, playback.StageCTA, seq.State().Stage)
}

func TestSequencer_CloseHaltsEveryStage(t *testing.T) {
	offsets := map[string]time.Duration{
		"intro":  0,
		"hook":   3 * time.Second,
		"quiz":   9 * time.Second,
		"reveal": 12500 * time.Millisecond,
		"twist":  7*time.Second + 16*time.Second + time.Second,
	}
	for name, at := range offsets {
		t.Run(name, func(t *testing.T) {
			seq, clock, rec := start(t, 2)
			clock.Advance(at)
			before := seq.State()
			seen := len(rec.all())

			seq.Close()
			assert.True(t, seq.Closed())
			assert.Equal(t, 0, clock.Pending())

			clock.Advance(time.Hour)
			assert.Equal(t, before, seq.State())
			assert.Len(t, rec.all(), seen)

			seq.Start()
			seq.Restart()
			clock.Advance(time.Hour)
			assert.Equal(t, before, seq.State())
		})
	}
}

func TestSequencer_SinglePendingTimer(t *testing.T) {
	seq, clock, _ := start(t, 3)
	for i := 0; i < 40 && !seq.State().Terminal(); i++ {
		assert.Equal(t, 1, clock.Pending())
		d, ok := clock.NextIn()
		require.True(t, ok)
		clock.Advance(d)
	}
	assert.Equal(t, playback.StageCTA, seq.State().Stage)
	assert.Equal(t, 0, clock.Pending())
}

func TestSequencer_RestartDropsStaleTimer(t *testing.T) {
	seq, clock, _ := start(t, 2)
	clock.Advance(5 * time.Second)
	require.Equal(t, playback.StageHook, seq.State().Stage)

	seq.Restart()
	assert.Equal(t, playback.StageIntro, seq.State().Stage)
	assert.Equal(t, 1, clock.Pending())

	// The hook timer would have fired at 7s; the new intro lasts until 8s.
	clock.Advance(2 * time.Second)
	assert.Equal(t, playback.StageIntro, seq.State().Stage)
	clock.Advance(time.Second)
	assert.Equal(t, playback.StageHook, seq.State().Stage)
}

func TestSequencer_StartIsIdempotent(t *testing.T) {
	seq, clock, rec := start(t, 1)
	seq.Start()
	assert.Len(t, rec.all(), 1)
	assert.Equal(t, 1, clock.Pending())
	assert.NotEmpty(t, seq.ID())
}

func TestSequencer_CustomTimings(t *testing.T) {
	clock := playbacktest.New()
	seq := playback.New(script(1),
		playback.WithScheduler(clock),
		playback.WithTimings(playback.Timings{Intro: time.Second, Countdown: 2}),
	)
	seq.Start()
	defer seq.Close()

	clock.Advance(time.Second + 4*time.Second)
	assert.Equal(t, playback.State{Stage: playback.StageQuiz, Countdown: 2}, seq.State())
	clock.Advance(2 * time.Second)
	assert.True(t, seq.State().ShowAnswer)
}

func TestSequencer_RealScheduler(t *testing.T) {
	done := make(chan struct{})
	var once sync.Once
	seq := playback.New(script(1),
		playback.WithTimings(playback.Timings{
			Intro: time.Millisecond, Hook: time.Millisecond, Tick: time.Millisecond,
			Countdown: 2, Reveal: time.Millisecond, Twist: time.Millisecond,
		}),
		playback.WithObserver(func(s playback.State) {
			if s.Terminal() {
				once.Do(func() { close(done) })
			}
		}),
	)
	seq.Start()
	defer seq.Close()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("playback did not finish, stuck at %+v", seq.State())
	}
}

// blockOnHook returns an observer that records states and parks the first
// time the hook stage is delivered until release is closed.
func blockOnHook(rec *recorder, reached, release chan struct{}, then func()) func(playback.State) {
	var once sync.Once
	return func(s playback.State) {
		rec.observe(s)
		if s.Stage != playback.StageHook {
			return
		}
		once.Do(func() {
			close(reached)
			<-release
			if then != nil {
				then()
			}
		})
	}
}

func waitClosed(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestSequencer_ObserverReadsStateDuringRestart(t *testing.T) {
	clock := playbacktest.New()
	rec := &recorder{}
	reached, release := make(chan struct{}), make(chan struct{})
	read := make(chan playback.State, 1)

	var seq *playback.Sequencer
	seq = playback.New(script(1),
		playback.WithScheduler(clock),
		playback.WithObserver(blockOnHook(rec, reached, release, func() { read <- seq.State() })),
	)
	seq.Start()
	t.Cleanup(seq.Close)

	advanced := make(chan struct{})
	go func() {
		defer close(advanced)
		clock.Advance(3 * time.Second)
	}()
	waitClosed(t, reached, "hook delivery")

	restarted := make(chan struct{})
	go func() {
		defer close(restarted)
		seq.Restart()
	}()
	require.Eventually(t, func() bool { return seq.State().Stage == playback.StageIntro }, 2*time.Second, time.Millisecond)

	close(release)
	waitClosed(t, advanced, "the hook observer")
	waitClosed(t, restarted, "Restart")

	assert.Equal(t, playback.StageIntro, (<-read).Stage)
	states := rec.all()
	require.Len(t, states, 3)
	assert.Equal(t, playback.StageIntro, states[2].Stage)
	assert.Equal(t, 1, clock.Pending())
}

func TestSequencer_CloseDoesNotWaitForObserver(t *testing.T) {
	clock := playbacktest.New()
	rec := &recorder{}
	reached, release := make(chan struct{}), make(chan struct{})
	seq := playback.New(script(2),
		playback.WithScheduler(clock),
		playback.WithObserver(blockOnHook(rec, reached, release, nil)),
	)
	seq.Start()

	advanced := make(chan struct{})
	go func() {
		defer close(advanced)
		clock.Advance(3 * time.Second)
	}()
	waitClosed(t, reached, "hook delivery")

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		seq.Close()
		seq.Restart()
	}()
	waitClosed(t, closed, "Close while the observer is busy")
	assert.True(t, seq.Closed())
	assert.Equal(t, 0, clock.Pending())

	close(release)
	waitClosed(t, advanced, "the hook observer")

	clock.Advance(time.Hour)
	assert.Equal(t, playback.StageHook, seq.State().Stage)
	assert.Len(t, rec.all(), 2)
}
