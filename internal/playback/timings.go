package playback

import "time"

// Timings are the stage durations.
type Timings struct {
	Intro     time.Duration
	Hook      time.Duration
	Tick      time.Duration // one countdown step
	Countdown int           // starting countdown value per question
	Reveal    time.Duration // answer shown before moving on
	Twist     time.Duration
}

// DefaultTimings match the short-form video pacing: 3s intro, 4s hook,
// a 5 second countdown per question, 3s reveal and 7s twist.
func DefaultTimings() Timings {
	return Timings{
		Intro:     3 * time.Second,
		Hook:      4 * time.Second,
		Tick:      1 * time.Second,
		Countdown: 5,
		Reveal:    3 * time.Second,
		Twist:     7 * time.Second,
	}
}

// withDefaults fills zero fields from DefaultTimings.
func (t Timings) withDefaults() Timings {
	d := DefaultTimings()
	if t.Intro <= 0 {
		t.Intro = d.Intro
	}
	if t.Hook <= 0 {
		t.Hook = d.Hook
	}
	if t.Tick <= 0 {
		t.Tick = d.Tick
	}
	if t.Countdown <= 0 {
		t.Countdown = d.Countdown
	}
	if t.Reveal <= 0 {
		t.Reveal = d.Reveal
	}
	if t.Twist <= 0 {
		t.Twist = d.Twist
	}
	return t
}

// Total is the full playback length for n questions.
func (t Timings) Total(n int) time.Duration {
	t = t.withDefaults()
	perQuestion := time.Duration(t.Countdown)*t.Tick + t.Reveal
	return t.Intro + t.Hook + time.Duration(n)*perQuestion + t.Twist
}
