package playback

import "time"

// State is a snapshot of the playback. QuestionIndex, Countdown and
// ShowAnswer are meaningful only in StageQuiz.
type State struct {
	Stage         Stage `json:"stage"`
	QuestionIndex int   `json:"questionIndex"`
	Countdown     int   `json:"countdown"`
	ShowAnswer    bool  `json:"showAnswer"`
}

// Initial is the state playback opens in.
func Initial() State {
	return State{Stage: StageIntro}
}

// Terminal reports whether no further transition is scheduled from s.
func (s State) Terminal() bool {
	return s.Stage == StageCTA
}

// Delay is how long s lasts before Advance applies. ok is false for the
// terminal stage.
func Delay(s State, t Timings) (d time.Duration, ok bool) {
	switch s.Stage {
	case StageIntro:
		return t.Intro, true
	case StageHook:
		return t.Hook, true
	case StageQuiz:
		if s.ShowAnswer {
			return t.Reveal, true
		}
		return t.Tick, true
	case StageTwist:
		return t.Twist, true
	}
	return 0, false
}

// Advance returns the state following s for a script with n questions.
//
// A countdown tick that reaches zero reveals the answer in the same step.
// The reveal of the last question leads to the twist, and a script without
// questions goes from the hook straight to the twist.
func Advance(s State, t Timings, n int) State {
	switch s.Stage {
	case StageIntro:
		return State{Stage: StageHook}
	case StageHook:
		if n == 0 {
			return State{Stage: StageTwist}
		}
		return question(0, t)
	case StageQuiz:
		if !s.ShowAnswer {
			s.Countdown--
			if s.Countdown <= 0 {
				s.Countdown = 0
				s.ShowAnswer = true
			}
			return s
		}
		if s.QuestionIndex+1 < n {
			return question(s.QuestionIndex+1, t)
		}
		return State{Stage: StageTwist}
	case StageTwist:
		return State{Stage: StageCTA}
	}
	return s
}

func question(idx int, t Timings) State {
	return State{Stage: StageQuiz, QuestionIndex: idx, Countdown: t.Countdown}
}
