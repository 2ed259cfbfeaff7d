package playback

import "github.com/abhisek/viralquiz/internal/quizscript"

// Frame is what a front end shows for one state.
type Frame struct {
	Stage   Stage  `json:"stage"`
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body,omitempty"`

	// Visual is the intro's scene direction.
	Visual string `json:"visual,omitempty"`

	QuestionNumber int      `json:"questionNumber,omitempty"`
	QuestionCount  int      `json:"questionCount,omitempty"`
	Options        []Choice `json:"options,omitempty"`
	Countdown      int      `json:"countdown,omitempty"`
	ShowAnswer     bool     `json:"showAnswer,omitempty"`
	Banner         string   `json:"banner,omitempty"`
	Fact           string   `json:"fact,omitempty"`

	// Progress is 0 before the quiz, (index+1)/count during it and 1 after.
	Progress float64 `json:"progress"`

	// Action labels the control offered in the terminal stage.
	Action string `json:"action,omitempty"`
}

// Choice is one answer option. Correct is only set once the answer is
// revealed.
type Choice struct {
	Letter  string `json:"letter"`
	Text    string `json:"text"`
	Correct bool   `json:"correct,omitempty"`
}

// FrameFor projects s onto script. Scripts that do not match the usual
// shape are rendered as they are: an answer missing from the options
// highlights nothing and an out of range index yields an empty question.
func FrameFor(script *quizscript.Script, s State) Frame {
	if script == nil {
		script = &quizscript.Script{}
	}
	f := Frame{Stage: s.Stage}

	switch s.Stage {
	case StageIntro:
		f.Heading = script.Intro.Text
		f.Visual = script.Intro.VisualDescription
	case StageHook:
		f.Heading = LabelHook
		f.Body = script.Hook
	case StageQuiz:
		n := len(script.Questions)
		f.QuestionNumber = s.QuestionIndex + 1
		f.QuestionCount = n
		f.Heading = QuestionLabel(f.QuestionNumber)
		f.Countdown = s.Countdown
		f.ShowAnswer = s.ShowAnswer
		if n > 0 {
			f.Progress = min(float64(s.QuestionIndex+1)/float64(n), 1)
		}
		if s.QuestionIndex >= 0 && s.QuestionIndex < n {
			q := script.Questions[s.QuestionIndex]
			f.Body = q.Question
			f.Options = make([]Choice, len(q.Options))
			for i, text := range q.Options {
				f.Options[i] = Choice{
					Letter:  optionLetter(i),
					Text:    text,
					Correct: s.ShowAnswer && q.IsAnswer(text),
				}
			}
			if s.ShowAnswer {
				f.Banner = LabelReveal
				f.Fact = q.Fact
			}
		}
	case StageTwist:
		f.Heading = LabelTwist
		f.Body = script.Twist.Title
		f.Fact = script.Twist.Description
		f.Progress = 1
	case StageCTA:
		f.Body = script.CTA
		f.Action = LabelRetry
		f.Progress = 1
	}
	return f
}
