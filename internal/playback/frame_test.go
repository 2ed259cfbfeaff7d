package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/viralquiz/internal/quizscript"
)

func frameScript() *quizscript.Script {
	return &quizscript.Script{
		Intro: quizscript.Intro{VisualDescription: "glitch", Text: "থামুন!"},
		Hook:  "৯৯% ফেল!",
		Questions: []quizscript.Question{
			{Question: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "c", Fact: "f1"},
			{Question: "q2", Options: []string{"a", "b", "c", "d"}, Answer: "z", Fact: "f2"},
		},
		Twist: quizscript.Twist{Title: "t", Description: "d"},
		CTA:   "like",
	}
}

func TestFrameFor_Stages(t *testing.T) {
	s := frameScript()

	intro := FrameFor(s, State{Stage: StageIntro})
	assert.Equal(t, "থামুন!", intro.Heading)
	assert.Equal(t, "glitch", intro.Visual)
	assert.Zero(t, intro.Progress)

	hook := FrameFor(s, State{Stage: StageHook})
	assert.Equal(t, LabelHook, hook.Heading)
	assert.Equal(t, "৯৯% ফেল!", hook.Body)

	twist := FrameFor(s, State{Stage: StageTwist})
	assert.Equal(t, LabelTwist, twist.Heading)
	assert.Equal(t, "t", twist.Body)
	assert.Equal(t, "d", twist.Fact)

	cta := FrameFor(s, State{Stage: StageCTA})
	assert.Equal(t, "like", cta.Body)
	assert.Equal(t, LabelRetry, cta.Action)
	assert.Equal(t, 1.0, cta.Progress)
}

func TestFrameFor_QuestionBeforeAndAfterReveal(t *testing.T) {
	s := frameScript()

	asking := FrameFor(s, State{Stage: StageQuiz, QuestionIndex: 0, Countdown: 4})
	assert.Equal(t, "প্রশ্ন 1", asking.Heading)
	assert.Equal(t, "q1", asking.Body)
	assert.Equal(t, 4, asking.Countdown)
	assert.Equal(t, 0.5, asking.Progress)
	assert.Empty(t, asking.Fact)
	require.Len(t, asking.Options, 4)
	for _, o := range asking.Options {
		assert.False(t, o.Correct)
	}
	assert.Equal(t, "A", asking.Options[0].Letter)

	revealed := FrameFor(s, State{Stage: StageQuiz, QuestionIndex: 0, ShowAnswer: true})
	assert.Equal(t, LabelReveal, revealed.Banner)
	assert.Equal(t, "f1", revealed.Fact)
	assert.True(t, revealed.Options[2].Correct)
	assert.False(t, revealed.Options[0].Correct)
}

func TestFrameFor_MalformedScripts(t *testing.T) {
	s := frameScript()

	// Answer not among the options: nothing highlighted.
	f := FrameFor(s, State{Stage: StageQuiz, QuestionIndex: 1, ShowAnswer: true})
	assert.Equal(t, 1.0, f.Progress)
	for _, o := range f.Options {
		assert.False(t, o.Correct)
	}

	// Index past the end renders an empty question instead of panicking.
	f = FrameFor(s, State{Stage: StageQuiz, QuestionIndex: 7})
	assert.Empty(t, f.Body)
	assert.Empty(t, f.Options)

	assert.NotPanics(t, func() { FrameFor(nil, State{Stage: StageQuiz}) })
}
