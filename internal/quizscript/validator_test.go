package quizscript

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveQuestionScript(t *testing.T) *Script {
	t.Helper()
	var s Script
	require.NoError(t, json.Unmarshal(scriptJSON(), &s))
	for len(s.Questions) < 5 {
		s.Questions = append(s.Questions, s.Questions[0])
	}
	return &s
}

func TestStrictValidators(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *Script)
		validator string
	}{
		{"valid", func(*Script) {}, ""},
		{"blank hook", func(s *Script) { s.Hook = "  " }, "structural"},
		{"blank question", func(s *Script) { s.Questions[2].Question = "" }, "structural"},
		{"four questions", func(s *Script) { s.Questions = s.Questions[:4] }, "count"},
		{"three options", func(s *Script) { s.Questions[1].Options = s.Questions[1].Options[:3] }, "count"},
		{"answer not an option", func(s *Script) { s.Questions[3].Answer = "প্লুটো" }, "answer"},
		{"duplicate option", func(s *Script) {
			q := &s.Questions[0]
			q.Options = []string{q.Answer, q.Answer, "a", "b"}
		}, "answer"},
	}

	cfg := DefaultConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fiveQuestionScript(t)
			s.Questions = append([]Question(nil), s.Questions...)
			tt.mutate(s)

			var got *ValidationError
			for _, v := range StrictValidators(cfg) {
				if got = v.Validate(s); got != nil {
					break
				}
			}
			if tt.validator == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.validator, got.Validator)
		})
	}
}

func TestQuestionAnswerIndex(t *testing.T) {
	q := Question{Options: []string{"a", "b", "c", "d"}, Answer: "c"}
	assert.Equal(t, 2, q.AnswerIndex())
	assert.True(t, q.IsAnswer("c"))
	assert.False(t, q.IsAnswer("a"))

	q.Answer = "z"
	assert.Equal(t, -1, q.AnswerIndex())
}

func TestBuildUserMessage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Language = "English"
	msg := buildUserMessage("Volcanoes", cfg)

	assert.Contains(t, msg, `"Volcanoes"`)
	assert.Contains(t, msg, "in English")
	assert.Contains(t, msg, "5 highly engaging questions")
	assert.Contains(t, msg, "4 options")
	assert.Contains(t, msg, "99%")
}
