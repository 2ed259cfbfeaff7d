package quizscript

import (
	"fmt"
	"strings"
)

// Validator checks a parsed script. Implementations are stateless.
type Validator interface {
	Name() string
	Validate(s *Script) *ValidationError
}

// ValidationError describes why a script was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StrictValidators returns the chain used in strict mode.
func StrictValidators(cfg Config) []Validator {
	return []Validator{
		&StructuralValidator{},
		&CountValidator{Questions: cfg.Questions, Options: cfg.Options},
		&AnswerValidator{},
	}
}

// StructuralValidator rejects blank text fields.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(s *Script) *ValidationError {
	fields := []struct{ name, value string }{
		{"intro.text", s.Intro.Text},
		{"intro.visualDescription", s.Intro.VisualDescription},
		{"hook", s.Hook},
		{"twist.title", s.Twist.Title},
		{"twist.description", s.Twist.Description},
		{"cta", s.CTA},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Validator: v.Name(), Message: f.name + " is empty"}
		}
	}
	for i, q := range s.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("questions[%d].question is empty", i)}
		}
	}
	return nil
}

// CountValidator enforces the number of questions and options.
// A zero count disables that check.
type CountValidator struct {
	Questions int
	Options   int
}

func (v *CountValidator) Name() string { return "count" }

func (v *CountValidator) Validate(s *Script) *ValidationError {
	if v.Questions > 0 && len(s.Questions) != v.Questions {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d questions, got %d", v.Questions, len(s.Questions)),
		}
	}
	if v.Options > 0 {
		for i, q := range s.Questions {
			if len(q.Options) != v.Options {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("questions[%d]: expected %d options, got %d", i, v.Options, len(q.Options)),
				}
			}
		}
	}
	return nil
}

// AnswerValidator requires each answer to be one of its options, and the
// options to be distinct.
type AnswerValidator struct{}

func (v *AnswerValidator) Name() string { return "answer" }

func (v *AnswerValidator) Validate(s *Script) *ValidationError {
	for i, q := range s.Questions {
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if seen[o] {
				return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("questions[%d]: duplicate option %q", i, o)}
			}
			seen[o] = true
		}
		if q.AnswerIndex() < 0 {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("questions[%d]: answer %q is not an option", i, q.Answer)}
		}
	}
	return nil
}
