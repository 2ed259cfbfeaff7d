package quizscript

import (
	"errors"
	"fmt"
)

// FailureMessage is the user-facing text shown for any generation failure.
const FailureMessage = "স্ক্রিপ্ট জেনারেট করতে সমস্যা হয়েছে। দয়া করে আবার চেষ্টা করুন।"

// ErrEmptyTopic is returned for a blank topic; no request is sent.
var ErrEmptyTopic = errors.New("topic is empty")

// GenerationError wraps every failure of a generation attempt: provider,
// transport, malformed JSON, schema mismatch or strict validation.
type GenerationError struct {
	Topic string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate script for %q: %v", e.Topic, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// IsGenerationError reports whether err is or wraps a *GenerationError.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
