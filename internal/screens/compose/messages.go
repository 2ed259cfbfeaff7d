package compose

import "github.com/abhisek/viralquiz/internal/quizscript"

// scriptReadyMsg is sent when a generation attempt finishes.
type scriptReadyMsg struct {
	Seq    int
	Topic  string
	Script *quizscript.Script
	Err    error
}
