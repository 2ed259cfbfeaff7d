package quizscript

import "time"

// Config controls LLMGenerator.
type Config struct {
	// Language of every text field in the script. Default: Bengali.
	Language string

	// Questions and Options are the counts requested in the prompt.
	Questions int
	Options   int

	// Validators run in order on the parsed script; the first failure
	// fails the generation. Empty by default.
	Validators []Validator

	MaxTokens   int
	Temperature float64

	// Timeout bounds one generation. Zero means no limit.
	Timeout time.Duration
}

// DefaultConfig requests five four-option questions in Bengali and
// accepts whatever the model returns as long as it matches ScriptSchema.
func DefaultConfig() Config {
	return Config{
		Language:  "Bengali (বাংলা)",
		Questions: 5,
		Options:   4,
		MaxTokens: 8192,
	}
}

// StrictConfig is DefaultConfig plus the full validator chain.
func StrictConfig() Config {
	cfg := DefaultConfig()
	cfg.Validators = StrictValidators(cfg)
	return cfg
}
