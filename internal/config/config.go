// Package config loads the optional viralquiz.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/viralquiz/internal/llm"
	"github.com/abhisek/viralquiz/internal/logging"
	"github.com/abhisek/viralquiz/internal/playback"
	"github.com/abhisek/viralquiz/internal/quizscript"
)

// DefaultAddr is the serve command's listen address.
const DefaultAddr = ":8080"

// Config mirrors the YAML file. Durations are Go duration strings
// ("3s", "1500ms"); empty values keep the built-in defaults.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Log logging.Config `yaml:"log"`

	Quiz struct {
		Language  string `yaml:"language"`
		Questions int    `yaml:"questions"`
		Options   int    `yaml:"options"`
		Strict    bool   `yaml:"strict"`
		MaxTokens int    `yaml:"max_tokens"`
		Timeout   string `yaml:"timeout"`
	} `yaml:"quiz"`

	Playback struct {
		Intro     string `yaml:"intro"`
		Hook      string `yaml:"hook"`
		Tick      string `yaml:"tick"`
		Countdown int    `yaml:"countdown"`
		Reveal    string `yaml:"reveal"`
		Twist     string `yaml:"twist"`
	} `yaml:"playback"`

	LLM struct {
		Provider    string `yaml:"provider"`
		Model       string `yaml:"model"`
		Timeout     string `yaml:"timeout"`
		MaxAttempts int    `yaml:"max_attempts"`
	} `yaml:"llm"`
}

// Default returns the configuration used without a file.
func Default() Config {
	var cfg Config
	cfg.Server.Addr = DefaultAddr
	return cfg
}

// Load reads YAML config from path. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	check := func(key, raw string) {
		if raw == "" {
			return
		}
		if d, err := time.ParseDuration(raw); err != nil || d < 0 {
			errs = append(errs, fmt.Errorf("%s: invalid duration %q", key, raw))
		}
	}
	check("quiz.timeout", c.Quiz.Timeout)
	check("llm.timeout", c.LLM.Timeout)
	check("playback.intro", c.Playback.Intro)
	check("playback.hook", c.Playback.Hook)
	check("playback.tick", c.Playback.Tick)
	check("playback.reveal", c.Playback.Reveal)
	check("playback.twist", c.Playback.Twist)
	if c.Playback.Countdown < 0 {
		errs = append(errs, fmt.Errorf("playback.countdown: must not be negative"))
	}
	return errors.Join(errs...)
}

// Duration parses a duration string or returns the fallback if empty.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// QuizConfig returns the generator settings. Strict mode installs the
// full validator chain for the configured counts.
func (c Config) QuizConfig() quizscript.Config {
	cfg := quizscript.DefaultConfig()
	if c.Quiz.Language != "" {
		cfg.Language = c.Quiz.Language
	}
	if c.Quiz.Questions > 0 {
		cfg.Questions = c.Quiz.Questions
	}
	if c.Quiz.Options > 0 {
		cfg.Options = c.Quiz.Options
	}
	if c.Quiz.MaxTokens > 0 {
		cfg.MaxTokens = c.Quiz.MaxTokens
	}
	cfg.Timeout = Duration(c.Quiz.Timeout, 0)
	if c.Quiz.Strict {
		cfg.Validators = quizscript.StrictValidators(cfg)
	}
	return cfg
}

// Timings returns the playback stage durations. Unset fields are zero and
// take their defaults inside the sequencer.
func (c Config) Timings() playback.Timings {
	return playback.Timings{
		Intro:     Duration(c.Playback.Intro, 0),
		Hook:      Duration(c.Playback.Hook, 0),
		Tick:      Duration(c.Playback.Tick, 0),
		Countdown: c.Playback.Countdown,
		Reveal:    Duration(c.Playback.Reveal, 0),
		Twist:     Duration(c.Playback.Twist, 0),
	}
}

// ApplyLLM overlays the file's llm section on cfg. Values from the file
// win over the environment; API keys only ever come from the environment.
func (c Config) ApplyLLM(cfg *llm.Config) {
	if c.LLM.Provider != "" {
		cfg.Provider = c.LLM.Provider
	}
	if c.LLM.Model != "" {
		switch cfg.Provider {
		case llm.ProviderGemini:
			cfg.Gemini.Model = c.LLM.Model
		case llm.ProviderOpenAI:
			cfg.OpenAI.Model = c.LLM.Model
		case llm.ProviderAnthropic:
			cfg.Anthropic.Model = c.LLM.Model
		case llm.ProviderOpenRouter:
			cfg.OpenRouter.Model = c.LLM.Model
		}
	}
	if c.LLM.Timeout != "" {
		cfg.Timeout = Duration(c.LLM.Timeout, cfg.Timeout)
	}
	if c.LLM.MaxAttempts > 0 {
		cfg.Retry.MaxAttempts = c.LLM.MaxAttempts
	}
}
