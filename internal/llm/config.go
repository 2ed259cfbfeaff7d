package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// envPrefix namespaces every variable read by ConfigFromEnv.
const envPrefix = "VIRALQUIZ_"

// Config selects and configures the completion provider.
type Config struct {
	// Provider is one of the Provider* constants. Default: gemini.
	Provider string

	Gemini     ProviderConfig
	OpenAI     ProviderConfig
	Anthropic  ProviderConfig
	OpenRouter ProviderConfig
	Retry      RetryConfig

	// Timeout bounds a single generation including retries. Zero means
	// the call may take as long as the provider takes.
	Timeout time.Duration
}

// ProviderConfig holds the credentials and model for one provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string // OpenAI-compatible providers only
}

// RetryConfig configures retries of transient failures. MaxAttempts of 1
// (the default) sends each request exactly once.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig targets Gemini Flash with no retries and no timeout.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGemini,
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.5-flash", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv overlays VIRALQUIZ_* variables on DefaultConfig.
//
// The Gemini key falls back to GEMINI_API_KEY and then API_KEY, the
// variable the hosted build of the app was deployed with. Other providers
// fall back to their vendor's conventional variable.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setString(&cfg.Provider, envPrefix+"LLM_PROVIDER")

	setString(&cfg.Gemini.APIKey, envPrefix+"GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY")
	setString(&cfg.Gemini.Model, envPrefix+"GEMINI_MODEL")

	setString(&cfg.OpenAI.APIKey, envPrefix+"OPENAI_API_KEY", "OPENAI_API_KEY")
	setString(&cfg.OpenAI.Model, envPrefix+"OPENAI_MODEL")
	setString(&cfg.OpenAI.BaseURL, envPrefix+"OPENAI_BASE_URL")

	setString(&cfg.Anthropic.APIKey, envPrefix+"ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	setString(&cfg.Anthropic.Model, envPrefix+"ANTHROPIC_MODEL")

	setString(&cfg.OpenRouter.APIKey, envPrefix+"OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
	setString(&cfg.OpenRouter.Model, envPrefix+"OPENROUTER_MODEL")

	if v := os.Getenv(envPrefix + "LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv(envPrefix + "LLM_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Retry.MaxAttempts = n
		}
	}

	return cfg
}

// setString assigns the first non-empty variable among keys to dst.
func setString(dst *string, keys ...string) {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			*dst = v
			return
		}
	}
}

// Selected returns the settings of the chosen provider.
func (c Config) Selected() (ProviderConfig, error) {
	switch c.Provider {
	case ProviderGemini:
		return c.Gemini, nil
	case ProviderOpenAI:
		return c.OpenAI, nil
	case ProviderAnthropic:
		return c.Anthropic, nil
	case ProviderOpenRouter:
		return c.OpenRouter, nil
	case ProviderMock:
		return ProviderConfig{Model: "mock"}, nil
	default:
		return ProviderConfig{}, fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}

// Validate checks that the provider is known and has a key. A missing key
// is reported wrapping ErrMissingAPIKey so callers may choose to defer it.
func (c Config) Validate() error {
	pc, err := c.Selected()
	if err != nil {
		return err
	}
	if c.Provider != ProviderMock && pc.APIKey == "" {
		return fmt.Errorf("%s%s_API_KEY: %w", envPrefix, strings.ToUpper(c.Provider), ErrMissingAPIKey)
	}
	return nil
}
