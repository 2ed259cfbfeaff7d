package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// NewProvider builds the configured provider wrapped as
// caller → retry → logging → provider.
//
// A missing API key does not fail construction: the returned provider
// reports ErrProviderUnavailable wrapping ErrMissingAPIKey on every call,
// so the app can start and surface the failure when a script is requested.
func NewProvider(ctx context.Context, cfg Config, log logrus.FieldLogger) (Provider, error) {
	pc, err := cfg.Selected()
	if err != nil {
		return nil, err
	}

	var base Provider
	switch cfg.Provider {
	case ProviderMock:
		base = NewMockProvider()
	case ProviderGemini:
		base, err = lazy(pc, func() (Provider, error) { return NewGeminiProvider(ctx, pc) })
	case ProviderOpenAI:
		base, err = lazy(pc, func() (Provider, error) { return NewOpenAIProvider(pc) })
	case ProviderAnthropic:
		base, err = lazy(pc, func() (Provider, error) { return NewAnthropicProvider(pc) })
	case ProviderOpenRouter:
		base, err = lazy(pc, func() (Provider, error) { return NewOpenRouterProvider(pc) })
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, log)
	return WithRetry(logged, cfg.Retry), nil
}

func lazy(pc ProviderConfig, build func() (Provider, error)) (Provider, error) {
	if pc.APIKey == "" {
		return unconfigured{model: pc.Model}, nil
	}
	return build()
}

// unconfigured stands in for a provider whose key is missing.
type unconfigured struct {
	model string
}

func (u unconfigured) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{Err: ErrMissingAPIKey}
}

func (u unconfigured) ModelID() string { return u.model }
