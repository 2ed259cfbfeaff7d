package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingProvider records every request on a logrus logger: provider,
// purpose, token usage, latency and estimated cost.
type LoggingProvider struct {
	inner    Provider
	provider string
	log      logrus.FieldLogger
}

// WithLogging wraps p so each Generate call is logged.
func WithLogging(p Provider, provider string, log logrus.FieldLogger) Provider {
	return &LoggingProvider{inner: p, provider: provider, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := logrus.Fields{
		"provider":   l.provider,
		"model":      l.inner.ModelID(),
		"purpose":    PurposeFrom(ctx),
		"latency_ms": time.Since(start).Milliseconds(),
	}
	if req.Schema != nil {
		fields["schema"] = req.Schema.Name
	}

	if err != nil {
		l.log.WithFields(fields).WithError(err).Warn("llm request failed")
		return nil, err
	}

	fields["model"] = resp.Model
	fields["input_tokens"] = resp.Usage.InputTokens
	fields["output_tokens"] = resp.Usage.OutputTokens
	if c := LookupCost(resp.Model); c != nil {
		fields["cost_usd"] = c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}
	l.log.WithFields(fields).Info("llm request completed")
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
