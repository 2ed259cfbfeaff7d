package quizscript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/viralquiz/internal/llm"
)

// Purpose labels requests made by LLMGenerator in the request log.
const Purpose = "quiz-script"

// LLMGenerator implements Generator with a single structured-output call.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	log      logrus.FieldLogger
}

// New creates an LLMGenerator. A nil logger discards output.
func New(provider llm.Provider, cfg Config, log logrus.FieldLogger) *LLMGenerator {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &LLMGenerator{provider: provider, config: cfg, log: log}
}

// Generate asks the provider for one script about topic. The topic is
// trimmed; a blank topic fails without contacting the provider.
func (g *LLMGenerator) Generate(ctx context.Context, topic string) (*Script, error) {
	raw := topic
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, &GenerationError{Topic: raw, Err: ErrEmptyTopic}
	}

	ctx = llm.WithPurpose(ctx, Purpose)
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	log := g.log.WithField("topic", topic)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{llm.UserMessage(buildUserMessage(topic, g.config))},
		Schema:      ScriptSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		log.WithError(err).Warn("script generation failed")
		return nil, &GenerationError{Topic: topic, Err: err}
	}

	var s Script
	if err := json.Unmarshal(resp.Content, &s); err != nil {
		log.WithError(err).Warn("script response is not valid JSON")
		return nil, &GenerationError{Topic: topic, Err: fmt.Errorf("parse script: %w", err)}
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(&s); verr != nil {
			log.WithField("validator", verr.Validator).Warn(verr.Message)
			return nil, &GenerationError{Topic: topic, Err: verr}
		}
	}

	log.WithField("questions", len(s.Questions)).Info("script generated")
	return &s, nil
}
