package quizscript

import "context"

// Generator turns a topic into a quiz script.
type Generator interface {
	// Generate makes one attempt for topic. It returns a complete Script
	// or a *GenerationError, never a partial result.
	Generate(ctx context.Context, topic string) (*Script, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, topic string) (*Script, error)

func (f GeneratorFunc) Generate(ctx context.Context, topic string) (*Script, error) {
	return f(ctx, topic)
}
