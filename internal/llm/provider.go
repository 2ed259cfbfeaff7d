package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction over a completion service.
// Callers send a Request and receive JSON content back.
type Provider interface {
	// Generate sends a prompt to the model and returns its response.
	// When req.Schema is set the provider asks for structured output and
	// the returned Content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Request describes one completion call.
type Request struct {
	// System is the system instruction.
	System string

	// Messages is the conversation. Script generation is single turn,
	// so this usually holds exactly one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. Nil means
	// free text, returned as-is in Content.
	Schema *Schema

	// MaxTokens caps the response length. Zero leaves the provider default.
	MaxTokens int

	// Temperature in the range 0.0 - 1.0. Zero leaves the provider default.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserMessage is shorthand for a single user turn.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "quiz-script").
	Name string

	// Description guides the model and is sent where the provider allows it.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string // normalized: "end", "max_tokens", "error"
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly alias to a provider model ID. Unknown
// names pass through so full model IDs can be configured directly.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
