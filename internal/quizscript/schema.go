package quizscript

import "github.com/abhisek/viralquiz/internal/llm"

// ScriptSchema is the structured-output schema sent with every request.
// Every field is required; array lengths are guidance in the prompt only.
var ScriptSchema = &llm.Schema{
	Name:        "quiz-script",
	Description: "A high-retention short-form quiz video script",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{"type": "string"},
			"intro": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"visualDescription": map[string]any{
						"type":        "string",
						"description": "Pattern-interrupt visual for the first seconds",
					},
					"text": map[string]any{
						"type":        "string",
						"description": "Shocking opening line, no greeting",
					},
				},
				"required":             []string{"visualDescription", "text"},
				"additionalProperties": false,
			},
			"hook": map[string]any{
				"type":        "string",
				"description": "Challenge line claiming most viewers fail",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "Must be exactly one of the options",
						},
						"fact": map[string]any{
							"type":        "string",
							"description": "Short explanation shown with the answer",
						},
					},
					"required":             []string{"question", "options", "answer", "fact"},
					"additionalProperties": false,
				},
			},
			"twist": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":       map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
				},
				"required":             []string{"title", "description"},
				"additionalProperties": false,
			},
			"cta": map[string]any{
				"type":        "string",
				"description": "Ask for likes based on the viewer's score",
			},
		},
		"required":             []string{"topic", "intro", "hook", "questions", "twist", "cta"},
		"additionalProperties": false,
	},
}
