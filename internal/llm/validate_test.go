package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", `{"question":"q","answer":"a"}`, false},
		{"missing field", `{"question":"q"}`, true},
		{"extra field", `{"question":"q","answer":"a","x":1}`, true},
		{"wrong type", `{"question":1,"answer":"a"}`, true},
		{"not json", `here is your quiz`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(pairSchema, json.RawMessage(tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
				if string(inv.Content) != tt.content {
					t.Fatalf("expected offending content to be kept, got %q", inv.Content)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	s := &Schema{Name: "cache-probe", Definition: map[string]any{"type": "object"}}
	if err := validateResponse(s, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := compiledSchemas.Load("cache-probe"); !ok {
		t.Fatal("expected compiled schema to be cached")
	}
}
