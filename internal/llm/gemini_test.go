package llm

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMapGeminiError(t *testing.T) {
	var rl *ErrRateLimit
	if !errors.As(mapGeminiError(genai.APIError{Code: http.StatusTooManyRequests}), &rl) {
		t.Error("expected 429 to map to ErrRateLimit")
	}

	var unavail *ErrProviderUnavailable
	if !errors.As(mapGeminiError(genai.APIError{Code: http.StatusBadGateway}), &unavail) {
		t.Error("expected 502 to map to ErrProviderUnavailable")
	}
	if !errors.As(mapGeminiError(errors.New("dial tcp: refused")), &unavail) {
		t.Error("expected network error to map to ErrProviderUnavailable")
	}

	if errors.As(mapGeminiError(genai.APIError{Code: http.StatusBadRequest}), &unavail) {
		t.Error("expected 400 not to be treated as unavailable")
	}
}

func TestBuildGeminiContents(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "plan a course"},
		{Role: RoleAssistant, Content: "[]"},
	})
	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" || contents[1].Role != "model" {
		t.Errorf("unexpected roles: %q, %q", contents[0].Role, contents[1].Role)
	}
	if contents[0].Parts[0].Text != "plan a course" {
		t.Errorf("unexpected text: %q", contents[0].Parts[0].Text)
	}
}
