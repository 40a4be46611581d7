package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{
		client: &client,
		model:  "claude-haiku-4-5-20251001",
	}
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	var body map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage("Here is the article:\n# Loops", "end_turn"))
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:      "You write tutorials.",
		Messages:    UserMessage("Write about loops"),
		Temperature: 0.7,
		TopP:        0.8,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Content != "Here is the article:\n# Loops" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
	if resp.Usage.InputTokens != 50 {
		t.Errorf("expected 50 input tokens, got %d", resp.Usage.InputTokens)
	}
	if resp.Usage.TotalTokens != 80 {
		t.Errorf("expected 80 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if resp.StopReason != "end" {
		t.Errorf("expected stop reason end, got %q", resp.StopReason)
	}
	if got, _ := body["max_tokens"].(float64); int(got) != defaultAnthropicMaxTokens {
		t.Errorf("expected max_tokens %d, got %v", defaultAnthropicMaxTokens, body["max_tokens"])
	}
	if got, _ := body["top_p"].(float64); math.Abs(got-0.8) > 0.001 {
		t.Errorf("expected top_p 0.8, got %v", body["top_p"])
	}
}

func TestAnthropicProvider_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		errType string
		check   func(t *testing.T, err error)
	}{
		{"rate limit", http.StatusTooManyRequests, "rate_limit_error", func(t *testing.T, err error) {
			var rl *ErrRateLimit
			if !errors.As(err, &rl) {
				t.Errorf("expected ErrRateLimit, got %T", err)
			}
		}},
		{"server error", http.StatusInternalServerError, "api_error", func(t *testing.T, err error) {
			var unavail *ErrProviderUnavailable
			if !errors.As(err, &unavail) {
				t.Errorf("expected ErrProviderUnavailable, got %T", err)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"type":  "error",
					"error": map[string]any{"type": tt.errType, "message": tt.name},
				})
			})
			_, err := p.Generate(context.Background(), Request{Messages: UserMessage("test"), MaxTokens: 100})
			if err == nil {
				t.Fatal("expected error")
			}
			tt.check(t, err)
		})
	}
}

func TestAnthropicProvider_MaxTokens(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"questions":[`, "max_tokens"))
	})

	_, err := p.Generate(context.Background(), Request{Messages: UserMessage("quiz"), MaxTokens: 10})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T: %v", err, err)
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-5-20250929"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-opus-4-1", "claude-opus-4-1"}, // Pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, anthropicModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
