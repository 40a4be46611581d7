package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newOpenAICompatible("cerebras", BackendConfig{
		APIKey:  "test-key",
		Model:   "qwen-coder",
		BaseURL: server.URL + "/v1",
	}, defaultCerebrasBaseURL, cerebrasModels)
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "qwen-3-coder-480b",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 25,
			"total_tokens":      65,
		},
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	var body map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`[{"chapter_number":1}]`, "stop"))
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:      "You are an expert learning strategist.",
		Messages:    UserMessage("Build a web scraper"),
		MaxTokens:   20000,
		Temperature: 0.7,
		TopP:        0.8,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Content != `[{"chapter_number":1}]` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("expected stop reason end, got %q", resp.StopReason)
	}

	if body["model"] != "qwen-3-coder-480b" {
		t.Errorf("expected resolved model, got %v", body["model"])
	}
	if got, _ := body["top_p"].(float64); math.Abs(got-0.8) > 0.001 {
		t.Errorf("expected top_p 0.8, got %v", body["top_p"])
	}
	msgs, _ := body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if role := msgs[0].(map[string]any)["role"]; role != "system" {
		t.Errorf("expected system message first, got %v", role)
	}
}

func TestOpenAIProvider_ModelOverride(t *testing.T) {
	var body map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion("ok", "stop"))
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages: UserMessage("hi"),
		Model:    "qwen-3-235b-a22b-instruct-2507",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["model"] != "qwen-3-235b-a22b-instruct-2507" {
		t.Errorf("expected override model, got %v", body["model"])
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"rate limit", http.StatusTooManyRequests, func(t *testing.T, err error) {
			var rl *ErrRateLimit
			if !errors.As(err, &rl) {
				t.Errorf("expected ErrRateLimit, got %T", err)
			}
		}},
		{"server error", http.StatusInternalServerError, func(t *testing.T, err error) {
			var unavail *ErrProviderUnavailable
			if !errors.As(err, &unavail) {
				t.Errorf("expected ErrProviderUnavailable, got %T", err)
			}
		}},
		{"bad request", http.StatusBadRequest, func(t *testing.T, err error) {
			var unavail *ErrProviderUnavailable
			if errors.As(err, &unavail) {
				t.Error("expected 400 not to be treated as unavailable")
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"type": "error", "message": tt.name},
				})
			})
			_, err := p.Generate(context.Background(), Request{Messages: UserMessage("test")})
			if err == nil {
				t.Fatal("expected error")
			}
			tt.check(t, err)
		})
	}
}

func TestOpenAIProvider_Truncated(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`[{"chapter_nu`, "length"))
	})

	_, err := p.Generate(context.Background(), Request{Messages: UserMessage("test")})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T: %v", err, err)
	}
	if maxTok.Content != `[{"chapter_nu` {
		t.Errorf("expected partial content, got %q", maxTok.Content)
	}
}

func TestOpenAICompatibleConstructors(t *testing.T) {
	if _, err := NewOpenAIProvider(BackendConfig{}); err == nil {
		t.Error("expected error for OpenAI without API key")
	}
	if _, err := NewCerebrasProvider(BackendConfig{}); err == nil {
		t.Error("expected error for Cerebras without API key")
	}
	if _, err := NewOpenRouterProvider(BackendConfig{}); err == nil {
		t.Error("expected error for OpenRouter without API key")
	}

	tests := []struct {
		name string
		ctor func(BackendConfig) (*OpenAIProvider, error)
		cfg  BackendConfig
		want string
	}{
		{"cerebras alias", NewCerebrasProvider, BackendConfig{APIKey: "csk", Model: "qwen-instruct"}, "qwen-3-235b-a22b-instruct-2507"},
		{"openrouter pass-through", NewOpenRouterProvider, BackendConfig{APIKey: "sk-or", Model: "anthropic/claude-3-haiku"}, "anthropic/claude-3-haiku"},
		{"openai", NewOpenAIProvider, BackendConfig{APIKey: "sk", Model: "gpt-4o-mini"}, "gpt-4o-mini"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.ctor(tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ModelID() != tt.want {
				t.Errorf("ModelID() = %q, want %q", p.ModelID(), tt.want)
			}
		})
	}
}
