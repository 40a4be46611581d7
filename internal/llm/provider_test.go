package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: `[{"chapter_number":1}]`, Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		Text(`{"questions":[]}`),
	)

	resp, err := mock.Generate(context.Background(), Request{Messages: UserMessage("first")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != `[{"chapter_number":1}]` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.InputTokens != 10 {
		t.Errorf("expected 10 input tokens, got %d", resp.Usage.InputTokens)
	}
	if resp.StopReason != "end" {
		t.Errorf("expected stop reason end, got %q", resp.StopReason)
	}

	resp, err = mock.Generate(context.Background(), Request{Messages: UserMessage("second")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != `{"questions":[]}` {
		t.Errorf("unexpected content: %s", resp.Content)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("empty queue must fail with ErrProviderUnavailable, got %v", err)
	}
}

func TestMockProvider_RecordsCallsAndPurposes(t *testing.T) {
	mock := NewMockProvider(Text("a"), Fail(&ErrRateLimit{}))

	ctx := WithPurpose(context.Background(), "quiz")
	_, _ = mock.Generate(ctx, Request{System: "sys", Messages: UserMessage("hello")})
	_, err := mock.Generate(context.Background(), Request{})

	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("expected ErrRateLimit, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Errorf("expected recorded system prompt, got %q", mock.Calls[0].System)
	}
	if mock.CallsWithPurpose("quiz") != 1 || mock.CallsWithPurpose("unknown") != 1 {
		t.Errorf("unexpected purpose counts: quiz=%d unknown=%d",
			mock.CallsWithPurpose("quiz"), mock.CallsWithPurpose("unknown"))
	}
}

func TestMockProvider_RespondIsConcurrencySafe(t *testing.T) {
	mock := NewMockProvider()
	mock.Respond = func(_ context.Context, req Request) MockResponse {
		return Text("echo:" + req.Messages[0].Content)
	}

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg := string(rune('a' + i))
			resp, err := mock.Generate(context.Background(), Request{Messages: UserMessage(msg)})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if resp.Content != "echo:"+msg {
				t.Errorf("expected echo:%s, got %q", msg, resp.Content)
			}
		}()
	}
	wg.Wait()
	if mock.CallCount() != 20 {
		t.Errorf("expected 20 calls, got %d", mock.CallCount())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("expected unknown, got %q", got)
	}
	if got := PurposeFrom(WithPurpose(ctx, "lesson-plan")); got != "lesson-plan" {
		t.Errorf("expected lesson-plan, got %q", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"cerebras without key", Config{Primary: BackendConfig{Provider: ProviderCerebras}}, true},
		{"cerebras with key", Config{Primary: BackendConfig{Provider: ProviderCerebras, APIKey: "csk"}}, false},
		{"no primary", Config{}, true},
		{"mock needs no key", Config{Primary: BackendConfig{Provider: ProviderMock}}, false},
		{"ollama needs model", Config{Primary: BackendConfig{Provider: ProviderOllama}}, true},
		{"unknown provider", Config{Primary: BackendConfig{Provider: "unknown"}}, true},
		{
			"bad secondary",
			Config{
				Primary:   BackendConfig{Provider: ProviderCerebras, APIKey: "csk"},
				Secondary: BackendConfig{Provider: ProviderOpenRouter},
			},
			true,
		},
		{
			"both configured",
			Config{
				Primary:   BackendConfig{Provider: ProviderCerebras, APIKey: "csk-1"},
				Secondary: BackendConfig{Provider: ProviderCerebras, APIKey: "csk-2"},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
