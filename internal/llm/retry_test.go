package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry(t *testing.T) {
	down := &ErrProviderUnavailable{Err: errors.New("down")}
	invalid := &ErrInvalidResponse{Err: errors.New("empty")}

	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt succeeds", []MockResponse{Text("ok")}, false, 1},
		{"transient then success", []MockResponse{Fail(down), Text("ok")}, false, 2},
		{"all attempts fail", []MockResponse{Fail(down), Fail(down), Fail(down), Text("unreached")}, true, 3},
		{"max tokens not retried", []MockResponse{Fail(&ErrMaxTokensExceeded{}), Text("unreached")}, true, 1},
		{"rejected not retried", []MockResponse{Fail(&ErrRejected{Provider: "cerebras", Err: errors.New("400")}), Text("unreached")}, true, 1},
		{"invalid response retried once", []MockResponse{Fail(invalid), Fail(invalid), Text("unreached")}, true, 2},
		{"rate limit retried", []MockResponse{Fail(&ErrRateLimit{RetryAfter: time.Millisecond}), Text("ok")}, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, retryConfig())

			resp, err := p.Generate(context.Background(), Request{})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.Content != "ok" {
					t.Errorf("unexpected content: %q", resp.Content)
				}
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("expected %d calls, got %d", tt.wantCalls, mock.CallCount())
			}
		})
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(
		Fail(&ErrProviderUnavailable{Err: errors.New("down")}),
		Text("unreached"),
	)
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 2})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call before cancellation, got %d", mock.CallCount())
	}
}

func TestRetry_BackoffBounded(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}}
	for attempt := range 6 {
		wait := r.backoff(attempt, errors.New("x"))
		if wait > 360*time.Millisecond || wait < 80*time.Millisecond {
			t.Errorf("attempt %d: wait %v outside [80ms, 360ms]", attempt, wait)
		}
	}
	if got := r.backoff(0, &ErrRateLimit{RetryAfter: 5 * time.Second}); got != 5*time.Second {
		t.Errorf("expected Retry-After to win, got %v", got)
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	if got := WithRetry(NewMockProvider(), retryConfig()).ModelID(); got != "mock" {
		t.Errorf("expected mock, got %q", got)
	}
}
