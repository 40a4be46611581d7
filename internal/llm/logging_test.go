package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/coursegen/internal/store"
)

type recordingEventRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, data)
	return nil
}

func (r *recordingEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (r *recordingEventRepo) GetLLMEvent(context.Context, int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (r *recordingEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}

func (r *recordingEventRepo) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func TestLoggingProviderRecordsSuccess(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: `[{"chapter_number":1}]`,
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(mock, "cerebras", repo)

	ctx := WithPurpose(context.Background(), "chapter_plan")
	resp, err := p.Generate(ctx, Request{
		System:      "plan a course",
		Messages:    UserMessage("Learn Rust"),
		MaxTokens:   20000,
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != `[{"chapter_number":1}]` {
		t.Errorf("unexpected content: %s", resp.Content)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "cerebras" || ev.Model != "mock" || ev.Purpose != "chapter_plan" {
		t.Errorf("unexpected identity: provider=%q model=%q purpose=%q", ev.Provider, ev.Model, ev.Purpose)
	}
	if !ev.Success {
		t.Error("expected success")
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Errorf("unexpected tokens: in=%d out=%d", ev.InputTokens, ev.OutputTokens)
	}
	for _, want := range []string{"[system]\nplan a course", "[user]\nLearn Rust", "max_tokens=20000"} {
		if !strings.Contains(ev.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, ev.RequestBody)
		}
	}
	if ev.ResponseBody != `[{"chapter_number":1}]` {
		t.Errorf("unexpected response body: %s", ev.ResponseBody)
	}
}

func TestLoggingProviderRecordsFailure(t *testing.T) {
	repo := &recordingEventRepo{}
	p := WithLogging(NewMockProvider(Fail(errors.New("upstream exploded"))), "openrouter", repo)

	_, err := p.Generate(context.Background(), Request{Messages: UserMessage("hi"), Model: "qwen/qwen3-coder"})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected failure to be recorded")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("expected purpose unknown, got %q", ev.Purpose)
	}
	if ev.Model != "qwen/qwen3-coder" {
		t.Errorf("expected request model, got %q", ev.Model)
	}
	if ev.ErrorMessage != "upstream exploded" {
		t.Errorf("unexpected error message: %q", ev.ErrorMessage)
	}
}

func TestLoggingProviderIgnoresRepoErrors(t *testing.T) {
	repo := &recordingEventRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(Text("ok")), "cerebras", repo)

	resp, err := p.Generate(context.Background(), Request{Messages: UserMessage("hi")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "ok" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
}

func TestLoggingProviderNilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(Text("ok")), "cerebras", nil)
	if _, err := p.Generate(context.Background(), Request{Messages: UserMessage("hi")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("expected model mock, got %q", p.ModelID())
	}
}
