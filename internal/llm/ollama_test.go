package llm

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/tmc/langchaingo/llms"
)

type fakeLangChainModel struct {
	messages []llms.MessageContent
	opts     llms.CallOptions
	resp     *llms.ContentResponse
	err      error
}

func (f *fakeLangChainModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	for _, o := range options {
		o(&f.opts)
	}
	return f.resp, f.err
}

func (f *fakeLangChainModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestLangChainProvider_Generate(t *testing.T) {
	fake := &fakeLangChainModel{resp: &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			Content:        `{"query":"python loops"}`,
			GenerationInfo: map[string]any{"PromptTokens": 12, "CompletionTokens": 8},
		}},
	}}
	p := NewLangChainProvider(fake, "llama3")

	resp, err := p.Generate(context.Background(), Request{
		System:      "Return JSON.",
		Messages:    UserMessage("loops"),
		MaxTokens:   512,
		Temperature: 0.7,
		TopP:        0.8,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Content != `{"query":"python loops"}` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 20 {
		t.Errorf("expected 20 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if resp.Model != "llama3" {
		t.Errorf("expected model llama3, got %q", resp.Model)
	}
	if len(fake.messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(fake.messages))
	}
	if fake.messages[0].Role != llms.ChatMessageTypeSystem || fake.messages[1].Role != llms.ChatMessageTypeHuman {
		t.Errorf("unexpected roles: %q, %q", fake.messages[0].Role, fake.messages[1].Role)
	}
	if fake.opts.MaxTokens != 512 {
		t.Errorf("expected max tokens 512, got %d", fake.opts.MaxTokens)
	}
	if math.Abs(fake.opts.TopP-0.8) > 0.001 {
		t.Errorf("expected top_p 0.8, got %v", fake.opts.TopP)
	}
}

func TestLangChainProvider_Errors(t *testing.T) {
	p := NewLangChainProvider(&fakeLangChainModel{err: errors.New("connection refused")}, "llama3")
	_, err := p.Generate(context.Background(), Request{Messages: UserMessage("x")})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected ErrProviderUnavailable, got %T: %v", err, err)
	}

	p = NewLangChainProvider(&fakeLangChainModel{resp: &llms.ContentResponse{}}, "llama3")
	_, err = p.Generate(context.Background(), Request{Messages: UserMessage("x")})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Errorf("expected ErrInvalidResponse, got %T: %v", err, err)
	}
}
