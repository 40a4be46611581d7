package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const defaultOllamaURL = "http://localhost:11434"

// LangChainProvider adapts any langchaingo model to Provider. It backs the
// "ollama" provider for local models.
type LangChainProvider struct {
	model llms.Model
	name  string
}

// NewOllamaProvider creates a provider for a local Ollama server.
func NewOllamaProvider(cfg BackendConfig) (*LangChainProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model is required")
	}
	serverURL := cfg.BaseURL
	if serverURL == "" {
		serverURL = defaultOllamaURL
	}

	m, err := ollama.New(ollama.WithModel(cfg.Model), ollama.WithServerURL(serverURL))
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	return NewLangChainProvider(m, cfg.Model), nil
}

// NewLangChainProvider wraps a langchaingo model.
func NewLangChainProvider(m llms.Model, name string) *LangChainProvider {
	return &LangChainProvider{model: m, name: name}
}

func (p *LangChainProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var history []llms.MessageContent
	if req.System != "" {
		history = append(history, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	for _, m := range req.Messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		history = append(history, llms.TextParts(role, m.Content))
	}

	var opts []llms.CallOption
	if req.Model != "" {
		opts = append(opts, llms.WithModel(req.Model))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(req.Temperature))
	}
	if req.TopP > 0 {
		opts = append(opts, llms.WithTopP(req.TopP))
	}

	resp, err := p.model.GenerateContent(ctx, history, opts...)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("no content in %s response", p.name)}
	}

	choice := resp.Choices[0]
	usage := Usage{
		InputTokens:  infoInt(choice.GenerationInfo, "PromptTokens"),
		OutputTokens: infoInt(choice.GenerationInfo, "CompletionTokens"),
	}
	usage.TotalTokens = usage.InputTokens + usage.OutputTokens

	return &Response{
		Content:    choice.Content,
		Usage:      usage,
		Model:      modelFor(req, p.name),
		StopReason: "end",
	}, nil
}

func (p *LangChainProvider) ModelID() string {
	return p.name
}

func infoInt(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
