package llm

import (
	"context"
)

// Provider is the core abstraction for text completion.
// Consumers call Generate with a Request and receive the raw model text.
type Provider interface {
	// Generate sends the conversation to the backend and returns its text.
	// Parsing the text is the caller's concern (see package llmjson).
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the model's role and output contract.
	System string

	// Messages is the conversation history. Pipeline calls are single-turn
	// and carry one user message.
	Messages []Message

	// Model overrides the backend's configured model when non-empty.
	Model string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Zero leaves the backend default.
	Temperature float64

	// TopP is nucleus sampling. Zero leaves the backend default.
	TopP float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserMessage is shorthand for a single-turn conversation.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Response holds the LLM's output.
type Response struct {
	// Content is the raw generated text.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// modelFor picks the request model, falling back to the configured one.
func modelFor(req Request, configured string) string {
	if req.Model != "" {
		return req.Model
	}
	return configured
}
