package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content string
	Usage   Usage
	Err     error
}

// Text is shorthand for a successful canned response.
func Text(content string) MockResponse {
	return MockResponse{Content: content}
}

// Fail is shorthand for a canned error.
func Fail(err error) MockResponse {
	return MockResponse{Err: err}
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
// When Respond is set it is consulted instead of the queue, which lets
// concurrent tests answer by request content rather than arrival order.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
	Purposes  []string
	Respond   func(ctx context.Context, req Request) MockResponse
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.Purposes = append(m.Purposes, PurposeFrom(ctx))
	respond := m.Respond

	var resp MockResponse
	switch {
	case respond != nil:
	case len(m.responses) == 0:
		m.mu.Unlock()
		return nil, &ErrProviderUnavailable{Err: nil}
	default:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	}
	m.mu.Unlock()

	if respond != nil {
		resp = respond(ctx, req)
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallsWithPurpose counts the Generate calls labelled with purpose.
func (m *MockProvider) CallsWithPurpose(purpose string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.Purposes {
		if p == purpose {
			n++
		}
	}
	return n
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
