package llm

import (
	"context"
	"sync"
)

// MockClient is an in-memory Client for tests. It returns queued responses
// in order and records every request it receives.
type MockClient struct {
	mu        sync.Mutex
	responses []string
	err       error
	requests  []*Request
}

// NewMockClient creates a mock that replies with the given contents, one
// per call. The last response is repeated when calls outnumber responses.
func NewMockClient(responses ...string) *MockClient {
	return &MockClient{responses: responses}
}

// FailWith makes every Generate call return err.
func (m *MockClient) FailWith(err error) *MockClient {
	m.err = err
	return m
}

func (m *MockClient) Generate(_ context.Context, req *Request) (*Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	content := ""
	if len(m.responses) > 0 {
		idx := len(m.requests) - 1
		if idx >= len(m.responses) {
			idx = len(m.responses) - 1
		}
		content = m.responses[idx]
	}
	return &Completion{
		Model: req.Model,
		Choices: []Choice{
			{Message: Message{Role: RoleAssistant, Content: content}, FinishReason: "stop"},
		},
	}, nil
}

// Requests returns a copy of the recorded requests.
func (m *MockClient) Requests() []*Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// CallCount reports how many Generate calls were made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
