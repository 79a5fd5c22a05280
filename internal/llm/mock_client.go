package llm

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of Client for testing. It records
// every prompt sequence it receives and returns a canned response or a
// canned error.
type MockClient struct {
	mu       sync.Mutex
	Response string
	Err      error
	Calls    [][]ChatMessage
}

// NewMockClient creates a mock client that answers with response.
func NewMockClient(response string) *MockClient {
	return &MockClient{Response: response}
}

// Ensure MockClient implements the Client interface.
var _ Client = (*MockClient)(nil)

func (m *MockClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	m.mu.Lock()
	recorded := make([]ChatMessage, len(messages))
	copy(recorded, messages)
	m.Calls = append(m.Calls, recorded)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// LastCall returns the most recent prompt sequence, or nil when the
// client was never invoked.
func (m *MockClient) LastCall() []ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return nil
	}
	return m.Calls[len(m.Calls)-1]
}
