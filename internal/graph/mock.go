package graph

import (
	"context"
	"sync"
)

// MockDriver is a scripted Driver implementation for tests. Responses are
// served in the order they were enqueued; once the script runs out,
// queries return an empty Result.
type MockDriver struct {
	mu        sync.Mutex
	connected bool
	closed    bool
	queries   []string
	script    []mockResponse

	// ConnectErr, when set, is returned by Connect.
	ConnectErr error
}

type mockResponse struct {
	result *Result
	err    error
}

// NewMockDriver creates an empty mock driver.
func NewMockDriver() *MockDriver {
	return &MockDriver{}
}

// Enqueue adds a scripted response for the next query.
func (m *MockDriver) Enqueue(result *Result, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, mockResponse{result: result, err: err})
}

// Connect marks the driver connected, or fails with ConnectErr.
func (m *MockDriver) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ConnectErr != nil {
		return m.ConnectErr
	}
	m.connected = true
	m.closed = false
	return nil
}

// Query records the query text and serves the next scripted response.
func (m *MockDriver) Query(ctx context.Context, query string, params map[string]any) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return nil, ErrNotConnected
	}

	m.queries = append(m.queries, query)

	if len(m.script) == 0 {
		return Empty(), nil
	}
	next := m.script[0]
	m.script = m.script[1:]
	if next.err != nil {
		return nil, next.err
	}
	if next.result == nil {
		return Empty(), nil
	}
	return next.result, nil
}

// Close marks the driver closed.
func (m *MockDriver) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	m.closed = true
	return nil
}

// Queries returns the query texts issued so far.
func (m *MockDriver) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.queries))
	copy(out, m.queries)
	return out
}

// Closed reports whether Close has been called.
func (m *MockDriver) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
