package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MockProvider mocks a cross-check provider. It is safe for concurrent use.
type MockProvider struct {
	ProviderName string
	Responses    map[string]string
	Errors       map[string]error
	// Err, when set, is returned for every text without an entry in Errors
	Err error

	mu    sync.Mutex
	calls []string
}

// Name returns the provider name, "mock" when unset
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// Transcribe returns the canned response for text
func (m *MockProvider) Transcribe(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	if resp, ok := m.Responses[text]; ok {
		return resp, nil
	}
	return "", fmt.Errorf("no mock response for %q", text)
}

// Calls returns the texts Transcribe was called with
func (m *MockProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
