// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/ersonp/vgame-horizon/internal/domain/ports"
)

// LLMClient is a mock implementation of ports.LLMClient.
// Calls consume Responses and Errs in order; once exhausted, Response and Err are returned.
type LLMClient struct {
	mu sync.Mutex

	Responses []string
	Errs      []error

	Response string
	Err      error

	// Requests holds every request received, in order.
	Requests []ports.CompletionRequest
}

// Complete returns the next scripted response or error.
func (m *LLMClient) Complete(_ context.Context, req ports.CompletionRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := len(m.Requests)
	m.Requests = append(m.Requests, req)

	if call < len(m.Errs) && m.Errs[call] != nil {
		return "", m.Errs[call]
	}
	if call < len(m.Responses) {
		return m.Responses[call], nil
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Calls returns the number of requests received.
func (m *LLMClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}

// Prompts returns the user prompts received, in order.
func (m *LLMClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Requests))
	for i, r := range m.Requests {
		out[i] = r.Prompt
	}
	return out
}
