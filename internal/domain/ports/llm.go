// Package ports defines interfaces for external service communication.
package ports

import (
	"context"
	"time"
)

// CompletionRequest is a single chat completion: one system instruction and one user prompt.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
	// Timeout bounds the whole call. Zero means the caller's context decides.
	Timeout time.Duration
}

// LLMClient defines the interface for LLM operations.
type LLMClient interface {
	// Complete sends one request and returns the raw text of the first choice.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
