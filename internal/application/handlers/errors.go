package handlers

import "errors"

// Failures surfaced to the CLI and HTTP layers. Everything else resolves to a
// best-effort, possibly empty, result.
var (
	// ErrCatalogUnavailable means no catalog is configured.
	ErrCatalogUnavailable = errors.New("catalog service unavailable")
	// ErrLLMUnavailable means no LLM provider is configured.
	ErrLLMUnavailable = errors.New("llm service unavailable")
	// ErrInvalidRequest wraps rejected request parameters.
	ErrInvalidRequest = errors.New("invalid request")
)
