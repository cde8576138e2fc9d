// Package llm abstracts chat-completion providers behind a small client
// interface so callers never depend on a concrete vendor.
package llm

import (
	"context"
	"errors"
)

// Client issues one completion request for a prompt and returns the raw
// reply text.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation used when no provider key is
// configured.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
