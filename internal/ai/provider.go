package ai

import "context"

// Provider generates a text completion for a prompt.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
