// Package provider defines the provider interface for LLM completion services
package provider

import (
	"context"

	"github.com/duet-ai/duet/pkg/hybrid/config"
)

// Provider represents an LLM completion service reached over the network
type Provider interface {
	// GenerateResponse sends a single prompt and returns the completion
	GenerateResponse(ctx context.Context, request Request) (Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the configured model identifier
	Model() string
}

// Request contains all parameters for a generation request
type Request struct {
	// Prompt is the text prompt, passed through verbatim
	Prompt string

	// Temperature controls randomness (0.0-1.0)
	Temperature float64

	// MaxTokens limits the response length
	MaxTokens int
}

// Response contains the output from a provider
type Response struct {
	// Content is the text response
	Content string

	// Model identifies the model used
	Model string

	// Provider identifies the provider used
	Provider string

	// Usage contains token usage information, when the service reports it
	Usage *UsageInfo
}

// UsageInfo contains token usage statistics
type UsageInfo struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ProviderFactory creates Provider instances
type ProviderFactory interface {
	// Name returns the name of this provider factory
	Name() string

	// Create returns a new Provider instance
	Create(cfg config.Config) (Provider, error)

	// GetAvailableModels returns a list of available models for this provider
	GetAvailableModels() []string
}
