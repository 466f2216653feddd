package provider

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/duet-ai/duet/pkg/httputil"
	"github.com/duet-ai/duet/pkg/hybrid/config"
	hyberrors "github.com/duet-ai/duet/pkg/hybrid/errors"
)

const (
	defaultOpenAIURL       = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel     = "gpt-3.5-turbo"
	defaultOpenAIMaxTokens = 4096
)

// SupportedOpenAIModels lists the chat models this provider accepts
var SupportedOpenAIModels = map[string]bool{
	"gpt-4o":        true,
	"gpt-4o-mini":   true,
	"gpt-4-turbo":   true,
	"gpt-4":         true,
	"gpt-3.5-turbo": true,
}

// OpenAIProvider implements the Provider interface for OpenAI chat completions
type OpenAIProvider struct {
	apiKey  string
	model   string
	baseURL string
	timeout time.Duration
}

// OpenAIFactory creates OpenAI providers
type OpenAIFactory struct{}

// Name returns the provider name
func (f *OpenAIFactory) Name() string {
	return "openai"
}

// Create returns a new OpenAI provider
func (f *OpenAIFactory) Create(cfg config.Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, hyberrors.New("openai", "create", hyberrors.ErrInvalidConfig)
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	if !SupportedOpenAIModels[model] {
		model = defaultOpenAIModel
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIURL
	}

	return &OpenAIProvider{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
		timeout: cfg.Timeout,
	}, nil
}

// GetAvailableModels returns supported OpenAI models
func (f *OpenAIFactory) GetAvailableModels() []string {
	models := make([]string, 0, len(SupportedOpenAIModels))
	for model := range SupportedOpenAIModels {
		models = append(models, model)
	}
	return models
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Model returns the current model
func (p *OpenAIProvider) Model() string {
	return p.model
}

// GenerateResponse sends a request to OpenAI and returns the response
func (p *OpenAIProvider) GenerateResponse(ctx context.Context, request Request) (Response, error) {
	maxTokens := defaultOpenAIMaxTokens
	if request.MaxTokens > 0 {
		maxTokens = request.MaxTokens
	}

	temperature := 0.5
	if request.Temperature > 0 {
		temperature = request.Temperature
	}

	messages := []map[string]string{
		{"role": "user", "content": request.Prompt},
	}

	openaiReq := map[string]interface{}{
		"model":       p.model,
		"messages":    messages,
		"max_tokens":  maxTokens,
		"temperature": temperature,
	}

	details := httputil.RequestDetails{
		URL:         p.baseURL,
		APIKey:      p.apiKey,
		RequestBody: openaiReq,
	}

	// No retries: a single failed call is absorbed upstream as pipeline data.
	options := httputil.ClientOptions{
		Timeout: p.timeout,
	}

	responseBody, err := httputil.SendRequest(ctx, details, options)
	if err != nil {
		return Response{}, hyberrors.New("openai", "generate_response", err)
	}

	var openaiResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
			FinishReason string `json:"finish_reason"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}

	err = json.Unmarshal(responseBody, &openaiResp)
	if err != nil {
		return Response{}, hyberrors.New("openai", "parse_response", err)
	}

	if len(openaiResp.Choices) == 0 {
		return Response{}, hyberrors.New("openai", "empty_response",
			errors.New("no choices returned from API"))
	}

	return Response{
		Content:  openaiResp.Choices[0].Message.Content,
		Model:    p.model,
		Provider: "openai",
		Usage: &UsageInfo{
			PromptTokens:     openaiResp.Usage.PromptTokens,
			CompletionTokens: openaiResp.Usage.CompletionTokens,
			TotalTokens:      openaiResp.Usage.TotalTokens,
		},
	}, nil
}

// Register the OpenAI factory
func init() {
	Register(&OpenAIFactory{})
}
