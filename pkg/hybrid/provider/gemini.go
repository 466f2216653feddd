package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/duet-ai/duet/pkg/hybrid/config"
	hyberrors "github.com/duet-ai/duet/pkg/hybrid/errors"
)

const defaultGeminiModel = "gemini-1.5-pro"

// SupportedGeminiModels lists the models this provider accepts
var SupportedGeminiModels = map[string]bool{
	"gemini-1.5-pro":   true,
	"gemini-1.5-flash": true,
	"gemini-1.0-pro":   true,
}

// GeminiProvider implements the Provider interface for Google's Gemini
// using the official genai client.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// GeminiFactory creates Gemini providers
type GeminiFactory struct{}

// Name returns the provider name
func (f *GeminiFactory) Name() string {
	return "gemini"
}

// Create returns a new Gemini provider
func (f *GeminiFactory) Create(cfg config.Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, hyberrors.New("gemini", "create", hyberrors.ErrInvalidConfig)
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	if !SupportedGeminiModels[model] {
		model = defaultGeminiModel
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, hyberrors.New("gemini", "create",
			fmt.Errorf("failed to create Gemini client: %w", err))
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// GetAvailableModels returns supported Gemini models
func (f *GeminiFactory) GetAvailableModels() []string {
	models := make([]string, 0, len(SupportedGeminiModels))
	for model := range SupportedGeminiModels {
		models = append(models, model)
	}
	return models
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Model returns the current model
func (p *GeminiProvider) Model() string {
	return p.model
}

// Close releases the underlying client connection
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// GenerateResponse sends a request to Gemini and returns the response
func (p *GeminiProvider) GenerateResponse(ctx context.Context, request Request) (Response, error) {
	model := p.client.GenerativeModel(p.model)

	temperature := 0.5
	if request.Temperature > 0 {
		temperature = request.Temperature
	}
	model.SetTemperature(float32(temperature))

	if request.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(request.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(request.Prompt))
	if err != nil {
		return Response{}, hyberrors.New("gemini", "generate_response", err)
	}

	if len(resp.Candidates) == 0 {
		return Response{}, hyberrors.New("gemini", "empty_response",
			errors.New("no candidates returned from API"))
	}

	var fullResponse strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			fullResponse.WriteString(fmt.Sprintf("%v", part))
		}
	}

	response := Response{
		Content:  strings.TrimSpace(fullResponse.String()),
		Model:    p.model,
		Provider: "gemini",
	}

	if resp.UsageMetadata != nil {
		response.Usage = &UsageInfo{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	return response, nil
}

// Register the Gemini factory
func init() {
	Register(&GeminiFactory{})
}
