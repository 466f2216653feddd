package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/duet-ai/duet/pkg/hybrid/config"
)

func newOpenAITestProvider(t *testing.T, url string) Provider {
	t.Helper()

	factory := &OpenAIFactory{}
	p, err := factory.Create(config.NewConfig(
		config.WithAPIKey("test-key"),
		config.WithBaseURL(url),
		config.WithTimeout(5*time.Second),
	))
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	return p
}

func TestOpenAIGenerateResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("missing auth header")
		}

		var req struct {
			Model       string              `json:"model"`
			Messages    []map[string]string `json:"messages"`
			Temperature float64             `json:"temperature"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-3.5-turbo" {
			t.Errorf("expected model gpt-3.5-turbo, got %s", req.Model)
		}
		if len(req.Messages) != 1 || req.Messages[0]["content"] != "2+2?" {
			t.Errorf("prompt not passed through verbatim: %v", req.Messages)
		}
		if req.Temperature != 0.5 {
			t.Errorf("expected temperature 0.5, got %f", req.Temperature)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{"message": {"content": "4"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 1, "total_tokens": 11}
		}`))
	}))
	defer srv.Close()

	p := newOpenAITestProvider(t, srv.URL)

	resp, err := p.GenerateResponse(context.Background(), Request{
		Prompt:      "2+2?",
		Temperature: 0.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "4" {
		t.Errorf("expected content '4', got %q", resp.Content)
	}
	if resp.Provider != "openai" {
		t.Errorf("expected provider 'openai', got %q", resp.Provider)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 11 {
		t.Errorf("expected 11 total tokens, got %+v", resp.Usage)
	}
}

func TestOpenAIGenerateResponseAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := newOpenAITestProvider(t, srv.URL)

	_, err := p.GenerateResponse(context.Background(), Request{Prompt: "hello"})
	if err == nil {
		t.Fatal("expected error for unauthorized response")
	}
}

func TestOpenAIGenerateResponseNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	p := newOpenAITestProvider(t, srv.URL)

	_, err := p.GenerateResponse(context.Background(), Request{Prompt: "hello"})
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestOpenAIFactoryValidation(t *testing.T) {
	factory := &OpenAIFactory{}

	// Missing API key
	_, err := factory.Create(config.NewConfig())
	if err == nil {
		t.Error("expected error for missing API key")
	}

	// Unknown models fall back to the default
	p, err := factory.Create(config.NewConfig(
		config.WithAPIKey("k"),
		config.WithModel("not-a-model"),
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Model() != "gpt-3.5-turbo" {
		t.Errorf("expected fallback model gpt-3.5-turbo, got %s", p.Model())
	}
}
