// Package httputil provides shared HTTP plumbing for provider API calls.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

// RequestDetails holds the details for an HTTP request
type RequestDetails struct {
	URL               string
	APIKey            string
	RequestBody       interface{}
	AdditionalHeaders map[string]string
}

// ClientOptions holds options for customizing the HTTP client
type ClientOptions struct {
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

var (
	httpClient *http.Client
	clientOnce sync.Once
)

func initClient() {
	httpClient = &http.Client{
		Timeout: 30 * time.Second,
	}
}

func drainAndCloseBody(body io.ReadCloser) error {
	_, err := io.Copy(io.Discard, body)
	if err != nil {
		return fmt.Errorf("error draining body: %w", err)
	}
	if err := body.Close(); err != nil {
		return fmt.Errorf("error closing body: %w", err)
	}
	return nil
}

func createRequest(ctx context.Context, details RequestDetails) (*http.Request, error) {
	jsonBody, err := json.Marshal(details.RequestBody)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", details.URL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("error creating request for URL %s: %w", details.URL, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if details.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+details.APIKey)
	}

	for key, value := range details.AdditionalHeaders {
		req.Header.Set(key, value)
	}

	return req, nil
}

func executeAttempt(ctx context.Context, details RequestDetails, timeout time.Duration) ([]byte, int, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := createRequest(attemptCtx, details)
	if err != nil {
		return nil, 0, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if err := drainAndCloseBody(resp.Body); err != nil {
			log.Printf("Error closing response body: %v", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}

// SendRequest sends a JSON POST request and returns the raw response body.
// RetryAttempts of zero means a single attempt with no retries.
func SendRequest(ctx context.Context, details RequestDetails, options ClientOptions) ([]byte, error) {
	clientOnce.Do(initClient)

	timeout := options.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	var lastErr error
	for attempt := 0; attempt <= options.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(options.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, status, err := executeAttempt(ctx, details, timeout)
		if err != nil {
			lastErr = fmt.Errorf("error sending request to %s: %w", details.URL, err)
			log.Printf("Attempt %d: %v", attempt+1, lastErr)
			continue
		}

		if status == http.StatusOK {
			return body, nil
		}

		lastErr = fmt.Errorf("API request to %s failed with status code %d: %s",
			details.URL, status, string(body))
		log.Printf("Attempt %d: %v", attempt+1, lastErr)
	}

	return nil, lastErr
}
