package httputil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSendRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("missing auth header")
		}
		if r.Header.Get("X-Custom") != "custom-value" {
			t.Error("missing additional header")
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["prompt"] != "hello" {
			t.Errorf("expected prompt 'hello', got %q", body["prompt"])
		}

		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	details := RequestDetails{
		URL:         srv.URL,
		APIKey:      "test-key",
		RequestBody: map[string]string{"prompt": "hello"},
		AdditionalHeaders: map[string]string{
			"X-Custom": "custom-value",
		},
	}

	body, err := SendRequest(context.Background(), details, ClientOptions{Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestSendRequestNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	details := RequestDetails{
		URL:         srv.URL,
		RequestBody: map[string]string{},
	}

	_, err := SendRequest(context.Background(), details, ClientOptions{Timeout: 5 * time.Second})
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestSendRequestNoRetriesByDefault(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	details := RequestDetails{
		URL:         srv.URL,
		RequestBody: map[string]string{},
	}

	_, err := SendRequest(context.Background(), details, ClientOptions{Timeout: 5 * time.Second})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", attempts)
	}
}
