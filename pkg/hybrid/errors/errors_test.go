package errors

import (
	"errors"
	"testing"
)

func TestProviderError(t *testing.T) {
	baseErr := errors.New("base error")
	err := New("openai", "generate_response", baseErr)

	expected := "provider openai: generate_response: base error"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != baseErr {
		t.Errorf("Expected unwrapped error %v, got %v", baseErr, unwrapped)
	}

	// errors.Is with standard errors
	rateErr := New("openai", "generate_response", ErrRateLimit)
	if !errors.Is(rateErr, ErrRateLimit) {
		t.Error("errors.Is failed with standard error")
	}

	// errors.Is with provider pattern matching
	patternErr := &ProviderError{Provider: "openai"}
	if !errors.Is(err, patternErr) {
		t.Error("errors.Is failed with provider pattern matching")
	}

	wrongProvider := &ProviderError{Provider: "gemini"}
	if errors.Is(err, wrongProvider) {
		t.Error("errors.Is incorrectly matched different provider")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "gemini", "synthesize") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := Wrap(ErrAuthentication, "gemini", "synthesize")
	if !errors.Is(wrapped, ErrAuthentication) {
		t.Error("Wrapped error should match original with errors.Is")
	}

	var provErr *ProviderError
	if !errors.As(wrapped, &provErr) {
		t.Error("Wrapped error should be a ProviderError")
	}

	if provErr.Provider != "gemini" || provErr.Op != "synthesize" {
		t.Errorf("Expected provider 'gemini' and op 'synthesize', got %q and %q",
			provErr.Provider, provErr.Op)
	}
}
