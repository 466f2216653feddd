package hybrid

import (
	"errors"
	"strings"
	"testing"
)

func TestProviderResultText(t *testing.T) {
	ok := ProviderResult{Provider: "openai", Content: "4"}
	if ok.Failed() {
		t.Error("successful result should not report failure")
	}
	if ok.Text() != "4" {
		t.Errorf("expected content passed through, got %q", ok.Text())
	}

	failed := ProviderResult{
		Provider: "openai",
		Err:      errors.New("connection reset"),
	}
	if !failed.Failed() {
		t.Error("failed result should report failure")
	}

	text := failed.Text()
	if text != "[OPENAI_ERROR] Failed to get response: connection reset" {
		t.Errorf("unexpected sentinel text: %q", text)
	}
	if !strings.HasPrefix(text, "[") || !strings.Contains(text, "_ERROR]") {
		t.Errorf("sentinel must start with '[' and contain '_ERROR]', got %q", text)
	}
}

func TestProviderResultSentinelUppercasesName(t *testing.T) {
	r := ProviderResult{Provider: "gemini", Err: errors.New("boom")}
	if !strings.HasPrefix(r.Text(), "[GEMINI_ERROR]") {
		t.Errorf("expected [GEMINI_ERROR] prefix, got %q", r.Text())
	}
}
