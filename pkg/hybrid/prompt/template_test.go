package prompt

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tmpl, err := New("greeting", "Hello, {{.Name}}!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := tmpl.Execute(map[string]string{"Name": "world"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hello, world!" {
		t.Errorf("expected 'Hello, world!', got %q", out)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New("", "content"); err == nil {
		t.Error("expected error for empty name")
	}

	if _, err := New("bad", "{{.Unclosed"); err == nil {
		t.Error("expected error for malformed template")
	}
}

func TestArbiterTemplate(t *testing.T) {
	out, err := Arbiter.Execute(ArbiterData{
		OriginalPrompt: "What is the capital of France?",
		LabelA:         "gpt-3.5-turbo",
		LabelB:         "gemini-1.5-pro",
		OutputA:        "Paris.",
		OutputB:        "The capital of France is Paris.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// All inputs must be embedded verbatim
	for _, want := range []string{
		"What is the capital of France?",
		"Paris.",
		"The capital of France is Paris.",
		"gpt-3.5-turbo",
		"gemini-1.5-pro",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("meta-prompt missing %q", want)
		}
	}

	// The fixed instruction block directs the judge to merge without
	// meta-commentary.
	if !strings.Contains(out, "Do NOT mention the names of the models") {
		t.Error("meta-prompt missing the no-meta-commentary instruction")
	}
	if !strings.Contains(out, "Combine the strongest elements") {
		t.Error("meta-prompt missing the synthesis instruction")
	}
}

func TestArbiterTemplateEmbedsSentinels(t *testing.T) {
	out, err := Arbiter.Execute(ArbiterData{
		OriginalPrompt: "2+2?",
		LabelA:         "openai",
		LabelB:         "gemini",
		OutputA:        "[OPENAI_ERROR] Failed to get response: connection reset",
		OutputB:        "4",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "[OPENAI_ERROR] Failed to get response: connection reset") {
		t.Error("error sentinel should be embedded verbatim as Output A")
	}
}
