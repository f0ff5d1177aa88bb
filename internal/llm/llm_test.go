package llm

import (
	"context"
	"strings"
	"testing"
)

func TestMock_StrictJSONPromptGetsNonJSON(t *testing.T) {
	m := NewMock()

	reply, err := m.Complete(context.Background(),
		"You are BugHound, a code review assistant. Return ONLY valid JSON. No markdown, no backticks.",
		"CODE:\nx = 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.HasPrefix(strings.TrimSpace(reply), "[") {
		t.Errorf("mock JSON reply should not be JSON, got: %q", reply)
	}
	if reply != mockJSONReply {
		t.Errorf("mock reply not deterministic: %q", reply)
	}
}

func TestMock_RewritePromptGetsComment(t *testing.T) {
	m := NewMock()

	reply, err := m.Complete(context.Background(),
		"You are BugHound, a careful refactoring assistant. Return ONLY the full rewritten code.",
		"CODE:\nx = 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(reply, "#") {
		t.Errorf("expected a comment reply, got: %q", reply)
	}
}

func TestMock_IgnoresUserPrompt(t *testing.T) {
	m := NewMock()

	a, _ := m.Complete(context.Background(), "Return ONLY valid JSON", "one snippet")
	b, _ := m.Complete(context.Background(), "Return ONLY valid JSON", "a completely different snippet")
	if a != b {
		t.Errorf("mock reply varies with user prompt: %q vs %q", a, b)
	}
}

func TestNewOpenAI_MissingKeyFailsConstruction(t *testing.T) {
	_, err := NewOpenAI(Config{})
	if err == nil {
		t.Fatal("expected construction to fail without an API key")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewOpenAI_Defaults(t *testing.T) {
	c, err := NewOpenAI(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.model != DefaultModel {
		t.Errorf("model = %q, want %q", c.model, DefaultModel)
	}
	if c.Name() != "openai" {
		t.Errorf("Name() = %q", c.Name())
	}
}
