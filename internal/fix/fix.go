// Package fix proposes a revised snippet for a set of findings, either
// through a language model or through deterministic local rewrites.
package fix

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bughound-labs/bughound/internal/llm"
	"github.com/bughound-labs/bughound/internal/redact"
	"github.com/bughound-labs/bughound/internal/scan"
	"github.com/bughound-labs/bughound/internal/trace"
)

const fixSystemPrompt = "You are BugHound, a careful refactoring assistant. " +
	"Return ONLY the full rewritten code. No markdown, no backticks."

// Fixer proposes revised snippets. A nil client means local rewrites only.
type Fixer struct {
	client llm.Client
	log    trace.Sink
}

// New creates a fixer that reports its path decisions to the given sink.
func New(client llm.Client, log trace.Sink) *Fixer {
	return &Fixer{client: client, log: log}
}

// Propose returns a revised snippet addressing the findings. With no
// findings the snippet is returned unchanged. Model-path problems fall back
// to the local rewrites; Propose never fails.
func (f *Fixer) Propose(ctx context.Context, snippet string, findings []scan.Finding) string {
	if len(findings) == 0 {
		f.log.Append(trace.StepAct, "No issues, returning original code unchanged.")
		return snippet
	}

	if f.client == nil {
		f.log.Append(trace.StepAct, "Using heuristic fixer (offline mode).")
		return localFix(snippet, findings)
	}

	f.log.Append(trace.StepAct, "Using LLM fixer.")

	masked, changed := redact.Redact(snippet)
	if changed {
		f.log.Append(trace.StepAct, "Masked secret-looking content before contacting the model.")
	}

	issuesJSON, err := json.Marshal(findings)
	if err != nil {
		// Findings are plain strings; this cannot happen in practice.
		issuesJSON = []byte("[]")
	}

	userPrompt := "Rewrite the code to address the issues listed. " +
		"Preserve behavior when possible. Keep changes minimal.\n\n" +
		"ISSUES (JSON):\n" + string(issuesJSON) + "\n\n" +
		"CODE:\n" + masked

	raw, err := f.client.Complete(ctx, fixSystemPrompt, userPrompt)
	if err != nil {
		f.log.Append(trace.StepAct, fmt.Sprintf("API Error: %v. Falling back to heuristic fixer.", err))
		return localFix(snippet, findings)
	}

	cleaned := strings.TrimSpace(stripCodeFences(raw))
	if cleaned == "" {
		f.log.Append(trace.StepAct, "LLM returned empty output. Falling back to heuristic fixer.")
		return localFix(snippet, findings)
	}

	return cleaned
}
