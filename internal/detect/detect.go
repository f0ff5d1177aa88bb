// Package detect finds issues in a code snippet, either through a language
// model or through built-in text-pattern heuristics.
//
// The model path degrades gracefully: a failed call or unparseable reply
// falls back to the heuristics, and the reason is recorded in the run trace
// so the caller can tell which path produced the findings.
package detect

import (
	"context"
	"fmt"

	"github.com/bughound-labs/bughound/internal/llm"
	"github.com/bughound-labs/bughound/internal/redact"
	"github.com/bughound-labs/bughound/internal/scan"
	"github.com/bughound-labs/bughound/internal/trace"
)

const analyzeSystemPrompt = "You are BugHound, a code review assistant. " +
	"Return ONLY valid JSON. No markdown, no backticks."

// Detector produces findings from a snippet. A nil client means
// heuristic-only mode.
type Detector struct {
	client llm.Client
	log    trace.Sink
}

// New creates a detector that reports its path decisions to the given sink.
func New(client llm.Client, log trace.Sink) *Detector {
	return &Detector{client: client, log: log}
}

// Analyze returns the list of findings for a snippet. It never fails: every
// model-path problem falls back to Heuristic.
func (d *Detector) Analyze(ctx context.Context, snippet string) []scan.Finding {
	if d.client == nil {
		d.log.Append(trace.StepAnalyze, "Using heuristic analyzer (offline mode).")
		return Heuristic(snippet)
	}

	d.log.Append(trace.StepAnalyze, "Using LLM analyzer.")

	masked, changed := redact.Redact(snippet)
	if changed {
		d.log.Append(trace.StepAnalyze, "Masked secret-looking content before contacting the model.")
	}

	userPrompt := "Analyze this code for potential issues. " +
		"Return a JSON array of issue objects with keys: kind, severity, message.\n\n" +
		"CODE:\n" + masked

	raw, err := d.client.Complete(ctx, analyzeSystemPrompt, userPrompt)
	if err != nil {
		d.log.Append(trace.StepAnalyze, fmt.Sprintf("API Error: %v. Falling back to heuristics.", err))
		return Heuristic(snippet)
	}

	findings, ok := parseFindings(raw)
	if !ok {
		d.log.Append(trace.StepAnalyze, "LLM output was not parseable JSON. Falling back to heuristics.")
		return Heuristic(snippet)
	}

	return findings
}
