// Package agent sequences the BugHound workflow:
//
//	PLAN → ANALYZE → ACT → TEST → REFLECT
//
// Five sequential phases, no branching back, no concurrency. Each run owns
// its trace; the agent keeps no state between runs.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/bughound-labs/bughound/internal/detect"
	"github.com/bughound-labs/bughound/internal/fix"
	"github.com/bughound-labs/bughound/internal/llm"
	"github.com/bughound-labs/bughound/internal/risk"
	"github.com/bughound-labs/bughound/internal/scan"
	"github.com/bughound-labs/bughound/internal/trace"
)

// Result is everything one run produces, as plain data ready for rendering.
// No component retains any of it after Run returns.
type Result struct {
	Findings []scan.Finding `json:"findings"`
	Revised  string         `json:"revised"`
	Risk     risk.Report    `json:"risk"`
	Trace    []trace.Entry  `json:"trace"`
}

// Agent runs snippets through the full pipeline. A nil client runs entirely
// on local heuristics; the mock client exercises the model path with
// deliberate fallbacks; the remote client does the real thing.
type Agent struct {
	client llm.Client
}

// New creates an agent bound to a gateway client (nil for heuristic-only).
func New(client llm.Client) *Agent {
	return &Agent{client: client}
}

// Run executes the workflow on one snippet. It never fails: every external
// problem degrades to deterministic local behavior, and the degradation is
// visible in the returned trace.
//
// The risk report's auto-apply flag is a recommendation only; the agent
// never writes a fix anywhere; that decision belongs to the caller.
func (a *Agent) Run(ctx context.Context, snippet string) Result {
	rec := &trace.Recorder{}
	rec.Append(trace.StepPlan, "Planning a quick scan + fix proposal workflow.")

	detector := detect.New(a.client, rec)
	findings := detector.Analyze(ctx, snippet)
	rec.Append(trace.StepAnalyze, fmt.Sprintf("Found %d issue(s).", len(findings)))

	fixer := fix.New(a.client, rec)
	revised := fixer.Propose(ctx, snippet, findings)
	if strings.TrimSpace(revised) == "" {
		// Not an abort: an empty fix still goes through risk assessment,
		// which classifies it as high risk.
		rec.Append(trace.StepAct, "No fix produced (refused, error, or empty output).")
	}

	report := risk.Assess(snippet, revised, findings)
	rec.Append(trace.StepTest, fmt.Sprintf("Risk assessed as %s (score=%d).", report.Level, report.Score))

	if report.ShouldAutofix {
		rec.Append(trace.StepReflect, "Fix appears safe enough to auto-apply under current policy.")
	} else {
		rec.Append(trace.StepReflect, "Fix is not safe enough to auto-apply. Human review recommended.")
	}

	return Result{
		Findings: findings,
		Revised:  revised,
		Risk:     report,
		Trace:    rec.Entries(),
	}
}
