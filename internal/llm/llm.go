// Package llm provides the language-model gateway used by the analyzer and
// fixer steps.
//
// Architecture:
//
//	Client (interface)
//	  ├── Mock    — ships built-in, offline, deterministic
//	  └── OpenAI  — wraps any OpenAI-compatible chat completion API
//
// The client is selected explicitly at construction time. A nil Client means
// heuristic-only mode; the Mock is a real gateway whose replies deliberately
// fail downstream parsing so the fallback path stays visible in demos.
package llm

import "context"

// Client is the gateway contract: one synchronous completion per call.
//
// An empty reply means the model declined or returned nothing usable; callers
// must treat it exactly like an error and fall back to local heuristics.
// Implementations make a single attempt, with no retries and no internal
// timeout.
// Cancellation, if any, comes from the caller's context.
type Client interface {
	// Name returns the client identifier (e.g., "mock", "openai").
	Name() string

	// Complete sends one system+user prompt pair and returns the raw reply text.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
