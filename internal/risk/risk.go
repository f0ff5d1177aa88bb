// Package risk scores how safe a proposed fix is to auto-apply.
//
// The structural checks (line-count ratio, `return` and `except:` substring
// presence) are crude textual proxies, not semantic analysis: a `return`
// renamed inside a string literal triggers a false penalty, and legitimate
// large rewrites get over-penalized. This is a known limitation of the
// guardrail, kept deliberately simple.
package risk

import (
	"strings"

	"github.com/bughound-labs/bughound/internal/scan"
)

// Level is the discrete risk bucket derived from the score.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Level thresholds and deduction weights.
const (
	lowThreshold    = 75
	mediumThreshold = 40

	highSeverityPenalty   = 40
	mediumSeverityPenalty = 20
	lowSeverityPenalty    = 5
	shrunkCodePenalty     = 20
	lostReturnPenalty     = 30
	exceptChangedPenalty  = 5
)

// Report is the result of one assessment. Derived purely from its inputs
// and recomputed every run.
type Report struct {
	Score         int      `json:"score"`
	Level         Level    `json:"level"`
	Reasons       []string `json:"reasons"`
	ShouldAutofix bool     `json:"should_autofix"`
}

// Assess scores a proposed fix. Pure function: no side effects, no state.
//
// A blank revised snippet short-circuits to the worst report. Otherwise the
// score starts at 100 and every deduction applies independently, each adding
// one human-readable reason.
func Assess(original, revised string, findings []scan.Finding) Report {
	if strings.TrimSpace(revised) == "" {
		return Report{
			Score:         0,
			Level:         LevelHigh,
			Reasons:       []string{"No fix was produced."},
			ShouldAutofix: false,
		}
	}

	score := 100
	var reasons []string

	for _, f := range findings {
		switch strings.ToLower(f.Severity) {
		case "high":
			score -= highSeverityPenalty
			reasons = append(reasons, "High severity issue detected.")
		case "medium":
			score -= mediumSeverityPenalty
			reasons = append(reasons, "Medium severity issue detected.")
		case "low":
			score -= lowSeverityPenalty
			reasons = append(reasons, "Low severity issue detected.")
		}
	}

	originalLines := strings.Split(strings.TrimSpace(original), "\n")
	revisedLines := strings.Split(strings.TrimSpace(revised), "\n")

	if float64(len(revisedLines)) < float64(len(originalLines))*0.5 {
		score -= shrunkCodePenalty
		reasons = append(reasons, "Fixed code is much shorter than original.")
	}

	if strings.Contains(original, "return") && !strings.Contains(revised, "return") {
		score -= lostReturnPenalty
		reasons = append(reasons, "Return statements may have been removed.")
	}

	// Removing a bare except is usually an improvement, but still worth a
	// human glance.
	if strings.Contains(original, "except:") && !strings.Contains(revised, "except:") {
		score -= exceptChangedPenalty
		reasons = append(reasons, "Bare except was modified, verify correctness.")
	}

	score = clamp(score, 0, 100)

	level := LevelHigh
	switch {
	case score >= lowThreshold:
		level = LevelLow
	case score >= mediumThreshold:
		level = LevelMedium
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "No significant risks detected.")
	}

	return Report{
		Score:         score,
		Level:         level,
		Reasons:       reasons,
		ShouldAutofix: level == LevelLow,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
