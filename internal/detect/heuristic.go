package detect

import (
	"regexp"
	"strings"

	"github.com/bughound-labs/bughound/internal/scan"
)

// heuristicRule is a single offline detection check.
type heuristicRule struct {
	finding scan.Finding
	match   func(snippet string) bool
}

// bareExceptPattern matches a catch-all `except:` clause followed by a line
// break, a comment, or the end of input. Purely textual: an `except:` inside
// a string literal matches too, which is accepted for this tool.
var bareExceptPattern = regexp.MustCompile(`\bexcept\s*:\s*(\n|#|$)`)

// heuristicRules run in order; each contributes at most one finding and they
// never short-circuit each other.
var heuristicRules = []heuristicRule{
	{
		finding: scan.Finding{
			Kind:     scan.KindCodeQuality,
			Severity: scan.SeverityLow,
			Message:  "Found print statements. Consider using logging for non-toy code.",
		},
		match: func(snippet string) bool {
			return strings.Contains(snippet, "print(")
		},
	},
	{
		finding: scan.Finding{
			Kind:     scan.KindReliability,
			Severity: scan.SeverityHigh,
			Message:  "Found a bare `except:`. Catch a specific exception or use `except Exception as e:`.",
		},
		match: func(snippet string) bool {
			return bareExceptPattern.MatchString(snippet)
		},
	},
	{
		finding: scan.Finding{
			Kind:     scan.KindMaintainability,
			Severity: scan.SeverityMedium,
			Message:  "Found TODO comments. Unfinished logic can hide bugs or missing cases.",
		},
		match: func(snippet string) bool {
			return strings.Contains(snippet, "TODO")
		},
	},
}

// Heuristic runs the offline text-pattern checks against a snippet.
func Heuristic(snippet string) []scan.Finding {
	var findings []scan.Finding
	for _, r := range heuristicRules {
		if r.match(snippet) {
			findings = append(findings, r.finding)
		}
	}
	return findings
}
