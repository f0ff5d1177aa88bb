package fix

import (
	"regexp"
	"strings"

	"github.com/bughound-labs/bughound/internal/scan"
)

// bareExceptClause matches the catch-all clause and the whitespace after it,
// so the replacement can re-indent the inserted handler body.
var bareExceptClause = regexp.MustCompile(`\bexcept\s*:\s*`)

const exceptReplacement = "except Exception as e:\n" +
	"        # [bughound] log or handle the error\n" +
	"        "

// localFix applies the deterministic rewrites, one per finding category
// present, in fixed order. Maintainability/TODO findings are deliberately
// left untouched: guessing intent is worse than surfacing the marker.
func localFix(snippet string, findings []scan.Finding) string {
	fixed := snippet

	// Bare except first (highest risk).
	if hasKind(findings, scan.KindReliability) {
		fixed = bareExceptClause.ReplaceAllString(fixed, exceptReplacement)
	}

	// Route prints through the logging module. Simple and imperfect: the
	// textual replacement also hits prints inside strings, which is accepted
	// for this tool.
	if hasKind(findings, scan.KindCodeQuality) {
		if !strings.Contains(fixed, "import logging") {
			fixed = "import logging\n\n" + fixed
		}
		fixed = strings.ReplaceAll(fixed, "print(", "logging.info(")
	}

	return fixed
}

func hasKind(findings []scan.Finding, kind string) bool {
	for _, f := range findings {
		if f.Kind == kind {
			return true
		}
	}
	return false
}
