package detect

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/bughound-labs/bughound/internal/jsonx"
	"github.com/bughound-labs/bughound/internal/scan"
)

// parseFindings turns a raw model reply into findings. Attempts, in order:
// the trimmed reply as a JSON array, the first balanced [...] span, and a
// repaired version of that span. Reports false when all three fail.
func parseFindings(raw string) ([]scan.Finding, bool) {
	text := strings.TrimSpace(raw)

	if arr, ok := tryUnmarshalArray(text); ok {
		return normalizeFindings(arr), true
	}

	span, ok := jsonx.FirstArray(text)
	if !ok {
		return nil, false
	}

	if arr, ok := tryUnmarshalArray(span); ok {
		return normalizeFindings(arr), true
	}

	// Models often emit almost-JSON (trailing commas, single quotes). Give
	// the extracted span one repair pass before giving up.
	repaired, err := jsonrepair.JSONRepair(span)
	if err != nil {
		return nil, false
	}
	if arr, ok := tryUnmarshalArray(repaired); ok {
		return normalizeFindings(arr), true
	}

	return nil, false
}

func tryUnmarshalArray(s string) ([]any, bool) {
	var arr []any
	if err := json.Unmarshal([]byte(s), &arr); err != nil {
		return nil, false
	}
	return arr, true
}

// normalizeFindings drops non-object elements and fills defaults for missing
// keys: kind "Issue", severity "Unknown", message "".
func normalizeFindings(arr []any) []scan.Finding {
	findings := make([]scan.Finding, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		findings = append(findings, scan.Finding{
			Kind:     coerceString(obj["kind"], scan.KindIssue),
			Severity: coerceString(obj["severity"], scan.SeverityUnknown),
			Message:  strings.TrimSpace(coerceString(obj["message"], "")),
		})
	}
	return findings
}

// coerceString renders any JSON value as text, substituting def for nil.
func coerceString(v any, def string) string {
	switch val := v.(type) {
	case nil:
		return def
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
