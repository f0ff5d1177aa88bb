// Package redact masks secret-looking content. Snippets are masked before
// they are embedded in a remote model prompt, and audit-log error text is
// masked before it hits disk.
package redact

import "regexp"

// Patterns for secrets that plausibly show up in pasted source: hardcoded
// key assignments, provider token formats, private key headers, inline
// bearer tokens, and credentials baked into URLs.
var secretPatterns = []*regexp.Regexp{
	// Generic key/token assignments
	regexp.MustCompile(`(?i)(api[_-]?key|api[_-]?secret|secret[_-]?key|access[_-]?token|auth[_-]?token)\s*[=:]\s*['"]?[A-Za-z0-9_\-/+=]{16,}['"]?`),
	regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[=:]\s*['"][^'"]{8,}['"]`),

	// Provider token formats
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	regexp.MustCompile(`ghp_[A-Za-z0-9]{36}`),
	regexp.MustCompile(`\bsk-[A-Za-z0-9_\-]{20,}`),
	regexp.MustCompile(`xox[baprs]-[0-9]{10,13}-[0-9]{10,13}[a-zA-Z0-9-]*`),

	// Private keys
	regexp.MustCompile(`-----BEGIN (RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----`),

	// Bearer tokens
	regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._\-]{20,}`),

	// Basic auth in URLs
	regexp.MustCompile(`https?://[^:\s]+:[^@\s]+@`),
}

const placeholder = "[REDACTED]"

// Redact replaces secret-looking spans with a placeholder and reports
// whether anything was replaced, so callers can record that the input was
// altered before it left the process.
func Redact(input string) (string, bool) {
	result := input
	for _, pattern := range secretPatterns {
		result = pattern.ReplaceAllString(result, placeholder)
	}
	return result, result != input
}
