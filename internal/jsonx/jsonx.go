// Package jsonx contains small helpers for digging JSON out of messy
// model output.
package jsonx

import "strings"

// FirstArray returns the first balanced [...] span in s, scanning bracket
// nesting depth character by character from the first '['. It reports false
// when no '[' is present or the brackets never close.
//
// This is a purely textual scan: it does not validate that the span is JSON,
// and brackets inside string literals count toward the depth. Callers are
// expected to attempt a real parse on the result.
func FirstArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
