package fix

import (
	"regexp"
	"strings"
)

// fencedBlockPattern captures the interior of the first ``` fenced block,
// with or without a language tag.
var fencedBlockPattern = regexp.MustCompile("(?is)```[a-z0-9]*\\s*(.*?)\\s*```")

// stripCodeFences removes surrounding ``` markup if the model added it
// anyway. When a fenced block is present only its interior is kept;
// otherwise the text passes through untouched.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if m := fencedBlockPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}
