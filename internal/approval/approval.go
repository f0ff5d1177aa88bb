// Package approval asks the human whether a fix that did not qualify for
// auto-apply should be written anyway.
package approval

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type Result struct {
	Approved   bool
	UserAction string
}

// Prompt carries the risk context shown before asking.
type Prompt struct {
	Target    string // where the fix would be written
	RiskLevel string
	Score     int
	Reasons   []string
}

func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Ask prompts on stderr and reads the decision from stdin. Non-interactive
// sessions are denied automatically.
func Ask(p Prompt) Result {
	if !IsInteractive() {
		return Result{
			Approved:   false,
			UserAction: "auto_deny_non_interactive",
		}
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "⚠  This fix is not recommended for auto-apply.")
	fmt.Fprintf(os.Stderr, "Target: %s\n", p.Target)
	fmt.Fprintf(os.Stderr, "Risk:   %s (score=%d)\n", strings.ToUpper(p.RiskLevel), p.Score)

	if len(p.Reasons) > 0 {
		fmt.Fprintln(os.Stderr, "Reasons:")
		for _, reason := range p.Reasons {
			fmt.Fprintf(os.Stderr, "  • %s\n", reason)
		}
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  [w] Write anyway - save the proposed fix")
	fmt.Fprintln(os.Stderr, "  [s] Skip - keep the original file untouched")
	fmt.Fprintln(os.Stderr, "")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Fprint(os.Stderr, "Your choice [w/s]: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return Result{
				Approved:   false,
				UserAction: "error_reading_input",
			}
		}

		input = strings.TrimSpace(strings.ToLower(input))

		switch input {
		case "w", "write", "yes", "y":
			return Result{
				Approved:   true,
				UserAction: "write_despite_risk",
			}
		case "s", "skip", "no", "n":
			return Result{
				Approved:   false,
				UserAction: "skip",
			}
		default:
			fmt.Fprintln(os.Stderr, "Invalid input. Please enter 'w' to write or 's' to skip.")
		}
	}
}
