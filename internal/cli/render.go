package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/bughound-labs/bughound/internal/agent"
	"github.com/bughound-labs/bughound/internal/scan"
)

var (
	headerColor = color.New(color.Bold).SprintFunc()
	highColor   = color.New(color.FgRed).SprintFunc()
	mediumColor = color.New(color.FgYellow).SprintFunc()
	lowColor    = color.New(color.FgCyan).SprintFunc()
	okColor     = color.New(color.FgGreen).SprintFunc()
	addColor    = color.New(color.FgGreen).SprintFunc()
	delColor    = color.New(color.FgRed).SprintFunc()
)

func renderResult(original string, result agent.Result, showDiff bool) {
	fmt.Println(headerColor("── Detected issues ─────────────────────────────"))
	if len(result.Findings) == 0 {
		fmt.Println(okColor("  No issues detected by the current analyzer."))
	} else {
		for i, f := range result.Findings {
			fmt.Printf("  %d. %s | %s\n", i+1, f.Kind, severityColor(f.Severity)(f.Severity))
			if f.Message != "" {
				fmt.Printf("     %s\n", f.Message)
			}
		}
	}
	fmt.Println()

	fmt.Println(headerColor("── Risk report ─────────────────────────────────"))
	fmt.Printf("  Level:     %s\n", levelColor(string(result.Risk.Level))(strings.ToUpper(string(result.Risk.Level))))
	fmt.Printf("  Score:     %d\n", result.Risk.Score)
	fmt.Printf("  Auto-fix:  %s\n", yesNo(result.Risk.ShouldAutofix))
	for _, r := range result.Risk.Reasons {
		fmt.Printf("  • %s\n", r)
	}
	fmt.Println()

	if fallbackUsed(result) {
		fmt.Println(mediumColor("  ⚠  The model path failed or was unusable; heuristic rules were used."))
		fmt.Println()
	}

	fmt.Println(headerColor("── Proposed fix ────────────────────────────────"))
	if strings.TrimSpace(result.Revised) == "" {
		fmt.Println(mediumColor("  No fix was produced. This can happen if the agent refused or had parsing errors."))
	} else {
		fmt.Println(indent(result.Revised, "  "))
		if showDiff && result.Revised != original {
			fmt.Println(headerColor("── Diff ────────────────────────────────────────"))
			fmt.Print(renderDiff(original, result.Revised))
		}
	}
	fmt.Println()

	fmt.Println(headerColor("── Agent trace ─────────────────────────────────"))
	for _, e := range result.Trace {
		fmt.Printf("  %-7s %s\n", e.Step+":", e.Message)
	}
}

// renderDiff produces a line-oriented diff with -/+ prefixes.
func renderDiff(original, revised string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(original, revised)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		paint := fmt.Sprint
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
			paint = func(a ...interface{}) string { return addColor(a...) }
		case diffmatchpatch.DiffDelete:
			prefix = "- "
			paint = func(a ...interface{}) string { return delColor(a...) }
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			sb.WriteString(paint(prefix + line))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func severityColor(severity string) func(...interface{}) string {
	switch severity {
	case scan.SeverityHigh:
		return highColor
	case scan.SeverityMedium:
		return mediumColor
	case scan.SeverityLow:
		return lowColor
	default:
		return fmt.Sprint
	}
}

func levelColor(level string) func(...interface{}) string {
	switch level {
	case "high":
		return highColor
	case "medium":
		return mediumColor
	default:
		return okColor
	}
}

func yesNo(b bool) string {
	if b {
		return okColor("YES")
	}
	return highColor("NO")
}

func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
