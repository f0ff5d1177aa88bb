package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bughound-labs/bughound/internal/agent"
	"github.com/bughound-labs/bughound/internal/risk"
	"github.com/bughound-labs/bughound/internal/snippets"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in samples through the offline pipeline",
	Long: `Run a quick diagnostic over the built-in sample snippets using local
heuristics only, checking that each produces the expected findings and risk
level. No network calls are made.

  bughound selftest`,
	RunE: selftestCommand,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

type selftestCase struct {
	sample       string
	wantFindings int
	wantLevel    risk.Level
}

func selftestCommand(cmd *cobra.Command, args []string) error {
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println("  BugHound Self-Test (offline)")
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println()

	cases := []selftestCase{
		{"print_spam.py", 1, risk.LevelLow},
		{"flaky_try_except.py", 1, risk.LevelMedium},
		{"mixed_issues.py", 3, risk.LevelHigh},
		{"cleanish.py", 0, risk.LevelLow},
	}

	lib := snippets.Builtin()
	bh := agent.New(nil)

	pass := 0
	fail := 0
	for _, tc := range cases {
		code, ok := lib.Get(tc.sample)
		if !ok {
			fmt.Printf("  ❌  %-22s missing from built-in library\n", tc.sample)
			fail++
			continue
		}

		result := bh.Run(cmd.Context(), code)

		good := len(result.Findings) == tc.wantFindings && result.Risk.Level == tc.wantLevel
		icon := "✅"
		if !good {
			icon = "❌"
			fail++
		} else {
			pass++
		}

		fmt.Printf("  %s  %-22s %d finding(s) → %s (score=%d)\n",
			icon, tc.sample, len(result.Findings), result.Risk.Level, result.Risk.Score)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════")
	if fail == 0 {
		fmt.Printf("  ✅ All %d checks passed. BugHound is working correctly\n", pass)
	} else {
		fmt.Printf("  ⚠  %d/%d checks passed, %d failed\n", pass, pass+fail, fail)
	}
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println()

	if fail > 0 {
		return fmt.Errorf("selftest: %d check(s) failed", fail)
	}
	return nil
}
