package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bughound-labs/bughound/internal/config"
	"github.com/bughound-labs/bughound/internal/detect"
	"github.com/bughound-labs/bughound/internal/snippets"
)

var samplesCmd = &cobra.Command{
	Use:   "samples [name]",
	Short: "List or print the sample snippet library",
	Long: `List the built-in sample snippets, or print one by name.

User snippets from ~/.bughound/snippets.yaml (a flat name → source mapping)
are merged in and may shadow built-ins.

  bughound samples
  bughound samples mixed_issues.py`,
	Args: cobra.MaximumNArgs(1),
	RunE: samplesCommand,
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}

func samplesCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(logPath, mode, modelName, temperature)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	lib, err := snippets.Load(cfg.SnippetsPath)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		code, ok := lib.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown sample %q", args[0])
		}
		fmt.Print(code)
		return nil
	}

	for _, name := range lib.Names() {
		code, _ := lib.Get(name)
		findings := detect.Heuristic(code)
		lines := len(strings.Split(strings.TrimSpace(code), "\n"))
		fmt.Printf("  %-22s %2d line(s), %d heuristic finding(s)\n", name, lines, len(findings))
	}
	return nil
}
