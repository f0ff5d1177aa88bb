package cli

import (
	"github.com/spf13/cobra"

	"github.com/bughound-labs/bughound/internal/config"
)

var (
	logPath     string
	mode        string
	modelName   string
	temperature float64
)

var rootCmd = &cobra.Command{
	Use:   "bughound",
	Short: "BugHound - a tiny agent that scans code and proposes fixes",
	Long: `BugHound runs a small agentic workflow over a pasted code snippet:
it detects a handful of issue patterns, proposes a fix (locally or via a
language model), and scores how risky the fix would be to auto-apply.

It is an educational demo for agentic workflows, not a static analyzer.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to audit log file (default: ~/.bughound/audit.jsonl)")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", config.ModeOffline, "Gateway mode: offline or openai")
	rootCmd.PersistentFlags().StringVar(&modelName, "model", "", "Model identifier for openai mode (default: gpt-4o-mini)")
	rootCmd.PersistentFlags().Float64Var(&temperature, "temperature", 0.2, "Sampling temperature for openai mode")
}

func Execute() error {
	return rootCmd.Execute()
}
