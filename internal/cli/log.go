package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bughound-labs/bughound/internal/config"
	"github.com/bughound-labs/bughound/internal/logger"
)

var (
	logFilterLevel string
	logLast        int
	logSummary     bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View and filter the run audit log",
	Long: `View the BugHound audit log with filtering and summary options.

Examples:
  bughound log                  # Show all entries
  bughound log --last 20        # Show last 20 entries
  bughound log --level high     # Show only high-risk runs
  bughound log --summary        # Show summary stats`,
	RunE: logCommand,
}

func init() {
	logCmd.Flags().StringVar(&logFilterLevel, "level", "", "Filter by risk level (low, medium, high)")
	logCmd.Flags().IntVar(&logLast, "last", 0, "Show last N entries")
	logCmd.Flags().BoolVar(&logSummary, "summary", false, "Show summary statistics")
	rootCmd.AddCommand(logCmd)
}

func logCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(logPath, mode, modelName, temperature)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	events, err := readAuditLog(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No audit log entries found.")
		return nil
	}

	filtered := events
	if logFilterLevel != "" {
		filtered = nil
		for _, e := range events {
			if strings.EqualFold(e.RiskLevel, logFilterLevel) {
				filtered = append(filtered, e)
			}
		}
	}

	if logLast > 0 && logLast < len(filtered) {
		filtered = filtered[len(filtered)-logLast:]
	}

	if logSummary {
		printSummary(events)
		return nil
	}

	printEvents(filtered)
	return nil
}

func readAuditLog(path string) ([]logger.RunEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var events []logger.RunEvent
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var event logger.RunEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue // skip malformed lines
		}
		events = append(events, event)
	}
	return events, scanner.Err()
}

func printEvents(events []logger.RunEvent) {
	for _, e := range events {
		ts := formatTimestamp(e.Timestamp)
		icon := levelIcon(e.RiskLevel)

		fmt.Printf("%s %s %s mode, %d line(s), %d finding(s) → %s (score=%d)\n",
			icon, ts, e.Mode, e.SnippetLines, e.Findings, e.RiskLevel, e.RiskScore)

		if e.FallbackUsed {
			fmt.Println("     Fallback: model path failed, heuristics used")
		}
		if e.UserAction != "" {
			fmt.Printf("     User action: %s\n", e.UserAction)
		}
		if e.Error != "" {
			fmt.Printf("     Error: %s\n", e.Error)
		}
	}
}

func printSummary(all []logger.RunEvent) {
	counts := map[string]int{}
	autofix := 0
	fallbacks := 0

	for _, e := range all {
		counts[e.RiskLevel]++
		if e.ShouldAutofix {
			autofix++
		}
		if e.FallbackUsed {
			fallbacks++
		}
	}

	fmt.Println("═══════════════════════════════════════════")
	fmt.Println("  BugHound Audit Summary")
	fmt.Println("═══════════════════════════════════════════")
	fmt.Printf("  Total runs:       %d\n", len(all))
	fmt.Printf("  low risk:         %d\n", counts["low"])
	fmt.Printf("  medium risk:      %d\n", counts["medium"])
	fmt.Printf("  high risk:        %d\n", counts["high"])
	fmt.Printf("  Auto-fix OK:      %d\n", autofix)
	fmt.Printf("  Model fallbacks:  %d\n", fallbacks)
	fmt.Println("═══════════════════════════════════════════")

	if len(all) > 0 {
		fmt.Printf("  First run:        %s\n", formatTimestamp(all[0].Timestamp))
		fmt.Printf("  Last run:         %s\n", formatTimestamp(all[len(all)-1].Timestamp))
	}
	fmt.Println()
}

func levelIcon(level string) string {
	switch level {
	case "high":
		return "🛑"
	case "medium":
		return "🔍"
	case "low":
		return "✅"
	default:
		return "❓"
	}
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
