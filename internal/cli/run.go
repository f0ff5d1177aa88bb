package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bughound-labs/bughound/internal/agent"
	"github.com/bughound-labs/bughound/internal/approval"
	"github.com/bughound-labs/bughound/internal/config"
	"github.com/bughound-labs/bughound/internal/llm"
	"github.com/bughound-labs/bughound/internal/logger"
	"github.com/bughound-labs/bughound/internal/snippets"
)

var (
	runSample        string
	runHeuristicOnly bool
	runJSON          bool
	runNoDiff        bool
	runWrite         string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a snippet through the full pipeline",
	Long: `Run a code snippet through the detect → fix → risk pipeline and print
the findings, the proposed fix, a diff, the risk report, and the agent trace.

The snippet comes from a file argument, a built-in sample, or stdin:

  bughound run snippet.py
  bughound run --sample mixed_issues.py
  cat snippet.py | bughound run

By default the offline mock gateway is used, so the model path and its
fallback to heuristics are visible without an API key. Use --mode openai
with OPENAI_API_KEY set for real model calls, or --heuristic-only to skip
the gateway entirely.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCommand,
}

func init() {
	runCmd.Flags().StringVar(&runSample, "sample", "", "Run a named sample snippet (see 'bughound samples')")
	runCmd.Flags().BoolVar(&runHeuristicOnly, "heuristic-only", false, "Skip the gateway and use local heuristics only")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Print the raw run result as JSON")
	runCmd.Flags().BoolVar(&runNoDiff, "no-diff", false, "Skip the diff section")
	runCmd.Flags().StringVar(&runWrite, "write", "", "Write the proposed fix to this path (asks first unless auto-apply is endorsed)")
	rootCmd.AddCommand(runCmd)
}

func runCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(logPath, mode, modelName, temperature)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	snippet, err := readSnippet(cfg, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(snippet) == "" {
		return fmt.Errorf("empty snippet: paste some code or load a sample to begin")
	}

	client, err := selectClient(cfg)
	if err != nil {
		return err
	}

	result := agent.New(client).Run(cmd.Context(), snippet)

	if runJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		renderResult(snippet, result, !runNoDiff)
	}

	writeAudit(cfg, client, snippet, result)

	if runWrite != "" {
		return writeFix(runWrite, result)
	}
	return nil
}

// readSnippet resolves the input: --sample wins, then a file argument, then
// stdin.
func readSnippet(cfg *config.Config, args []string) (string, error) {
	if runSample != "" {
		lib, err := snippets.Load(cfg.SnippetsPath)
		if err != nil {
			return "", err
		}
		code, ok := lib.Get(runSample)
		if !ok {
			return "", fmt.Errorf("unknown sample %q (see 'bughound samples')", runSample)
		}
		return code, nil
	}

	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read snippet: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// selectClient builds the gateway for the requested mode. The remote mode
// refuses to run without a credential instead of silently degrading.
func selectClient(cfg *config.Config) (llm.Client, error) {
	if runHeuristicOnly {
		return nil, nil
	}

	switch cfg.Mode {
	case config.ModeOffline:
		return llm.NewMock(), nil
	case config.ModeOpenAI:
		client, err := llm.NewOpenAI(llm.Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			Temperature: float32(cfg.Temperature),
			BaseURL:     cfg.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want %s or %s)", cfg.Mode, config.ModeOffline, config.ModeOpenAI)
	}
}

func writeAudit(cfg *config.Config, client llm.Client, snippet string, result agent.Result) {
	auditLogger, err := logger.New(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to open audit log: %v\n", err)
		return
	}
	defer auditLogger.Close()

	event := logger.RunEvent{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Mode:          cfg.Mode,
		SnippetLines:  len(strings.Split(strings.TrimSpace(snippet), "\n")),
		Findings:      len(result.Findings),
		RiskScore:     result.Risk.Score,
		RiskLevel:     string(result.Risk.Level),
		ShouldAutofix: result.Risk.ShouldAutofix,
		FallbackUsed:  fallbackUsed(result),
	}
	if client != nil && client.Name() == "openai" {
		event.Model = cfg.Model
	}
	if runHeuristicOnly {
		event.Mode = "heuristic-only"
	}

	if err := auditLogger.Log(event); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write audit log: %v\n", err)
	}
}

// writeFix saves the proposed fix, asking for approval when the risk policy
// did not endorse auto-apply.
func writeFix(path string, result agent.Result) error {
	if strings.TrimSpace(result.Revised) == "" {
		return fmt.Errorf("no fix was produced; nothing to write")
	}

	if !result.Risk.ShouldAutofix {
		res := approval.Ask(approval.Prompt{
			Target:    path,
			RiskLevel: string(result.Risk.Level),
			Score:     result.Risk.Score,
			Reasons:   result.Risk.Reasons,
		})
		if !res.Approved {
			fmt.Fprintln(os.Stderr, "Fix not written.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(result.Revised), 0644); err != nil {
		return fmt.Errorf("failed to write fix: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Fix written to %s\n", path)
	return nil
}

// fallbackUsed reports whether any trace entry records a degradation from
// the model path to local heuristics.
func fallbackUsed(result agent.Result) bool {
	for _, e := range result.Trace {
		if strings.Contains(e.Message, "Falling back") {
			return true
		}
	}
	return false
}
