package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javalang/javaparse/pkg/cli"
	"github.com/javalang/javaparse/pkg/config"
	"github.com/javalang/javaparse/pkg/history"
)

var historyFlags struct {
	path string
	failedOnly bool
	limit int
	format string
}

var historyCmd = &cobra.Command{
	Use: "history",
	Short: "Query the parse history audit trail",
	Long: `Query rows recorded by "javaparse parse" runs
with history.enabled set, answering questions like "what failed last
night's indexing run".

Examples:
 javaparse history --failed-only
 javaparse history --path src/main/java/Foo.java --limit 5
 javaparse history --format json`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyFlags.path, "path", "", "filter by exact source path")
	historyCmd.Flags().BoolVar(&historyFlags.failedOnly, "failed-only", false, "show only failed parses")
	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 50, "maximum rows to return")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	if !cfg.History.Enabled {
		return cli.NewCommandError("history", fmt.Errorf("history.enabled is false in %s", cfgFile))
	}

	store, err := history.NewStore(cfg.History)
	if err != nil {
		return cli.NewCommandError("history", fmt.Errorf("opening history store: %w", err))
	}
	defer store.Close()

	filter := history.Filter{
		Path: historyFlags.path,
		Limit: historyFlags.limit,
	}
	if historyFlags.failedOnly {
		failed := false
		filter.Success = &failed
	}

	entries, err := store.Query(context.Background(), filter)
	if err != nil {
		return cli.NewCommandError("history", err)
	}

	if historyFlags.format == "json" {
		formatter := cli.NewFormatter(cli.FormatJSON)
		return formatter.FormatTo(cmd.OutOrStdout(), entries)
	}

	w := cmd.OutOrStdout()
	for _, e := range entries {
		status := "✓"
		detail := fmt.Sprintf("%d tokens, %d nodes", e.Tokens, e.Nodes)
		if !e.Success {
			status = "✗"
			detail = e.ErrorMessage
		}
		fmt.Fprintf(w, "%s %s %s %dms %s\n", status, e.RecordedAt.Format("2006-01-02 15:04:05"), e.Path, e.DurationMS, detail)
	}
	fmt.Fprintf(w, "\n%d entries\n", len(entries))
	return nil
}
