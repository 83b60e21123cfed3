package main

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/javalang/javaparse/pkg/cli"
	"github.com/javalang/javaparse/pkg/config"
	"github.com/javalang/javaparse/pkg/history"
	"github.com/javalang/javaparse/pkg/javaparse"
	"github.com/javalang/javaparse/pkg/javaparse/security"
	"github.com/javalang/javaparse/pkg/telemetry/logging"
	"github.com/javalang/javaparse/pkg/telemetry/metrics"
)

var parseFlags struct {
	dir string
	concurrency int
	format string
	progress bool
}

var parseCmd = &cobra.Command{
	Use: "parse [files...]",
	Short: "Parse one or more Java source files",
	Long: `Parse one or more Java source files into an arena-backed AST,
reporting success/failure per file.

Examples:
 # Parse individual files
 javaparse parse Greeter.java Point.java

 # Parse every *.java file under a directory, 8 at a time
 javaparse parse --dir src/main/java --concurrency 8

 # JSON output for CI
 javaparse parse --dir src/main/java --format json`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFlags.dir, "dir", "d", "", "directory of .java files to parse recursively")
	parseCmd.Flags().IntVar(&parseFlags.concurrency, "concurrency", 0, "parallel workers (0 = one per file)")
	parseCmd.Flags().StringVar(&parseFlags.format, "format", "text", "output format: text, json")
	parseCmd.Flags().BoolVar(&parseFlags.progress, "progress", false, "show a progress bar (text format only)")
}

// fileResult is the outcome of parsing a single file, in the shape the
// text/JSON formatters render.
type fileResult struct {
	Path string `json:"path"`
	Success bool `json:"success"`
	DurationMS int64 `json:"duration_ms"`
	Tokens int `json:"tokens,omitempty"`
	Nodes int `json:"nodes,omitempty"`
	Error string `json:"error,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	files, err := collectParseTargets(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return cli.NewCommandError("parse", fmt.Errorf("no .java files to parse"))
	}

	if err := config.Initialize(cfgFile); err != nil {
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "no config at %s, using defaults: %v\n", cfgFile, err)
		}
		defaultCfg := &config.Config{}
		config.ApplyDefaults(defaultCfg)
		config.SetConfig(defaultCfg)
	}
	cfg := config.GetConfig()

	secCfg := security.Config{
		MaxSourceBytes: cfg.Security.MaxSourceBytes,
		MaxSourceChars: cfg.Security.MaxSourceChars,
		MaxTokenCount: cfg.Security.MaxTokenCount,
		MaxRecursionDepth: cfg.Security.MaxRecursionDepth,
		ParseTimeout: cfg.Security.ParseTimeout,
		TimeoutCheckEvery: cfg.Security.TimeoutCheckEvery,
		DepthCheckEvery: cfg.Security.DepthCheckEvery,
	}

	var logger *logging.Logger
	if l, lerr := logging.New(logging.Config{
		Level: cfg.Logging.Level,
		Format: logging.LogFormat(cfg.Logging.Format),
		AddSource: cfg.Logging.AddSource,
	}); lerr == nil {
		logger = l
		defer logger.Shutdown()
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Metrics, nil)
	}

	var store *history.Store
	if cfg.History.Enabled {
		s, herr := history.NewStore(cfg.History)
		if herr != nil {
			return cli.NewCommandError("parse", fmt.Errorf("opening history store: %w", herr))
		}
		store = s
		defer store.Close()
	}

	concurrency := parseFlags.concurrency
	if concurrency <= 0 {
		concurrency = len(files)
	}

	var progress cli.ProgressReporter
	if parseFlags.progress && parseFlags.format != "json" {
		progress = cli.NewProgressReporter(cmd.OutOrStdout())
		progress.Start(int64(len(files)))
	}

	results := parseWithTelemetry(files, concurrency, secCfg, logger, collector, store, progress)

	if progress != nil {
		progress.Finish()
	}

	if err := outputParseResults(cmd, results); err != nil {
		return err
	}

	for _, r := range results {
		if !r.Success {
			return cli.NewCommandError("parse", fmt.Errorf("%d of %d files failed to parse", countFailures(results), len(results)))
		}
	}
	return nil
}

// collectParseTargets resolves args plus --dir into a flat, deduplicated
// list of .java files.
func collectParseTargets(args []string) ([]string, error) {
	files := append([]string{}, args...)

	if parseFlags.dir != "" {
		err := filepath.WalkDir(parseFlags.dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == ".java" {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", parseFlags.dir, err)
		}
	}
	return files, nil
}

// parseWithTelemetry parses files over a bounded worker pool, building one
// Parser per file so each parse gets its own logger/metrics
// attachment and its own arena. Unlike javaparse.ParseFiles,
// it also times each parse and, when store is non-nil, records one
// history.Entry per file — bookkeeping the library-level helper does not
// need and so does not carry.
func parseWithTelemetry(
	files []string,
	concurrency int,
	secCfg security.Config,
	logger *logging.Logger,
	collector *metrics.Collector,
	store *history.Store,
	progress cli.ProgressReporter,
) []fileResult {
	results := make([]fileResult, len(files))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	var done int64
	var mu sync.Mutex

	for i, path := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i] = parseOneFile(path, secCfg, logger, collector, store)

			if progress != nil {
				mu.Lock()
				done++
				progress.Update(done)
				mu.Unlock()
			}
		}(i, path)
	}
	wg.Wait()
	return results
}

func parseOneFile(
	path string,
	secCfg security.Config,
	logger *logging.Logger,
	collector *metrics.Collector,
	store *history.Store,
) fileResult {
	p := javaparse.NewParser(secCfg)
	if logger != nil {
		p.WithLogger(logger)
	}
	if collector != nil {
		p.WithMetrics(collector)
	}

	sessionID := uuid.NewString()
	start := time.Now()
	result, err := p.Parse(path)
	duration := time.Since(start)

	fr := fileResult{
		Path: path,
		Success: err == nil && result.IsSuccess(),
		DurationMS: duration.Milliseconds(),
	}
	if fr.Success {
		fr.Tokens = p.TokenCount()
		fr.Nodes = result.Arena().Len()
	} else if result.Errors() != nil {
		fr.Error = result.String()
	} else if err != nil {
		fr.Error = err.Error()
	}

	if store != nil {
		entry := history.Entry{
			ID: sessionID,
			Path: path,
			Success: fr.Success,
			DurationMS: fr.DurationMS,
			Tokens: fr.Tokens,
			Nodes: fr.Nodes,
			ErrorMessage: fr.Error,
		}
		if rerr := store.Record(context.Background(), entry); rerr != nil && logger != nil {
			logger.Error("failed to record history entry", "path", path, "error", rerr)
		}
	}

	return fr
}

func countFailures(results []fileResult) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}

func outputParseResults(cmd *cobra.Command, results []fileResult) error {
	if parseFlags.format == "json" {
		formatter := cli.NewFormatter(cli.FormatJSON)
		return formatter.FormatTo(cmd.OutOrStdout(), results)
	}

	w := cmd.OutOrStdout()
	passed := 0
	for _, r := range results {
		if r.Success {
			passed++
			fmt.Fprintf(w, "✓ %s (%d tokens, %d nodes, %dms)\n", r.Path, r.Tokens, r.Nodes, r.DurationMS)
		} else {
			fmt.Fprintf(w, "✗ %s: %s\n", r.Path, r.Error)
		}
	}
	fmt.Fprintf(w, "\n%d/%d files parsed successfully\n", passed, len(results))
	return nil
}
