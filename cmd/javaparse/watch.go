package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javalang/javaparse/pkg/cli"
	"github.com/javalang/javaparse/pkg/config"
	"github.com/javalang/javaparse/pkg/javaparse/security"
	"github.com/javalang/javaparse/pkg/telemetry/logging"
	"github.com/javalang/javaparse/pkg/telemetry/metrics"
	"github.com/javalang/javaparse/pkg/watch"
)

var watchFlags struct {
	directories []string
}

var watchCmd = &cobra.Command{
	Use: "watch",
	Short: "Watch directories and reparse Java files as they change",
	Long: `Watch one or more directories of .java sources, parsing every file on
startup and reparsing any file that is written to afterward.

Examples:
 # Watch directories named in javaparse.yaml
 javaparse watch --config javaparse.yaml

 # Override the watched directories
 javaparse watch --dir src/main/java --dir src/test/java

Press Ctrl+C to stop.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringArrayVar(&watchFlags.directories, "dir", nil, "directory to watch (repeatable; overrides config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	watchCfg := cfg.Watch
	if len(watchFlags.directories) > 0 {
		watchCfg.Directories = watchFlags.directories
	}
	if len(watchCfg.Directories) == 0 {
		return cli.NewConfigError("watch.directories", "no directories configured; pass --dir or set watch.directories")
	}

	secCfg := security.Config{
		MaxSourceBytes: cfg.Security.MaxSourceBytes,
		MaxSourceChars: cfg.Security.MaxSourceChars,
		MaxTokenCount: cfg.Security.MaxTokenCount,
		MaxRecursionDepth: cfg.Security.MaxRecursionDepth,
		ParseTimeout: cfg.Security.ParseTimeout,
		TimeoutCheckEvery: cfg.Security.TimeoutCheckEvery,
		DepthCheckEvery: cfg.Security.DepthCheckEvery,
	}

	logger, err := logging.New(logging.Config{
		Level: cfg.Logging.Level,
		Format: logging.LogFormat(cfg.Logging.Format),
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return cli.NewCommandError("watch", fmt.Errorf("initializing logger: %w", err))
	}
	defer logger.Shutdown()

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Metrics, nil)
	}

	w, err := watch.New(watchCfg, secCfg, logger, collector)
	if err != nil {
		return cli.NewCommandError("watch", fmt.Errorf("creating watcher: %w", err))
	}

	fmt.Printf("✓ Watching %d director(ies): %v\n", len(watchCfg.Directories), watchCfg.Directories)
	fmt.Println("Press Ctrl+C to stop")

	ctx := cli.SetupSignalHandler()
	if err := w.Watch(ctx); err != nil {
		return cli.NewCommandError("watch", err)
	}

	fmt.Println("✓ Watcher stopped")
	return nil
}
