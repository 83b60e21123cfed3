package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/javalang/javaparse/pkg/cli"
	"github.com/javalang/javaparse/pkg/config"
	"github.com/javalang/javaparse/pkg/telemetry/health"
	"github.com/javalang/javaparse/pkg/telemetry/metrics"
)

var serveMetricsFlags struct {
	address string
}

var serveMetricsCmd = &cobra.Command{
	Use: "serve-metrics",
	Short: "Serve Prometheus metrics and health endpoints",
	Long: `Start an HTTP server exposing Prometheus metrics (metrics.path) and
liveness/readiness/version endpoints, for deployments that run "javaparse
watch" as a long-lived process and need an external scrape target.

Examples:
 javaparse serve-metrics --config javaparse.yaml
 javaparse serve-metrics --listen :9090`,
	RunE: runServeMetrics,
}

func init() {
	rootCmd.AddCommand(serveMetricsCmd)

	serveMetricsCmd.Flags().StringVar(&serveMetricsFlags.address, "listen", "", "override listen address (host:port)")
}

func runServeMetrics(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	address := serveMetricsFlags.address
	if address == "" {
		address = fmt.Sprintf(":%d", cfg.Metrics.Port)
	}

	collector := metrics.NewCollector(&cfg.Metrics, nil)

	checker := health.New(5 * time.Second)

	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{}))
	health.HTTPMiddleware(mux, checker, Version, GitCommit, BuildDate)

	srv := &http.Server{
		Addr: address,
		Handler: mux,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	fmt.Printf("✓ Metrics server listening on %s\n", address)
	fmt.Printf("✓ Metrics endpoint: http://%s%s\n", address, cfg.Metrics.Path)
	fmt.Printf("✓ Health endpoints: http://%s/health, http://%s/ready\n", address, address)
	fmt.Println("Press Ctrl+C to stop")

	ctx := cli.SetupSignalHandler()
	select {
	case err := <-errChan:
		return cli.NewCommandError("serve-metrics", err)
	case <-ctx.Done():
		fmt.Println("\nShutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return cli.NewCommandError("serve-metrics", err)
		}
		fmt.Println("✓ Metrics server stopped")
		return nil
	}
}
