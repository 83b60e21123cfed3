// Package health provides health check endpoints for javaparse's
// long-running daemons (serve-metrics, watch).
//
// # Overview
//
// The health package implements liveness and readiness probes for
// Kubernetes and other orchestration systems, along with version
// information endpoints. It provides a framework for checking the
// health of various system components.
//
// # Endpoints
//
// The package provides three main endpoints:
//
// - /health: Liveness probe - indicates if the process is running
// - /ready: Readiness probe - indicates if the system can serve traffic
// - /version: Build information - version, commit, build time
//
// # Usage
//
//	// Create health checker
//	checker := health.New(5 * time.Second)
//
//	// Register component checks
//	checker.RegisterCheck("config", func(ctx context.Context) error {
//	 if cfg == nil {
//	 return errors.New("config not loaded")
//	 }
//	 return nil
//	})
//	checker.RegisterCheck("watch", func(ctx context.Context) error {
//	 return watcher.Ping(ctx)
//	})
//	checker.RegisterCheck("history", func(ctx context.Context) error {
//	 return store.Ping(ctx)
//	})
//
//	// Add HTTP handlers
//	http.HandleFunc("/health", checker.LivenessHandler())
//	http.HandleFunc("/ready", checker.ReadinessHandler())
//	http.HandleFunc("/version", health.VersionHandler("1.0.0", "abc123", "2026-07-31"))
//
// # Liveness vs Readiness
//
// **Liveness Probe** (/health):
// - Indicates if the process is alive and running
// - Returns 200 OK if process is alive
// - Used by Kubernetes to restart pods
// - Fast check (<10ms)
//
// **Readiness Probe** (/ready):
// - Indicates if the system can serve traffic
// - Checks all registered component health checks
// - Returns 200 OK if all components are healthy
// - Returns 503 Service Unavailable if any component is unhealthy
// - Used by Kubernetes to route traffic
// - May take longer (up to 1s for all checks)
//
// # Component Health Checks
//
// Components can register health check functions:
//
//	checker.RegisterCheck("watch", func(ctx context.Context) error {
//	 if !watcher.Running() {
//	 return errors.New("file watcher stopped")
//	 }
//	 return nil
//	})
//
// Common component checks for javaparse:
// - config: Configuration loaded and valid
// - watch: The fsnotify watch loop is running (watch daemon only)
// - history: The parse history store is reachable (if enabled)
//
// # Performance
//
// Health checks are designed to be lightweight:
// - Liveness: <10ms
// - Readiness: <100ms (all component checks)
// - Version: <1ms
//
// # Example Response
//
// Liveness response (/health):
//
//	{
//	 "status": "ok",
//	 "timestamp": "2026-07-31T10:30:00Z"
//	}
//
// Readiness response (/ready):
//
//	{
//	 "status": "ready",
//	 "checks": {
//	 "config": {"status": "ok"},
//	 "watch": {"status": "ok"},
//	 "history": {"status": "ok"}
//	 },
//	 "timestamp": "2026-07-31T10:30:00Z"
//	}
//
// Degraded response (/ready):
//
//	{
//	 "status": "degraded",
//	 "checks": {
//	 "config": {"status": "ok"},
//	 "watch": {"status": "unhealthy", "message": "file watcher stopped"}
//	 },
//	 "timestamp": "2026-07-31T10:30:00Z"
//	}
//
// Version response (/version):
//
//	{
//	 "version": "1.0.0",
//	 "commit": "abc123def456",
//	 "build_time": "2026-07-31T00:00:00Z",
//	 "go_version": "go1.25.0"
//	}
package health
