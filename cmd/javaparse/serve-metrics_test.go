package main

import "testing"

func TestServeMetricsCmdExists(t *testing.T) {
	if serveMetricsCmd == nil {
		t.Fatal("serveMetricsCmd is nil")
	}
	if serveMetricsCmd.Use != "serve-metrics" {
		t.Errorf("serveMetricsCmd.Use = %q, want %q", serveMetricsCmd.Use, "serve-metrics")
	}
	if serveMetricsCmd.RunE == nil {
		t.Error("serveMetricsCmd.RunE should not be nil")
	}
}
