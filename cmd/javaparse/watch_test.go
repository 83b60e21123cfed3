package main

import "testing"

func TestWatchCmdExists(t *testing.T) {
	if watchCmd == nil {
		t.Fatal("watchCmd is nil")
	}
	if watchCmd.Use != "watch" {
		t.Errorf("watchCmd.Use = %q, want %q", watchCmd.Use, "watch")
	}
	if watchCmd.RunE == nil {
		t.Error("watchCmd.RunE should not be nil")
	}
}

func TestRunWatch_NoDirectoriesConfigured(t *testing.T) {
	watchFlags.directories = nil
	cfgFile = "testdata/does-not-exist.yaml"
	defer func() { cfgFile = "javaparse.yaml" }()

	err := runWatch(watchCmd, nil)
	if err == nil {
		t.Error("runWatch() with no directories configured should return an error")
	}
}
