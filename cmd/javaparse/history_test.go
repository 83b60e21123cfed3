package main

import "testing"

func TestHistoryCmdExists(t *testing.T) {
	if historyCmd == nil {
		t.Fatal("historyCmd is nil")
	}
	if historyCmd.Use != "history" {
		t.Errorf("historyCmd.Use = %q, want %q", historyCmd.Use, "history")
	}
	if historyCmd.RunE == nil {
		t.Error("historyCmd.RunE should not be nil")
	}
}

func TestRunHistory_MissingConfig(t *testing.T) {
	cfgFile = "testdata/does-not-exist.yaml"
	defer func() { cfgFile = "javaparse.yaml" }()

	err := runHistory(historyCmd, nil)
	if err == nil {
		t.Error("runHistory() with a missing config file should return an error")
	}
}
