package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/javalang/javaparse/pkg/javaparse/security"
)

func TestParseCmdExists(t *testing.T) {
	if parseCmd == nil {
		t.Fatal("parseCmd is nil")
	}
	if parseCmd.Use != "parse [files...]" {
		t.Errorf("parseCmd.Use = %q", parseCmd.Use)
	}
	if parseCmd.RunE == nil {
		t.Error("parseCmd.RunE should not be nil")
	}
}

func TestCollectParseTargets_ExplicitArgs(t *testing.T) {
	parseFlags.dir = ""
	files, err := collectParseTargets([]string{"A.java", "B.java"})
	if err != nil {
		t.Fatalf("collectParseTargets() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("len(files) = %d, want 2", len(files))
	}
}

func TestCollectParseTargets_Dir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "A.java"), []byte("class A {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	parseFlags.dir = dir
	defer func() { parseFlags.dir = "" }()

	files, err := collectParseTargets(nil)
	if err != nil {
		t.Fatalf("collectParseTargets() error = %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "A.java" {
		t.Errorf("files = %v, want [.../A.java]", files)
	}
}

func TestParseOneFile_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Greeter.java")
	if err := os.WriteFile(path, []byte("class Greeter { void hi() {} }"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := parseOneFile(path, security.Default(), nil, nil, nil)
	if !result.Success {
		t.Errorf("parseOneFile() success = false, error = %q", result.Error)
	}
	if result.Nodes == 0 {
		t.Error("expected a non-zero node count on success")
	}
}

func TestParseOneFile_Failure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Broken.java")
	if err := os.WriteFile(path, []byte("class Broken {"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := parseOneFile(path, security.Default(), nil, nil, nil)
	if result.Success {
		t.Error("expected parseOneFile() to fail on truncated source")
	}
	if result.Error == "" {
		t.Error("expected a non-empty error message on failure")
	}
}

func TestCountFailures(t *testing.T) {
	results := []fileResult{{Success: true}, {Success: false}, {Success: false}}
	if got := countFailures(results); got != 2 {
		t.Errorf("countFailures() = %d, want 2", got)
	}
}
