package security

import (
	"testing"
	"time"
)

func TestGuardDepthExceeded(t *testing.T) {
	g := NewGuard(Default().WithMaxRecursionDepth(2))
	if err := g.EnterDepth(); err != nil {
		t.Fatalf("depth 1: unexpected error: %v", err)
	}
	if err := g.EnterDepth(); err != nil {
		t.Fatalf("depth 2: unexpected error: %v", err)
	}
	err := g.EnterDepth()
	if err == nil {
		t.Fatal("depth 3: expected recursion depth error")
	}
	if err.Type != "parser" {
		t.Errorf("expected parser error type, got %s", err.Type)
	}
}

func TestGuardExitDepthRestoresBudget(t *testing.T) {
	g := NewGuard(Default().WithMaxRecursionDepth(1))
	if err := g.EnterDepth(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.ExitDepth()
	if err := g.EnterDepth(); err != nil {
		t.Fatalf("unexpected error after exit: %v", err)
	}
}

func TestGuardTimeout(t *testing.T) {
	g := NewGuard(Default().WithParseTimeout(1 * time.Nanosecond))
	time.Sleep(time.Millisecond)
	g.cfg.TimeoutCheckEvery = 1
	if err := g.CheckConsume(); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestGuardTokenCount(t *testing.T) {
	g := NewGuard(Default())
	g.cfg.MaxTokenCount = 10
	if err := g.CheckTokenCount(10); err != nil {
		t.Errorf("10 tokens should be within bound: %v", err)
	}
	if err := g.CheckTokenCount(11); err == nil {
		t.Error("11 tokens should exceed bound")
	}
}

func TestGuardSourceSize(t *testing.T) {
	g := NewGuard(Default().WithMaxSourceBytes(100))
	if err := g.CheckSource(100, 100); err != nil {
		t.Errorf("exactly at bound should pass: %v", err)
	}
	if err := g.CheckSource(101, 50); err == nil {
		t.Error("over byte bound should fail")
	}
}
