package models

import (
	"testing"
	"time"
)

func TestRunStatusConstants(t *testing.T) {
	if RunStatusRunning != "running" {
		t.Fatalf("RunStatusRunning = %q", RunStatusRunning)
	}
	if RunStatusCompleted != "completed" {
		t.Fatalf("RunStatusCompleted = %q", RunStatusCompleted)
	}
	if RunStatusStopped != "stopped" {
		t.Fatalf("RunStatusStopped = %q", RunStatusStopped)
	}
	if ModeCLI != "cli" || ModeInteractive != "interactive" {
		t.Fatalf("unexpected mode constants")
	}
}

func TestRunZeroValues(t *testing.T) {
	var r Run
	if r.FinishedAt != nil {
		t.Fatalf("expected nil FinishedAt by default")
	}
	if r.Duration() != 0 {
		t.Fatalf("expected zero duration for unfinished run")
	}
	if r.IsFinished() {
		t.Fatalf("zero run should not be finished")
	}
}

func TestRunDuration(t *testing.T) {
	start := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Second)
	r := Run{StartedAt: start, FinishedAt: &end, Status: RunStatusCompleted}
	if r.Duration() != 90*time.Second {
		t.Fatalf("Duration = %v", r.Duration())
	}
	if !r.IsFinished() {
		t.Fatalf("completed run should be finished")
	}
}
