package config

import "testing"

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if DefaultStep < 1 {
		t.Fatalf("DefaultStep must be at least 1")
	}
	if AppName == "" || ConfigFileName == "" || HistoryDBName == "" {
		t.Fatalf("file names should not be empty")
	}
	if DefaultOutputFile != "./time.txt" {
		t.Fatalf("unexpected DefaultOutputFile %q", DefaultOutputFile)
	}
	if DefaultHistoryLimit <= 0 || DefaultHistoryLimit > MaxHistoryLimit {
		t.Fatalf("DefaultHistoryLimit out of range")
	}
	if MinProgressWidth > MaxProgressWidth {
		t.Fatalf("progress width bounds inverted")
	}
}
