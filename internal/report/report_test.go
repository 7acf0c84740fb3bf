package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/countmedown/internal/models"
	"github.com/akyairhashvil/countmedown/internal/testutil"
)

func testRuns() []models.Run {
	started := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	return []models.Run{
		testutil.NewRun().WithID("a").WithText("Start in:", "gleich").WithPath("/tmp/time.txt").
			StartedAt(started).Finished(models.RunStatusCompleted, 5*time.Minute).Build(),
		testutil.NewRun().WithID("b").WithMode(models.ModeInteractive).WithTime("18:00", 3600).Until().
			StartedAt(started.Add(time.Hour)).Build(),
	}
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPDF(&buf, testRuns(), time.Now()); err != nil {
		t.Fatalf("RenderPDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestRenderPDFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPDF(&buf, nil, time.Now()); err != nil {
		t.Fatalf("RenderPDF failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output for empty history")
	}
}

func TestWritePDFCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", DefaultFileName(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)))
	if err := WritePDF(path, testRuns(), time.Now()); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if filepath.Base(path) != "history_2026-10-17.pdf" {
		t.Fatalf("unexpected file name %s", filepath.Base(path))
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty report, err=%v", err)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, testRuns()); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"STARTED", "2026-10-17 09:30:00", "5:00", "05:00", "completed", "until", "01:00:00", "running", "/tmp/time.txt"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, nil); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No runs recorded." {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
