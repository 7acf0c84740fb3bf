// Package report renders the countdown run history for people to read.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/akyairhashvil/countmedown/internal/countdown"
	"github.com/akyairhashvil/countmedown/internal/models"
)

// RenderPDF writes a one-document summary of runs to w.
func RenderPDF(w io.Writer, runs []models.Run, generatedAt time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Countdown History: %s", generatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	if len(runs) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "No runs recorded.")
		pdf.Ln(8)
	}

	completed := 0
	var total time.Duration
	for _, r := range runs {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s  %s (%s)", r.StartedAt.Format("2006-01-02 15:04:05"), r.TimeIn, r.Status)))
		pdf.Ln(6)

		pdf.SetFont("Arial", "", 11)
		mode := "relative"
		if r.Until {
			mode = "until"
		}
		pdf.Cell(0, 7, fmt.Sprintf("    %s, %s, %s, step %ds, %s", r.Mode, mode,
			countdown.Format(int64(r.TotalSeconds)), r.Step, formatDuration(r)))
		pdf.Ln(6)
		if r.Prefix != "" || r.Ending != "" {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("    prefix %q, ending %q", r.Prefix, r.Ending)), "", "", false)
		}
		if r.FilePath != "" {
			pdf.MultiCell(0, 6, tr("    -> "+r.FilePath), "", "", false)
		}
		pdf.Ln(2)

		if r.Status == models.RunStatusCompleted {
			completed++
		}
		total += r.Duration()
	}

	// Summary
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Runs: %d  Completed: %d  Time counted: %s", len(runs), completed, total.Round(time.Second)))
	pdf.Ln(10)

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "render pdf")
	}
	return nil
}

// WritePDF renders runs into a new file at path, creating parent dirs.
func WritePDF(path string, runs []models.Run, generatedAt time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create report dir for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create report %s", path)
	}
	if err := RenderPDF(f, runs, generatedAt); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close report %s", path)
}

// DefaultFileName is history_<date>.pdf.
func DefaultFileName(at time.Time) string {
	return fmt.Sprintf("history_%s.pdf", at.Format("2006-01-02"))
}

func formatDuration(r models.Run) string {
	if !r.IsFinished() {
		return "in progress"
	}
	return "ran " + r.Duration().Round(time.Second).String()
}
