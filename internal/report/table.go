package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/akyairhashvil/countmedown/internal/countdown"
	"github.com/akyairhashvil/countmedown/internal/models"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// WriteTable prints runs as a bordered table.
func WriteTable(w io.Writer, runs []models.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		until := ""
		if r.Until {
			until = "until"
		}
		rows = append(rows, []string{
			r.StartedAt.Format("2006-01-02 15:04:05"),
			string(r.Mode),
			r.TimeIn,
			until,
			countdown.Format(int64(r.TotalSeconds)),
			strconv.Itoa(r.Step),
			string(r.Status),
			r.FilePath,
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STARTED", "MODE", "TIME", "", "LENGTH", "STEP", "STATUS", "FILE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
