package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/countmedown/internal/models"
)

const runColumns = `id, mode, time_in, until_mode, total_seconds, step, prefix, ending, file_path, status, started_at, finished_at`

// StartRun inserts a new run. The status defaults to running.
func (d *Database) StartRun(ctx context.Context, run models.Run) error {
	if run.ID == "" {
		return wrapRunErr("start", "", ErrInvalidRun)
	}
	status := run.Status
	if status == "" {
		status = models.RunStatusRunning
	}
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, string(run.Mode), run.TimeIn, boolToInt(run.Until), int64(run.TotalSeconds), run.Step,
		run.Prefix, run.Ending, run.FilePath, string(status), run.StartedAt.Unix(), nullableUnix(run.FinishedAt))
	return wrapRunErr("start", run.ID, err)
}

// FinishRun moves a running run to a terminal status.
func (d *Database) FinishRun(ctx context.Context, id string, status models.RunStatus, finishedAt time.Time) error {
	res, err := d.DB.ExecContext(ctx,
		"UPDATE runs SET status = ?, finished_at = ? WHERE id = ? AND status = ?",
		string(status), finishedAt.Unix(), id, string(models.RunStatusRunning))
	if err != nil {
		return wrapRunErr("finish", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapRunErr("finish", id, err)
	}
	if n == 0 {
		return wrapRunErr("finish", id, ErrRunNotFound)
	}
	return nil
}

func (d *Database) GetRun(ctx context.Context, id string) (models.Run, error) {
	row := d.DB.QueryRowContext(ctx, "SELECT "+runColumns+" FROM runs WHERE id = ?", id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Run{}, wrapRunErr("get", id, ErrRunNotFound)
	}
	return run, wrapRunErr("get", id, err)
}

// RecentRuns returns up to limit runs, newest first.
func (d *Database) RecentRuns(ctx context.Context, limit int) ([]models.Run, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+runColumns+" FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, wrapRunErr("list", "", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, wrapRunErr("list", "", err)
		}
		runs = append(runs, run)
	}
	return runs, wrapRunErr("list", "", rows.Err())
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(s rowScanner) (models.Run, error) {
	var (
		r          models.Run
		mode       string
		status     string
		until      int
		total      int64
		startedAt  int64
		finishedAt sql.NullInt64
	)
	err := s.Scan(&r.ID, &mode, &r.TimeIn, &until, &total, &r.Step, &r.Prefix, &r.Ending,
		&r.FilePath, &status, &startedAt, &finishedAt)
	if err != nil {
		return models.Run{}, err
	}
	r.Mode = models.Mode(mode)
	r.Status = models.RunStatus(status)
	r.Until = until != 0
	r.TotalSeconds = uint32(total)
	r.StartedAt = time.Unix(startedAt, 0)
	r.FinishedAt = timeFromNullUnix(finishedAt)
	return r, nil
}
