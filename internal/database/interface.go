package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/countmedown/internal/models"
)

// RunRepository defines run history operations.
type RunRepository interface {
	StartRun(ctx context.Context, run models.Run) error
	FinishRun(ctx context.Context, id string, status models.RunStatus, finishedAt time.Time) error
	GetRun(ctx context.Context, id string) (models.Run, error)
	RecentRuns(ctx context.Context, limit int) ([]models.Run, error)
}

var _ RunRepository = (*Database)(nil)
