package models

import "time"

// RunStatus enumerates the lifecycle of a recorded countdown.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusStopped   RunStatus = "stopped"
)

// Mode tells which front-end started a run.
type Mode string

const (
	ModeCLI         Mode = "cli"
	ModeInteractive Mode = "interactive"
)

// Run is one countdown as kept in the history store.
type Run struct {
	ID           string
	Mode         Mode
	TimeIn       string
	Until        bool
	TotalSeconds uint32
	Step         int
	Prefix       string
	Ending       string
	FilePath     string
	Status       RunStatus
	StartedAt    time.Time
	FinishedAt   *time.Time
}

// Duration is how long the run lasted, or zero while it is still running.
func (r Run) Duration() time.Duration {
	if r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// IsFinished reports whether the run reached a terminal status.
func (r Run) IsFinished() bool {
	return r.Status == RunStatusCompleted || r.Status == RunStatusStopped
}
