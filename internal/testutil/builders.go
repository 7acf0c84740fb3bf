// Package testutil holds fluent builders shared by tests.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/akyairhashvil/countmedown/internal/countdown"
	"github.com/akyairhashvil/countmedown/internal/models"
)

// PlanBuilder provides fluent API for creating countdown plans.
type PlanBuilder struct {
	plan countdown.Plan
}

func NewPlan() *PlanBuilder {
	return &PlanBuilder{
		plan: countdown.Plan{
			TotalSeconds: 5,
			Step:         1,
			Prefix:       "T:",
			Ending:       "done",
		},
	}
}

func (b *PlanBuilder) WithSeconds(s uint32) *PlanBuilder {
	b.plan.TotalSeconds = s
	return b
}

func (b *PlanBuilder) WithStep(step int) *PlanBuilder {
	b.plan.Step = step
	return b
}

func (b *PlanBuilder) WithPrefix(p string) *PlanBuilder {
	b.plan.Prefix = p
	return b
}

func (b *PlanBuilder) WithEnding(e string) *PlanBuilder {
	b.plan.Ending = e
	return b
}

func (b *PlanBuilder) WithPath(p string) *PlanBuilder {
	b.plan.Path = p
	return b
}

func (b *PlanBuilder) Build() countdown.Plan {
	return b.plan
}

// RunBuilder provides fluent API for creating history runs.
type RunBuilder struct {
	run models.Run
}

func NewRun() *RunBuilder {
	return &RunBuilder{
		run: models.Run{
			ID:           uuid.NewString(),
			Mode:         models.ModeCLI,
			TimeIn:       "5:00",
			TotalSeconds: 300,
			Step:         1,
			Status:       models.RunStatusRunning,
			StartedAt:    time.Now().Truncate(time.Second),
		},
	}
}

func (b *RunBuilder) WithID(id string) *RunBuilder {
	b.run.ID = id
	return b
}

func (b *RunBuilder) WithMode(m models.Mode) *RunBuilder {
	b.run.Mode = m
	return b
}

// WithTime sets the entered text and the seconds it resolved to.
func (b *RunBuilder) WithTime(timeIn string, seconds uint32) *RunBuilder {
	b.run.TimeIn = timeIn
	b.run.TotalSeconds = seconds
	return b
}

func (b *RunBuilder) Until() *RunBuilder {
	b.run.Until = true
	return b
}

func (b *RunBuilder) WithText(prefix, ending string) *RunBuilder {
	b.run.Prefix = prefix
	b.run.Ending = ending
	return b
}

func (b *RunBuilder) WithPath(p string) *RunBuilder {
	b.run.FilePath = p
	return b
}

func (b *RunBuilder) StartedAt(t time.Time) *RunBuilder {
	b.run.StartedAt = t
	return b
}

// Finished marks the run with status, ending after d.
func (b *RunBuilder) Finished(status models.RunStatus, d time.Duration) *RunBuilder {
	end := b.run.StartedAt.Add(d)
	b.run.Status = status
	b.run.FinishedAt = &end
	return b
}

func (b *RunBuilder) Build() models.Run {
	return b.run
}
