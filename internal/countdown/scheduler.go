package countdown

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"
)

// Sink receives every emitted line. Implementations live in internal/sink.
type Sink interface {
	Emit(line string) error
}

// Result summarizes a finished run.
type Result struct {
	Ticks      int
	Remaining  int64
	StartedAt  time.Time
	FinishedAt time.Time
}

// Scheduler runs blocking countdowns against a Sink.
type Scheduler struct {
	sink   Sink
	clock  Clock
	logger *slog.Logger
}

type Option func(*Scheduler)

func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewScheduler(sink Sink, opts ...Option) *Scheduler {
	s := &Scheduler{
		sink:   sink,
		clock:  RealClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run emits one line per step until the end instant passes, then emits
// plan.Ending exactly once. The loop condition always re-reads the clock, so
// a step that does not divide the total overshoots below zero on the last
// tick. Sink failures are logged and never stop the run.
func (s *Scheduler) Run(ctx context.Context, plan Plan) (Result, error) {
	if err := plan.Validate(); err != nil {
		return Result{}, err
	}
	start := s.clock.Now()
	end, err := EndInstant(start, plan.TotalSeconds)
	if err != nil {
		return Result{}, err
	}

	res := Result{StartedAt: start, Remaining: int64(plan.TotalSeconds)}
	step := plan.StepDuration()
	for s.clock.Now().Before(end) {
		s.emit(plan.Line(res.Remaining))
		res.Remaining -= int64(plan.Step)
		res.Ticks++
		if err := s.clock.Sleep(ctx, step); err != nil {
			res.FinishedAt = s.clock.Now()
			return res, err
		}
	}

	s.emit(plan.Ending)
	res.FinishedAt = s.clock.Now()
	s.logger.Debug("countdown completed",
		slog.Int("ticks", res.Ticks),
		slog.Int64("remaining", res.Remaining),
	)
	return res, nil
}

// destination is implemented by sink errors that know which target failed.
type destination interface {
	Destination() string
}

func (s *Scheduler) emit(line string) {
	err := s.sink.Emit(line)
	if err == nil {
		return
	}
	path := "unknown"
	var d destination
	if errors.As(err, &d) {
		path = d.Destination()
	}
	s.logger.Warn("sink write failed", slog.String("path", path), slog.String("error", err.Error()))
}
