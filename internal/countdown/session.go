package countdown

import (
	"sync"
	"time"
)

// State is the interactive run state.
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Snapshot is a consistent copy of a Session's fields.
type Snapshot struct {
	State     State
	Plan      Plan
	Remaining int64
	Ticks     int
	End       time.Time
}

// Emission is one line produced by Session.Tick.
type Emission struct {
	Line      string
	Remaining int64
	Tick      int
	Final     bool
}

// Session owns the state of an interactively driven countdown. A periodic
// caller feeds it wall-clock times through Tick; user actions go through
// Toggle and Stop. Every method takes the same lock, so a reader never sees
// a plan paired with another run's counter.
type Session struct {
	mu        sync.Mutex
	state     State
	plan      Plan
	remaining int64
	ticks     int
	end       time.Time
	nextEmit  time.Time
}

func NewSession() *Session {
	return &Session{}
}

// Toggle starts plan when idle and stops the current run when running.
// A failed start leaves the session idle.
func (s *Session) Toggle(plan Plan, now time.Time) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRunning {
		s.reset()
		return s.state, nil
	}
	if err := plan.Validate(); err != nil {
		return s.state, err
	}
	end, err := EndInstant(now, plan.TotalSeconds)
	if err != nil {
		return s.state, err
	}
	s.state = StateRunning
	s.plan = plan
	s.remaining = int64(plan.TotalSeconds)
	s.ticks = 0
	s.end = end
	s.nextEmit = now
	return s.state, nil
}

// Stop halts a running countdown without emitting the ending. It reports
// whether a run was active.
func (s *Session) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning {
		return false
	}
	s.reset()
	return true
}

// Tick advances the countdown to now. It returns false when nothing is due.
// Once now reaches the end instant the ending is returned as a final
// emission and the session goes idle.
func (s *Session) Tick(now time.Time) (Emission, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return Emission{}, false
	}
	if !now.Before(s.end) {
		e := Emission{Line: s.plan.Ending, Remaining: s.remaining, Tick: s.ticks, Final: true}
		s.reset()
		return e, true
	}
	if now.Before(s.nextEmit) {
		return Emission{}, false
	}
	e := Emission{Line: s.plan.Line(s.remaining), Remaining: s.remaining, Tick: s.ticks}
	s.remaining -= int64(s.plan.Step)
	s.ticks++
	s.nextEmit = s.nextEmit.Add(s.plan.StepDuration())
	return e, true
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		State:     s.state,
		Plan:      s.plan,
		Remaining: s.remaining,
		Ticks:     s.ticks,
		End:       s.end,
	}
}

func (s *Session) reset() {
	s.state = StateIdle
	s.plan = Plan{}
	s.remaining = 0
	s.ticks = 0
	s.end = time.Time{}
	s.nextEmit = time.Time{}
}
