package countdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRunsToCompletion(t *testing.T) {
	s := NewSession()
	t0 := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	plan := Plan{TotalSeconds: 3, Step: 1, Prefix: "T:", Ending: "done"}

	state, err := s.Toggle(plan, t0)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, state)

	var lines []string
	for i := 0; i <= 4; i++ {
		if e, ok := s.Tick(t0.Add(time.Duration(i) * time.Second)); ok {
			lines = append(lines, e.Line)
			if e.Final {
				break
			}
		}
	}

	assert.Equal(t, []string{"T: 00:03", "T: 00:02", "T: 00:01", "done"}, lines)
	assert.Equal(t, StateIdle, s.Snapshot().State)
}

func TestSessionQuantizesBySteps(t *testing.T) {
	s := NewSession()
	t0 := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	_, err := s.Toggle(Plan{TotalSeconds: 5, Step: 2, Ending: "end"}, t0)
	require.NoError(t, err)

	var emitted []Emission
	for i := 0; i <= 6; i++ {
		if e, ok := s.Tick(t0.Add(time.Duration(i) * time.Second)); ok {
			emitted = append(emitted, e)
		}
	}

	require.Len(t, emitted, 4)
	assert.Equal(t, []int64{5, 3, 1}, []int64{emitted[0].Remaining, emitted[1].Remaining, emitted[2].Remaining})
	assert.Equal(t, []int{0, 1, 2}, []int{emitted[0].Tick, emitted[1].Tick, emitted[2].Tick})
	assert.True(t, emitted[3].Final)
	assert.Equal(t, "end", emitted[3].Line)
}

func TestSessionTickWhileIdle(t *testing.T) {
	s := NewSession()
	_, ok := s.Tick(time.Now())
	assert.False(t, ok)
}

func TestSessionLateTickJumpsToEnding(t *testing.T) {
	s := NewSession()
	t0 := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	_, err := s.Toggle(Plan{TotalSeconds: 10, Step: 1, Ending: "late"}, t0)
	require.NoError(t, err)

	e, ok := s.Tick(t0.Add(time.Hour))
	require.True(t, ok)
	assert.True(t, e.Final)
	assert.Equal(t, "late", e.Line)
}

func TestSessionToggleWhileRunningStops(t *testing.T) {
	s := NewSession()
	t0 := time.Now()
	plan := Plan{TotalSeconds: 60, Step: 1}

	state, err := s.Toggle(plan, t0)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, state)

	state, err = s.Toggle(plan, t0)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, state)

	_, ok := s.Tick(t0.Add(time.Second))
	assert.False(t, ok, "a stopped session must not emit, not even the ending")
}

func TestSessionStop(t *testing.T) {
	s := NewSession()
	assert.False(t, s.Stop())

	_, err := s.Toggle(Plan{TotalSeconds: 5, Step: 1}, time.Now())
	require.NoError(t, err)
	assert.True(t, s.Stop())
	assert.Equal(t, Snapshot{}, s.Snapshot())
}

func TestSessionRejectsInvalidPlan(t *testing.T) {
	s := NewSession()
	state, err := s.Toggle(Plan{TotalSeconds: 5, Step: 0}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidStep)
	assert.Equal(t, StateIdle, state)

	state, err = s.Toggle(Plan{TotalSeconds: 5, Step: int(MaxStep) + 1}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidStep)
	assert.Equal(t, StateIdle, state)

	const unixToInternal = 62135596800
	far := time.Unix(1<<63-1-unixToInternal-5, 0)
	state, err = s.Toggle(Plan{TotalSeconds: 10, Step: 1}, far)
	assert.ErrorIs(t, err, ErrTimeOverflow)
	assert.Equal(t, StateIdle, state)
}

func TestSessionSnapshotIsConsistent(t *testing.T) {
	s := NewSession()
	t0 := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	plan := Plan{TotalSeconds: 90, Step: 3, Prefix: "p", Ending: "e", Path: "/tmp/x"}
	_, err := s.Toggle(plan, t0)
	require.NoError(t, err)
	_, _ = s.Tick(t0)

	snap := s.Snapshot()
	assert.Equal(t, StateRunning, snap.State)
	assert.Equal(t, plan, snap.Plan)
	assert.Equal(t, int64(87), snap.Remaining)
	assert.Equal(t, 1, snap.Ticks)
	assert.Equal(t, t0.Add(90*time.Second), snap.End)
}

// Two rapid activations always cancel out, whatever goroutines they run on.
func TestSessionRapidDoubleToggle(t *testing.T) {
	for round := 0; round < 50; round++ {
		s := NewSession()
		plan := Plan{TotalSeconds: 30, Step: 1}
		now := time.Now()

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = s.Toggle(plan, now)
			}()
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				snap := s.Snapshot()
				if snap.State == StateRunning {
					assert.Equal(t, plan, snap.Plan)
				} else {
					assert.Equal(t, Plan{}, snap.Plan)
				}
			}
		}()
		wg.Wait()

		assert.Equal(t, StateIdle, s.Snapshot().State)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "running", StateRunning.String())
}
