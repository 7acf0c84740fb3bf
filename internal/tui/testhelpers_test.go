package tui

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countmedown/internal/config"
	"github.com/akyairhashvil/countmedown/internal/models"
	"github.com/akyairhashvil/countmedown/internal/sink"
)

type fakeHistory struct {
	mu       sync.Mutex
	started  []models.Run
	finished map[string]models.RunStatus
	startErr error
}

func (h *fakeHistory) StartRun(_ context.Context, run models.Run) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.startErr != nil {
		return h.startErr
	}
	h.started = append(h.started, run)
	return nil
}

func (h *fakeHistory) FinishRun(_ context.Context, id string, status models.RunStatus, _ time.Time) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.finished == nil {
		h.finished = make(map[string]models.RunStatus)
	}
	h.finished[id] = status
	return nil
}

type testEnv struct {
	now     time.Time
	rec     *sink.Recorder
	history *fakeHistory
	dir     string
	paths   []string
}

func (e *testEnv) advance(d time.Duration) { e.now = e.now.Add(d) }

func setupTestModel(t *testing.T, r config.Record) (Model, *testEnv) {
	t.Helper()
	env := &testEnv{
		now:     time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
		rec:     &sink.Recorder{},
		history: &fakeHistory{},
		dir:     t.TempDir(),
	}
	if r.FilePath == "" {
		r.FilePath = filepath.Join(env.dir, "time.txt")
	}
	m := New(Options{
		Record:     r,
		ConfigPath: filepath.Join(env.dir, "cfg", config.ConfigFileName),
		History:    env.history,
		Now:        func() time.Time { return env.now },
		NewSink: func(path string) sink.Sink {
			env.paths = append(env.paths, path)
			return env.rec
		},
	})
	return m, env
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return out, cmd
}

func press(t *testing.T, m Model, key tea.KeyType) Model {
	t.Helper()
	next, _ := update(t, m, tea.KeyMsg{Type: key})
	return next
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatalf("expected tick to be rescheduled")
	}
	return next
}

func linesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
