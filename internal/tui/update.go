package tui

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/akyairhashvil/countmedown/internal/config"
	"github.com/akyairhashvil/countmedown/internal/countdown"
	"github.com/akyairhashvil/countmedown/internal/models"
	"github.com/akyairhashvil/countmedown/internal/util"
)

// plan builds a countdown plan from the inputs, or reports why it cannot.
func (m Model) plan() (countdown.Plan, error) {
	if !m.fieldValid(fieldStep) {
		return countdown.Plan{}, errStepField
	}
	return m.record().Plan()
}

// toggle starts a countdown when idle and stops the running one otherwise.
func (m Model) toggle() (Model, tea.Cmd) {
	now := m.now()
	var plan countdown.Plan
	if m.State() == countdown.StateIdle {
		p, err := m.plan()
		if err != nil {
			return m.setError(err), nil
		}
		plan = p
	}

	state, err := m.session.Toggle(plan, now)
	if err != nil {
		util.LogError(m.logger, "start countdown", err)
		return m.setError(err), nil
	}
	if state == countdown.StateIdle {
		m = m.finishRun(models.RunStatusStopped, now)
		m.display(config.IdleTitle)
		return m.setStatus("Stopped"), nil
	}
	return m.begin(plan, now), nil
}

func (m Model) begin(plan countdown.Plan, now time.Time) Model {
	m.out = m.newSink(plan.Path)
	m.runID = uuid.NewString()
	m.logger.Info("countdown started",
		slog.String("time_in", m.record().TimeIn),
		slog.String("prefix", plan.Prefix),
		slog.String("ending", plan.Ending),
		slog.Int("step", plan.Step),
		slog.String("filepath", plan.Path))

	if m.history != nil {
		err := m.history.StartRun(m.ctx, models.Run{
			ID:           m.runID,
			Mode:         models.ModeInteractive,
			TimeIn:       m.record().TimeIn,
			TotalSeconds: plan.TotalSeconds,
			Step:         plan.Step,
			Prefix:       plan.Prefix,
			Ending:       plan.Ending,
			FilePath:     plan.Path,
			StartedAt:    now,
		})
		if err != nil {
			util.LogError(m.logger, "record run start", err)
			m.runID = ""
		}
	}
	m = m.setStatus("Running")
	return m.advance(now)
}

// advance lets the session emit whatever is due at now.
func (m Model) advance(now time.Time) Model {
	plan := m.session.Snapshot().Plan
	e, ok := m.session.Tick(now)
	if !ok {
		return m
	}
	failed := false
	if m.out != nil {
		if err := m.out.Emit(e.Line); err != nil {
			util.LogError(m.logger, "write countdown line", err)
			m = m.setError(err)
			failed = true
		}
	}
	if e.Final {
		m.display(util.TextOrDefault(e.Line, config.IdleTitle))
		m = m.finishRun(models.RunStatusCompleted, now)
		if !failed {
			m = m.setStatus("Done")
		}
		return m
	}
	m.display(blinkLine(plan.Prefix, e.Remaining, e.Tick))
	return m
}

// blinkLine renders the on-screen label. Odd ticks replace the time
// separators with spaces.
func blinkLine(prefix string, remaining int64, tick int) string {
	text := countdown.Format(remaining)
	if tick%2 == 1 {
		text = strings.ReplaceAll(text, ":", " ")
	}
	return prefix + " " + text
}

func (m Model) finishRun(status models.RunStatus, now time.Time) Model {
	if m.history != nil && m.runID != "" {
		if err := m.history.FinishRun(m.ctx, m.runID, status, now); err != nil {
			util.LogError(m.logger, "record run finish", err)
		}
	}
	m.runID = ""
	m.out = nil
	return m
}

func (m Model) quit() (Model, tea.Cmd) {
	if m.session.Stop() {
		m = m.finishRun(models.RunStatusStopped, m.now())
	}
	return m, tea.Quit
}

func (m Model) saveConfig() (Model, tea.Cmd) {
	if err := config.Save(m.configPath, m.record()); err != nil {
		util.LogError(m.logger, "save config", err)
		return m.setError(err), nil
	}
	return m.setStatus("Config saved!"), nil
}

func (m Model) loadConfig() (Model, tea.Cmd) {
	r, ok := config.LoadOptional(m.configPath)
	if !ok {
		return m.setStatus("No saved config"), nil
	}
	fillInputs(m.inputs, r)
	return m.setStatus("Config loaded"), nil
}
