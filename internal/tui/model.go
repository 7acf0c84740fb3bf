// Package tui is the interactive countdown front-end. It edits the five
// countdown inputs, drives a countdown.Session from a one second tick and
// writes each line to the configured file.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countmedown/internal/config"
	"github.com/akyairhashvil/countmedown/internal/countdown"
	"github.com/akyairhashvil/countmedown/internal/models"
	"github.com/akyairhashvil/countmedown/internal/sink"
	"github.com/akyairhashvil/countmedown/internal/util"
)

// History records interactive runs. database.Database implements it.
type History interface {
	StartRun(ctx context.Context, run models.Run) error
	FinishRun(ctx context.Context, id string, status models.RunStatus, finishedAt time.Time) error
}

// Options configures a Model. Zero values select the defaults.
type Options struct {
	Record     config.Record
	ConfigPath string
	History    History
	Logger     *slog.Logger
	Now        func() time.Time
	NewSink    func(path string) sink.Sink
	Context    context.Context
}

// screen holds the text shown as the big countdown label.
type screen struct {
	label string
}

// Model is the root bubbletea model.
type Model struct {
	ctx      context.Context
	session  *countdown.Session
	inputs   []textinput.Model
	focus    field
	progress progress.Model
	keys     *HandlerRegistry

	screen  *screen
	display sink.Label
	out     sink.Sink
	runID   string

	status    string
	statusErr bool

	configPath string
	history    History
	logger     *slog.Logger
	now        func() time.Time
	newSink    func(path string) sink.Sink

	width  int
	height int
}

func New(opts Options) Model {
	if opts.Record == (config.Record{}) {
		opts.Record = config.DefaultRecord()
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultPath()
	}
	if opts.Logger == nil {
		opts.Logger = util.DiscardLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewSink == nil {
		opts.NewSink = func(path string) sink.Sink { return sink.NewFile(path) }
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	scr := &screen{label: config.IdleTitle}
	m := Model{
		ctx:        opts.Context,
		session:    countdown.NewSession(),
		inputs:     newInputs(opts.Record),
		progress:   progress.New(progress.WithDefaultGradient()),
		keys:       defaultRegistry(),
		screen:     scr,
		display:    sink.Label(func(line string) { scr.label = line }),
		configPath: opts.ConfigPath,
		history:    opts.History,
		logger:     opts.Logger,
		now:        opts.Now,
		newSink:    opts.NewSink,
	}
	m.progress.Width = config.MaxProgressWidth / 2
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case TickMsg:
		return m.advance(m.now()), tickCmd()
	case tea.KeyMsg:
		if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		m.progress.Width = util.Clamp(m.width-config.LabelColumnWidth, config.MinProgressWidth, config.MaxProgressWidth)
	}
	return m
}

// State reports whether a countdown is running.
func (m Model) State() countdown.State {
	return m.session.Snapshot().State
}

// Label is the text currently shown as the countdown.
func (m Model) Label() string {
	return m.screen.label
}

func (m Model) setStatus(text string) Model {
	m.status, m.statusErr = text, false
	return m
}

func (m Model) setError(err error) Model {
	m.status, m.statusErr = err.Error(), true
	return m
}
