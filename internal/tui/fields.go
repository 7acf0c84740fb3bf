package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countmedown/internal/config"
	"github.com/akyairhashvil/countmedown/internal/util"
)

type field int

const (
	fieldTime field = iota
	fieldStep
	fieldPrefix
	fieldEnding
	fieldFile
	fieldCount
)

var fieldLabels = [fieldCount]string{"Time", "Step", "Prefix", "Ending", "File"}

var errStepField = errors.New("step must contain only digits")

func newInputs(r config.Record) []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = config.InputWidth
		ti.CharLimit = config.MaxTextInputLength
		inputs[i] = ti
	}
	inputs[fieldTime].Placeholder = config.DefaultTimeIn
	inputs[fieldTime].CharLimit = config.MaxTimeInputLength
	inputs[fieldStep].Placeholder = strconv.Itoa(config.DefaultStep)
	inputs[fieldStep].CharLimit = config.MaxStepInputLength
	inputs[fieldFile].Placeholder = config.DefaultTUIFileName
	inputs[fieldFile].CharLimit = config.MaxPathInputLength

	fillInputs(inputs, r)
	inputs[fieldTime].Focus()
	return inputs
}

func fillInputs(inputs []textinput.Model, r config.Record) {
	inputs[fieldTime].SetValue(r.TimeIn)
	inputs[fieldStep].SetValue(strconv.Itoa(r.Step))
	inputs[fieldPrefix].SetValue(r.Prefix)
	inputs[fieldEnding].SetValue(r.Ending)
	inputs[fieldFile].SetValue(r.FilePath)
}

func (m Model) value(f field) string {
	return m.inputs[f].Value()
}

// fieldValid reports whether f can be used to start a run. Empty time and
// step fields fall back to their defaults.
func (m Model) fieldValid(f field) bool {
	v := strings.TrimSpace(m.value(f))
	switch f {
	case fieldTime:
		return v == "" || util.ValidateDigits(v, true)
	case fieldStep:
		return v == "" || util.ValidateDigits(v, false)
	default:
		return true
	}
}

// stepValue falls back to the default step for empty, zero or
// out-of-range input.
func stepValue(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 {
		return config.DefaultStep
	}
	return n
}

// record collects the five inputs, applying defaults for empty fields.
func (m Model) record() config.Record {
	def := config.DefaultRecord()
	return config.NewRecord(
		util.TextOrDefault(strings.TrimSpace(m.value(fieldTime)), config.DefaultTimeIn),
		m.value(fieldPrefix),
		m.value(fieldEnding),
		stepValue(m.value(fieldStep)),
		util.TextOrDefault(strings.TrimSpace(m.value(fieldFile)), def.FilePath),
	)
}

func (m Model) setFocus(f field) Model {
	m.inputs[m.focus].Blur()
	m.focus = f
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) focusNext() (Model, tea.Cmd) {
	return m.setFocus((m.focus + 1) % fieldCount), nil
}

func (m Model) focusPrev() (Model, tea.Cmd) {
	return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
}
