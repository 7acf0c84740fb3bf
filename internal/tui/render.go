package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/countmedown/internal/config"
	"github.com/akyairhashvil/countmedown/internal/countdown"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// contentWidth is the usable width inside the base margin, or 0 when the
// terminal size is not known yet.
func (m Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	w := m.width - CurrentTheme.Base.GetHorizontalFrameSize()
	if w < 1 {
		w = 1
	}
	return w
}

func (m Model) fit(text string) string {
	if w := m.contentWidth(); w > 0 {
		return truncateLabel(text, w)
	}
	return text
}

// elapsedFraction is how much of the running countdown has passed.
func elapsedFraction(snap countdown.Snapshot, now time.Time) float64 {
	total := time.Duration(snap.Plan.TotalSeconds) * time.Second
	if total <= 0 {
		return 1
	}
	left := snap.End.Sub(now)
	f := 1 - float64(left)/float64(total)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func (m Model) renderFields() string {
	var b strings.Builder
	for i := range m.inputs {
		f := field(i)
		style := CurrentTheme.Label
		switch {
		case !m.fieldValid(f):
			style = CurrentTheme.Invalid
		case f == m.focus:
			style = CurrentTheme.Focused
		}
		label := style.Width(config.LabelColumnWidth).Render(fieldLabels[f])
		fmt.Fprintf(&b, "%s %s\n", label, CurrentTheme.Input.Render(m.inputs[i].View()))
	}
	return b.String()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render(config.IdleTitle))
	b.WriteString("\n\n")

	title := CurrentTheme.TitleStyle()
	if w := m.contentWidth(); w > 0 {
		title = title.MaxWidth(w)
	}
	b.WriteString(title.Render(m.fit(m.screen.label)))
	b.WriteString("\n")

	snap := m.session.Snapshot()
	if snap.State == countdown.StateRunning {
		b.WriteString(m.progress.ViewAs(elapsedFraction(snap, m.now())))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderFields())
	b.WriteString("\n")

	if m.status != "" {
		style := CurrentTheme.Status
		if m.statusErr {
			style = CurrentTheme.Error
		}
		b.WriteString(style.Render(m.fit(m.status)))
		b.WriteString("\n")
	}
	if m.width == 0 || m.width >= config.CompactModeThreshold {
		b.WriteString(CurrentTheme.Dim.Render(m.fit(m.keys.Help())))
	}
	return CurrentTheme.Base.Render(b.String())
}
