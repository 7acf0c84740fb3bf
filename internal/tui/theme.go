package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name    string
	Base    lipgloss.Style
	Border  lipgloss.Color
	Header  lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Invalid lipgloss.Style
	Input   lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:    "Default",
		Base:    lipgloss.NewStyle().Margin(1, 2),
		Border:  lipgloss.Color("63"),
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Title:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Invalid: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Input:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:    "Dracula",
		Base:    lipgloss.NewStyle().Margin(1, 2),
		Border:  lipgloss.Color("62"),
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Title:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Invalid: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Input:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// TitleStyle is the countdown label box drawn in the theme's border colour.
func (t Theme) TitleStyle() lipgloss.Style {
	return t.Title.BorderForeground(t.Border)
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches the active theme and reports whether name exists.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}
