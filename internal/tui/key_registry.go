package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model) (Model, tea.Cmd)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	Priority    int
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) {
			next, cmd := b.Handler(m)
			return next, cmd, true
		}
	}
	return m, nil, false
}

// Help lists every described binding as [key]description.
func (r *HandlerRegistry) Help() string {
	var parts []string
	for _, b := range r.bindings {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		parts = append(parts, "["+b.Keys[0]+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Keys: []string{"ctrl+c", "esc"}, Handler: Model.quit, Description: "quit", Priority: 100})
	r.Register(KeyBinding{Keys: []string{"enter"}, Handler: Model.toggle, Description: "start/stop", Priority: 90})
	r.Register(KeyBinding{Keys: []string{"tab", "down"}, Handler: Model.focusNext, Description: "next", Priority: 50})
	r.Register(KeyBinding{Keys: []string{"shift+tab", "up"}, Handler: Model.focusPrev, Priority: 50})
	r.Register(KeyBinding{Keys: []string{"ctrl+s"}, Handler: Model.saveConfig, Description: "save", Priority: 40})
	r.Register(KeyBinding{Keys: []string{"ctrl+o"}, Handler: Model.loadConfig, Description: "load", Priority: 40})
	return r
}
