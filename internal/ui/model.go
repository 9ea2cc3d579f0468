package ui

import (
	"sort"
	"time"

	"github.com/DrSkyle/timeslash/pkg/reltime"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxHistory = 8

type tickMsg time.Time

// Model is the interactive expression playground. The input is resolved on
// every keystroke; Enter pushes the current line into the history.
type Model struct {
	input   textinput.Model
	anchor  time.Time
	pinned  bool // anchor came from --at and never refreshes
	presets map[string]string

	history  []historyEntry
	quitting bool
}

type historyEntry struct {
	expr     string
	resolved string
}

// NewModel initializes the playground model.
func NewModel(anchor time.Time, pinned bool, presets map[string]string) Model {
	ti := textinput.New()
	ti.Placeholder = "now-1h/d"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 120

	return Model{
		input:   ti,
		anchor:  anchor,
		pinned:  pinned,
		presets: presets,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.pinned {
			m.anchor = time.Time(msg).In(m.anchor.Location())
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			expr := m.expression()
			if expr == "" {
				return m, nil
			}
			resolved := "error"
			if t, err := reltime.Resolve(expr, m.anchor); err == nil {
				resolved = t.Format(time.RFC3339)
			}
			m.history = append(m.history, historyEntry{expr: expr, resolved: resolved})
			if len(m.history) > maxHistory {
				m.history = m.history[len(m.history)-maxHistory:]
			}
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// expression returns the current input with presets expanded.
func (m Model) expression() string {
	v := m.input.Value()
	if expr, ok := m.presets[v]; ok {
		return expr
	}
	return v
}

// presetNames returns the preset table sorted for stable rendering.
func (m Model) presetNames() []string {
	names := make([]string, 0, len(m.presets))
	for name := range m.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
