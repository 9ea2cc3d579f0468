package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// usage: go test ./internal/ui/...

var testAnchor = time.Date(2025, time.March, 15, 14, 30, 45, 0, time.UTC)

func TestPlaygroundRendering(t *testing.T) {
	tests := []struct {
		name     string
		typed    string
		want     []string // Strings that MUST appear in the View
		dontWant []string // Strings that MUST NOT appear
	}{
		{
			name:  "empty input shows hint",
			typed: "",
			want:  []string{"TIMESLASH PLAYGROUND", "type an expression"},
		},
		{
			name:  "valid expression shows local, utc and unix",
			typed: "now-1h",
			want: []string{
				"2025-03-15T13:30:45Z",
				"unix",
				"steps: now -> subtract hour",
			},
			dontWant: []string{"unexpected"},
		},
		{
			name:  "floor to day",
			typed: "now/d",
			want:  []string{"2025-03-15T00:00:00Z", "steps: now -> floor day"},
		},
		{
			name:  "preset expands before resolution",
			typed: "yesterday",
			want:  []string{"2025-03-14T00:00:00Z"},
		},
		{
			name:     "parse error is shown in place",
			typed:    "now--1h",
			want:     []string{"unexpected token at position 4"},
			dontWant: []string{"unix"},
		},
		{
			name:  "missing now",
			typed: "+1d",
			want:  []string{`expression must contain "now"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(testAnchor, true, map[string]string{"yesterday": "now-1d/d"})
			for _, r := range tt.typed {
				updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
				m = updated.(Model)
			}

			view := m.View()
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q:\n%s", want, view)
				}
			}
			for _, dontWant := range tt.dontWant {
				if strings.Contains(view, dontWant) {
					t.Errorf("view must not contain %q:\n%s", dontWant, view)
				}
			}
		})
	}
}

func TestPlaygroundHistory(t *testing.T) {
	m := NewModel(testAnchor, true, nil)
	for _, r := range "now-1h" {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if len(m.history) != 1 {
		t.Fatalf("history length = %d, want 1", len(m.history))
	}
	if m.history[0].expr != "now-1h" {
		t.Errorf("history expr = %q", m.history[0].expr)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared after enter: %q", m.input.Value())
	}

	view := m.View()
	if !strings.Contains(view, "history") || !strings.Contains(view, "now-1h") {
		t.Errorf("history not rendered:\n%s", view)
	}
}

func TestPlaygroundQuit(t *testing.T) {
	m := NewModel(testAnchor, true, nil)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if !m.quitting {
		t.Error("esc must set quitting")
	}
	if cmd == nil {
		t.Error("esc must return tea.Quit")
	}
	if m.View() != "" {
		t.Error("quitting view must be empty")
	}
}
