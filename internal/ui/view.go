package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/DrSkyle/timeslash/pkg/reltime"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("TIMESLASH PLAYGROUND"))
	b.WriteString("\n")

	anchorLabel := "anchor (live)"
	if m.pinned {
		anchorLabel = "anchor (pinned)"
	}
	b.WriteString(labelStyle.Render(anchorLabel))
	b.WriteString(subtle.Render(m.anchor.Format(time.RFC3339)))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(m.renderResult())

	if len(m.history) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("history"))
		b.WriteString("\n")
		for i := len(m.history) - 1; i >= 0; i-- {
			e := m.history[i]
			b.WriteString(historyStyle.Render(fmt.Sprintf("  %-24s %s", e.expr, e.resolved)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if len(m.presets) > 0 {
		b.WriteString(subtle.Render("presets: " + strings.Join(m.presetNames(), ", ")))
		b.WriteString("\n")
	}
	b.WriteString(subtle.Render("enter: keep  esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderResult() string {
	expr := m.expression()
	if strings.TrimSpace(expr) == "" {
		return subtle.Render("  type an expression, e.g. now-7d/w") + "\n"
	}

	resolved, err := reltime.Resolve(expr, m.anchor)
	if err != nil {
		return danger.Render("  "+err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("  local"))
	b.WriteString(valueStyle.Render(resolved.Format(time.RFC3339Nano)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("  utc  "))
	b.WriteString(valueStyle.Render(resolved.UTC().Format(time.RFC3339Nano)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("  unix "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d", resolved.Unix())))
	b.WriteString("\n")

	if terms, err := reltime.ParseAll(expr); err == nil && len(terms) > 1 {
		names := make([]string, len(terms))
		for i, term := range terms {
			names[i] = term.String()
		}
		b.WriteString(subtle.Render("  steps: " + strings.Join(names, " -> ")))
		b.WriteString("\n")
	}

	return cardStyle.Render(b.String()) + "\n"
}
