package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/DrSkyle/timeslash/internal/config"
	"github.com/DrSkyle/timeslash/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config carries everything the commands hand down from flags and the
// config file.
type Config struct {
	Settings config.Settings

	// At overrides the clock anchor (RFC 3339). Empty means the system
	// clock, sampled once per invocation.
	At string

	// Timezone overrides Settings.Timezone when set from a flag.
	Timezone string
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	name := c.Timezone
	if name == "" {
		name = c.Settings.Timezone
	}
	switch strings.ToLower(name) {
	case "", "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// Anchor resolves the instant every "now" in this invocation refers to.
func (c Config) Anchor() (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}
	if c.At == "" {
		return time.Now().In(loc), nil
	}
	at, err := time.Parse(time.RFC3339Nano, c.At)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid anchor %q: %w", c.At, err)
	}
	return at.In(loc), nil
}

// Expand turns a preset name into its expression; plain expressions pass
// through untouched.
func (c Config) Expand(exprOrPreset string) string {
	return c.Settings.Preset(exprOrPreset)
}

// Run starts the interactive playground.
func Run(cfg Config) error {
	anchor, err := cfg.Anchor()
	if err != nil {
		return err
	}

	model := ui.NewModel(anchor, cfg.At != "", cfg.Settings.Presets)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
