package config

import "testing"

func TestPreset(t *testing.T) {
	s := Settings{Presets: map[string]string{
		"sprint": "now-2w/d",
		"today":  "now/d+6h", // user override of a built-in
	}}

	tests := []struct {
		name string
		want string
	}{
		{"sprint", "now-2w/d"},
		{"today", "now/d+6h"},
		{"last7d", "now-7d/d"}, // built-in fallback
		{"now-1h", "now-1h"},   // plain expressions pass through
	}
	for _, tt := range tests {
		if got := s.Preset(tt.name); got != tt.want {
			t.Errorf("Preset(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
