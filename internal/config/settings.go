package config

// Settings holds everything the CLI, playground and server read from the
// config file (~/.timeslash.yaml) or environment.
type Settings struct {
	// Timezone is an IANA location name ("Europe/Amsterdam") or the
	// special values "Local" and "UTC".
	Timezone string `mapstructure:"timezone"`

	// Listen is the serve address, host optional.
	Listen string `mapstructure:"listen"`

	// OTLPEndpoint enables trace export when set.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// Presets maps short names to expressions, usable anywhere an
	// expression is expected.
	Presets map[string]string `mapstructure:"presets"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Timezone: "Local",
		Listen:   ":8080",
		Presets: map[string]string{
			"today":     "now/d",
			"yesterday": "now-1d/d",
			"thisweek":  "now/w",
			"thismonth": "now/M",
			"last7d":    "now-7d/d",
			"last30d":   "now-30d/d",
		},
	}
}

// Preset resolves name against the preset table, falling back to the
// defaults. Unknown names are returned unchanged so plain expressions
// pass through.
func (s Settings) Preset(name string) string {
	if expr, ok := s.Presets[name]; ok {
		return expr
	}
	if expr, ok := Default().Presets[name]; ok {
		return expr
	}
	return name
}
