package config

import (
	_ "embed"
)

//go:embed defaults/gridwalk.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the embedded
// defaults/gridwalk.yaml.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			Wall:        "#",
			TurnPenalty: 1000,
			Frontier:    "heap",
			Start:       "S",
			End:         "E",
		},
		Render: RenderConfig{
			Color:       "auto",
			PathColor:   "10",
			WallColor:   "8",
			MarkerColor: "11",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
