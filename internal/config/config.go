// Package config provides YAML-based configuration loading for the gridwalk
// command line.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridwalk/dijkstra"
)

// ErrInvalid reports a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all configuration for the gridwalk CLI.
type Config struct {
	Search SearchConfig `yaml:"search"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// SearchConfig defines grid and shortest-path parameters.
type SearchConfig struct {
	Wall        string `yaml:"wall"`
	TurnPenalty int    `yaml:"turn_penalty"`
	Frontier    string `yaml:"frontier"`
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
}

// RenderConfig defines how grids are drawn to the terminal.
type RenderConfig struct {
	Color       string `yaml:"color"` // auto, on, off
	PathColor   string `yaml:"path_color"`
	WallColor   string `yaml:"wall_color"`
	MarkerColor string `yaml:"marker_color"`
}

// LogConfig defines the logger verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks every field that is later converted to a typed value.
func (c Config) Validate() error {
	for name, v := range map[string]string{
		"search.wall":  c.Search.Wall,
		"search.start": c.Search.Start,
		"search.end":   c.Search.End,
	} {
		if utf8.RuneCountInString(v) != 1 {
			return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalid, name, v)
		}
	}
	if c.Search.TurnPenalty < 0 {
		return fmt.Errorf("%w: search.turn_penalty must be non-negative, got %d", ErrInvalid, c.Search.TurnPenalty)
	}
	if _, ok := dijkstra.ParseFrontier(c.Search.Frontier); !ok {
		return fmt.Errorf("%w: search.frontier %q", ErrInvalid, c.Search.Frontier)
	}
	switch c.Render.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("%w: render.color %q", ErrInvalid, c.Render.Color)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// WallRune returns the wall character.
func (s SearchConfig) WallRune() rune { return firstRune(s.Wall) }

// StartRune returns the start marker.
func (s SearchConfig) StartRune() rune { return firstRune(s.Start) }

// EndRune returns the end marker.
func (s SearchConfig) EndRune() rune { return firstRune(s.End) }

// Options converts the search section into dijkstra options.
// The config must have passed Validate.
func (s SearchConfig) Options() []dijkstra.Option {
	frontier, _ := dijkstra.ParseFrontier(s.Frontier)
	return []dijkstra.Option{
		dijkstra.WithWall(s.WallRune()),
		dijkstra.WithTurnPenalty(s.TurnPenalty),
		dijkstra.WithFrontier(frontier),
	}
}

// LogLevel returns the parsed level, falling back to info.
func (l LogConfig) LogLevel() log.Level {
	lvl, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
