package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridwalk/internal/config"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(config.DefaultYAML(), &cfg))
	assert.Equal(t, config.DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmbeddedFallback(t *testing.T) {
	isolate(t)
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_CustomPathOverridesOnlyGivenKeys(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "search:\n  wall: \"x\"\n  frontier: linear\nlog:\n  level: debug\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 'x', cfg.Search.WallRune())
	assert.Equal(t, "linear", cfg.Search.Frontier)
	assert.Equal(t, 1000, cfg.Search.TurnPenalty)
	assert.Equal(t, 'S', cfg.Search.StartRune())
	assert.Equal(t, log.DebugLevel, cfg.Log.LogLevel())
	assert.Len(t, cfg.Search.Options(), 3)
}

func TestLoad_CustomPathErrors(t *testing.T) {
	dir := isolate(t)

	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "search: [unclosed")
	_, err = config.Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "search:\n  wall: \"##\"\n")
	_, err = config.Load(invalid)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_SearchOrder(t *testing.T) {
	dir := isolate(t)
	home := os.Getenv("HOME")

	writeFile(t, filepath.Join(dir, "configs", config.FileName), "search:\n  turn_penalty: 7\n")
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Search.TurnPenalty)

	// user directory wins over ./configs
	writeFile(t, filepath.Join(home, ".gridwalk", "config.yaml"), "search:\n  turn_penalty: 3\n")
	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Search.TurnPenalty)

	// an invalid user file is skipped
	writeFile(t, filepath.Join(home, ".gridwalk", "config.yaml"), "render:\n  color: sometimes\n")
	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Search.TurnPenalty)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty wall", func(c *config.Config) { c.Search.Wall = "" }},
		{"long start", func(c *config.Config) { c.Search.Start = "SS" }},
		{"negative penalty", func(c *config.Config) { c.Search.TurnPenalty = -1 }},
		{"frontier", func(c *config.Config) { c.Search.Frontier = "fib" }},
		{"color", func(c *config.Config) { c.Render.Color = "maybe" }},
		{"level", func(c *config.Config) { c.Log.Level = "loud" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			c.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
