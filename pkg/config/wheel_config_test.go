package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/radial/pkg/embedded"
	"github.com/decker502/radial/pkg/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
window:
  width: 800
  height: 600
wheel:
  name: mounts
  displayDelayMs: 50
  radius: 150
  elements:
    - id: 0
      nickname: raptor
      displayName: Raptor
      color: "#d9732e"
      colorizeAmount: 0.5
      keybind: "Digit1"
    - id: 1
      nickname: springer
      category: special
`

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	s := cfg.Wheel.Settings()
	assert.Equal(t, wheel.DefaultSettings(), s, "yaml defaults mirror the wheel defaults")
	assert.Equal(t, []string{"shift", "alt"}, cfg.SettingsMenu.Modifiers)
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, "Radial", cfg.Window.Title, "missing fields keep defaults")
	assert.Equal(t, int64(50), cfg.Wheel.DisplayDelayMs)
	assert.Equal(t, 150.0, cfg.Wheel.Radius)
	assert.Equal(t, 6.0, cfg.Wheel.FadeSpeed)
	require.Len(t, cfg.Wheel.Elements, 2)

	raptor := cfg.Wheel.Elements[0]
	assert.Equal(t, "Raptor", raptor.DisplayNameOf())
	assert.Equal(t, "mounts", cfg.Wheel.CategoryOf(raptor))
	assert.Equal(t, "Digit1", raptor.Keybind)

	springer := cfg.Wheel.Elements[1]
	assert.Equal(t, "springer", springer.DisplayNameOf())
	assert.Equal(t, "special", cfg.Wheel.CategoryOf(springer))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fade speed", func(c *Config) { c.Wheel.FadeSpeed = 0 }},
		{"negative radius", func(c *Config) { c.Wheel.Radius = -1 }},
		{"packing factor above one", func(c *Config) { c.Wheel.PackingFactor = 1.5 }},
		{"dead zone covers the wheel", func(c *Config) { c.Wheel.DeadZone = c.Wheel.Radius }},
		{"negative delay", func(c *Config) { c.Wheel.DisplayDelayMs = -5 }},
		{"negative hold tolerance", func(c *Config) { c.Wheel.InputHoldToleranceMs = -1 }},
		{"opacity above one", func(c *Config) { c.Wheel.IdleOpacity = 2 }},
		{"empty window", func(c *Config) { c.Window.Width = 0 }},
		{"zero font size", func(c *Config) { c.Window.FontSize = 0 }},
		{"element without nickname", func(c *Config) {
			c.Wheel.Elements = []ElementConfig{{ID: 1}}
		}},
		{"element colorize out of range", func(c *Config) {
			c.Wheel.Elements = []ElementConfig{{ID: 1, Nickname: "a", ColorizeAmount: 1.2}}
		}},
		{"element bad color", func(c *Config) {
			c.Wheel.Elements = []ElementConfig{{ID: 1, Nickname: "a", Color: "#zz0000"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	t.Run("duplicate ids are left to the wheel", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Wheel.Elements = []ElementConfig{{ID: 1, Nickname: "a"}, {ID: 1, Nickname: "b"}}
		assert.NoError(t, cfg.Validate())
	})
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  wheel.Color
		ok    bool
	}{
		{"", wheel.White, true},
		{"#ffffff", wheel.White, true},
		{"#ff000080", wheel.Color{R: 1, A: 128.0 / 255}, true},
		{"00ff00", wheel.Color{G: 1, A: 1}, true},
		{"#fff", wheel.Color{}, false},
		{"#gggggg", wheel.Color{}, false},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if !tt.ok {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.InDelta(t, tt.want.R, got.R, 1e-9, tt.input)
		assert.InDelta(t, tt.want.G, got.G, 1e-9, tt.input)
		assert.InDelta(t, tt.want.B, got.B, 1e-9, tt.input)
		assert.InDelta(t, tt.want.A, got.A, 1e-9, tt.input)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Wheel.Elements, 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("wheel:\n  fadeSpeed: -1\n"), 0644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "fadeSpeed")
}

func TestLoadEmbeddedConfig(t *testing.T) {
	embedded.Init(fstest.MapFS{}, fstest.MapFS{
		"data/config/wheel.yaml": {Data: []byte(sampleConfig)},
	})
	defer embedded.Reset()

	cfg, err := LoadEmbeddedConfig(DefaultConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "mounts", cfg.Wheel.Name)

	_, err = LoadEmbeddedConfig("data/config/other.yaml")
	assert.Error(t, err)
}

func TestShippedConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", DefaultConfigPath))
	require.NoError(t, err)

	assert.Equal(t, "mounts", cfg.Wheel.Name)
	assert.Len(t, cfg.Wheel.Elements, 9)

	bound := 0
	for _, e := range cfg.Wheel.Elements {
		if e.Keybind != "" {
			bound++
		}
	}
	assert.Equal(t, 8, bound, "one element ships without a keybind")
}
