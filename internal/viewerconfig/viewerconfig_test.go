package viewerconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, float32(1.6), cfg.Model.Scale)
	assert.Equal(t, "This is a 3D model of a wheel", cfg.Text.Caption)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	yml := "model:\n  path: assets/models/tire.glb\n  download_timeout: 5s\nenvironment:\n  preset: night\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "assets/models/tire.glb", cfg.Model.Path)
	assert.Equal(t, 5*time.Second, cfg.Model.DownloadTimeout)
	assert.Equal(t, float32(1.6), cfg.Model.Scale)
	assert.Equal(t, "night", cfg.Environment.Preset)
	assert.Equal(t, "Loading 3D Model...", cfg.Text.Loading)
}

func TestLoad_InvalidFileReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unterminated"), 0644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewer.yaml")
	want := Default()
	want.Model.Scale = 2
	want.Debug.ShowFPS = true
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewer.yaml")

	cfg, created, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, Default(), cfg)
	assert.FileExists(t, path)

	cfg, created, err = LoadOrCreate(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrCreate_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	want := Default()
	want.Environment.Preset = "city"
	require.NoError(t, Save(path, want))

	cfg, created, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "city", cfg.Environment.Preset)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"WHEEL_MODEL":       "https://example.com/wheel.glb",
		"WHEEL_SCALE":       "0.5",
		"WHEEL_ENVIRONMENT": "city",
		"WHEEL_DEBUG":       "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, "https://example.com/wheel.glb", cfg.Model.Path)
	assert.Equal(t, float32(0.5), cfg.Model.Scale)
	assert.Equal(t, "city", cfg.Environment.Preset)
	assert.True(t, cfg.Debug.Log)
	assert.True(t, cfg.Debug.ShowFPS)
}

func TestApplyEnv_BadScale(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(k string) (string, bool) {
		if k == "WHEEL_SCALE" {
			return "big", true
		}
		return "", false
	})
	assert.ErrorContains(t, err, "WHEEL_SCALE")
	assert.Equal(t, float32(1.6), cfg.Model.Scale)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty model", func(c *Config) { c.Model.Path = " " }, "model.path"},
		{"zero scale", func(c *Config) { c.Model.Scale = 0 }, "model.scale"},
		{"unknown preset", func(c *Config) { c.Environment.Preset = "moon" }, "unknown environment preset"},
		{"negative blur", func(c *Config) { c.Environment.Blur = -1 }, "blur"},
		{"bad window", func(c *Config) { c.Window.Width = 0 }, "window size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}
