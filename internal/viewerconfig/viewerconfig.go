package viewerconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wheel-viewer/internal/envpreset"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the viewer config file, relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// Config holds everything the viewer reads at startup. Persisted across runs as YAML.
type Config struct {
	Model       Model       `yaml:"model"`
	Environment Environment `yaml:"environment"`
	Text        Text        `yaml:"text"`
	Window      Window      `yaml:"window"`
	Debug       Debug       `yaml:"debug"`
}

// Model points at the asset to show. Path may be a local .glb/.gltf, a .zip bundle, or an http(s) URL.
type Model struct {
	Path            string        `yaml:"path"`
	Scale           float32       `yaml:"scale"`
	CacheDir        string        `yaml:"cache_dir"`
	DownloadTimeout time.Duration `yaml:"download_timeout"`
}

// Environment selects the backdrop preset. Blur is a Gaussian radius in pixels (0 = off);
// MaxWidth downsizes large panoramas before upload (0 = keep).
type Environment struct {
	Preset   string  `yaml:"preset"`
	Dir      string  `yaml:"dir"`
	Blur     float64 `yaml:"blur"`
	MaxWidth int     `yaml:"max_width"`
	FlipY    bool    `yaml:"flip_y"`
}

type Text struct {
	Loading string `yaml:"loading"`
	Caption string `yaml:"caption"`
	Font    string `yaml:"font,omitempty"`
	CSS     string `yaml:"css,omitempty"`
}

type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
	MSAA      bool   `yaml:"msaa"`
}

type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	Log          bool `yaml:"log"`
}

// Default returns the wheel viewer defaults.
func Default() Config {
	return Config{
		Model: Model{
			Path:            "assets/models/wheel.glb",
			Scale:           1.6,
			CacheDir:        "assets/models/downloaded",
			DownloadTimeout: 60 * time.Second,
		},
		Environment: Environment{
			Preset:   "sunset",
			Dir:      "assets/environment",
			MaxWidth: 4096,
		},
		Text: Text{
			Loading: "Loading 3D Model...",
			Caption: "This is a 3D model of a wheel",
		},
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Wheel",
			TargetFPS: 60,
			MSAA:      true,
		},
	}
}

// Load reads the config at path on top of Default(). A missing file is not an error.
// An unreadable or invalid file returns Default() together with the error so the caller can log it.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("viewerconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("viewerconfig: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadOrCreate is Load, but when path does not exist it writes Default() there first so the
// user has a file to edit. created reports whether the file was written. A write failure still
// returns Default().
func LoadOrCreate(path string) (cfg Config, created bool, err error) {
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		cfg = Default()
		if err := Save(path, cfg); err != nil {
			return cfg, false, fmt.Errorf("viewerconfig: %w", err)
		}
		return cfg, true, nil
	}
	cfg, err = Load(path)
	return cfg, false, err
}

// ApplyEnv overrides fields from WHEEL_* variables. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("WHEEL_MODEL"); ok && strings.TrimSpace(v) != "" {
		c.Model.Path = strings.TrimSpace(v)
	}
	if v, ok := lookup("WHEEL_SCALE"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
		if err != nil {
			return fmt.Errorf("viewerconfig: WHEEL_SCALE: %w", err)
		}
		c.Model.Scale = float32(f)
	}
	if v, ok := lookup("WHEEL_ENVIRONMENT"); ok && strings.TrimSpace(v) != "" {
		c.Environment.Preset = strings.TrimSpace(v)
	}
	if v, ok := lookup("WHEEL_DEBUG"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("viewerconfig: WHEEL_DEBUG: %w", err)
		}
		c.Debug.Log = b
		c.Debug.ShowFPS = b
	}
	return nil
}

// Validate reports the first setting the viewer cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Model.Path) == "" {
		return errors.New("viewerconfig: model.path is empty")
	}
	if c.Model.Scale <= 0 {
		return fmt.Errorf("viewerconfig: model.scale must be positive, got %g", c.Model.Scale)
	}
	if _, ok := envpreset.Lookup(c.Environment.Preset); !ok {
		return fmt.Errorf("viewerconfig: unknown environment preset %q (known: %s)",
			c.Environment.Preset, strings.Join(envpreset.Names(), ", "))
	}
	if c.Environment.Blur < 0 {
		return fmt.Errorf("viewerconfig: environment.blur must not be negative, got %g", c.Environment.Blur)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("viewerconfig: window size %dx%d is invalid", c.Window.Width, c.Window.Height)
	}
	return nil
}
