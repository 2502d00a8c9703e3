// Package config loads runtime settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/vmath"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Backends
const (
	BackendDesktop  = "desktop"
	BackendTerminal = "terminal"
)

type Config struct {
	Seed     int64          `yaml:"seed"`
	Backend  string         `yaml:"backend"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Audio    AudioConfig    `yaml:"audio"`
	Log      LogConfig      `yaml:"log"`
	Debug    bool           `yaml:"debug"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// TerminalConfig sizes the virtual pixel grid the terminal backend rasterizes into
type TerminalConfig struct {
	CellWidth  float64       `yaml:"cell_width"`
	CellHeight float64       `yaml:"cell_height"`
	HoldWindow time.Duration `yaml:"hold_window"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Linear, 0.0 to 1.0
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // Empty writes to stderr
}

func Default() *Config {
	return &Config{
		Seed:    parameter.DefaultWorldSeed,
		Backend: BackendDesktop,
		Window: WindowConfig{
			Width:  parameter.WindowWidth,
			Height: parameter.WindowHeight,
			Title:  parameter.WindowTitle,
		},
		Terminal: TerminalConfig{
			CellWidth:  parameter.TerminalCellWidth,
			CellHeight: parameter.TerminalCellHeight,
			HoldWindow: parameter.TerminalHoldWindow * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty or missing path yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from WILDLANDS_* variables; malformed values are ignored
func (c *Config) applyEnv() {
	if v := os.Getenv("WILDLANDS_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if v := os.Getenv("WILDLANDS_BACKEND"); v != "" {
		c.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("WILDLANDS_AUDIO_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = enabled
		}
	}
	// Master volume is given in percent
	if v := os.Getenv("WILDLANDS_MASTER_VOLUME"); v != "" {
		if pct, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = vmath.Clamp(float64(pct)/100, 0, 1)
		}
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalid
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendDesktop, BackendTerminal:
	default:
		return fmt.Errorf("%w: backend %q, want %s or %s", ErrInvalid, c.Backend, BackendDesktop, BackendTerminal)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("%w: terminal cell %.1fx%.1f", ErrInvalid, c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Terminal.HoldWindow <= 0 {
		return fmt.Errorf("%w: terminal hold window %s", ErrInvalid, c.Terminal.HoldWindow)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %.2f outside [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
