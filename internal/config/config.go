// Package config loads the YAML configuration of the astargrid tools.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Search SearchConfig `yaml:"search"`
	Render RenderConfig `yaml:"render"`
	Viewer ViewerConfig `yaml:"viewer"`
	Log    LogConfig    `yaml:"log"`
}

// GridConfig sizes the grid and its window.
type GridConfig struct {
	Rows  int `yaml:"rows" validate:"min=2,max=500"`
	Width int `yaml:"width" validate:"min=2,max=4096,gtefield=Rows"`
}

// SearchConfig selects the heuristic and paces the step callback.
type SearchConfig struct {
	Heuristic string        `yaml:"heuristic" validate:"oneof=manhattan euclidean chebyshev dijkstra"`
	StepDelay time.Duration `yaml:"step_delay" validate:"min=0"`
}

// RenderConfig controls PNG frame output.
type RenderConfig struct {
	FramesDir  string `yaml:"frames_dir"`
	FrameEvery int    `yaml:"frame_every" validate:"min=1"`
	Scale      int    `yaml:"scale" validate:"min=1,max=64"`
}

// ViewerConfig configures the web viewer.
type ViewerConfig struct {
	Addr      string        `yaml:"addr" validate:"required"`
	StepDelay time.Duration `yaml:"step_delay" validate:"min=0"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Grid:   GridConfig{Rows: 50, Width: 800},
		Search: SearchConfig{Heuristic: "manhattan"},
		Render: RenderConfig{FrameEvery: 1, Scale: 16},
		Viewer: ViewerConfig{Addr: ":8080", StepDelay: 30 * time.Millisecond},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals YAML into cfg, keeping fields the document does not set,
// and validates the result.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return cfg.Validate()
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// SlogLevel converts Log.Level for slog handlers.
func (c Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
