// Package config loads the configuration of the jubako server.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"src.jubako.dev/pkg/logutil"
	"src.jubako.dev/pkg/render"
)

// ErrInvalid is wrapped by all validation errors returned by Load and
// Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config is the content of a configuration file. The zero value of every
// field except those given by Default means "not set".
type Config struct {
	Listen          string        `yaml:"listen"`
	ReusePort       bool          `yaml:"reuse_port"`
	Assets          string        `yaml:"assets"`
	CSS             CSS           `yaml:"css"`
	Inspect         Inspect       `yaml:"inspect"`
	Log             Log           `yaml:"log"`
	Render          Render        `yaml:"render"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type CSS struct {
	// Path of the compiled rule cache. Empty disables the cache.
	Cache string `yaml:"cache"`
}

type Inspect struct {
	// Path of the UNIX socket of the inspection service. Empty disables it.
	Socket string `yaml:"socket"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type Render struct {
	EventDiff string `yaml:"event_diff"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen:          ":8080",
		Log:             Log{Level: "info", Format: string(logutil.FormatAuto)},
		Render:          Render{EventDiff: render.EventDiffBoth.String()},
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load reads the configuration file at path on top of Default. An empty path
// returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses the YAML content of a configuration file on top of Default and
// validates the result. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document leaves the defaults alone.
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values of all fields.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return invalid("listen", "must not be empty")
	}
	if _, err := logutil.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", err.Error())
	}
	if _, err := logutil.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", err.Error())
	}
	if _, err := render.ParseEventDiffPolicy(c.Render.EventDiff); err != nil {
		return invalid("render.event_diff", err.Error())
	}
	if c.ShutdownTimeout < 0 {
		return invalid("shutdown_timeout", "must not be negative")
	}
	return nil
}

// RenderOptions returns the render options selected by the configuration.
// The configuration must be valid.
func (c *Config) RenderOptions() render.Options {
	policy, _ := render.ParseEventDiffPolicy(c.Render.EventDiff)
	return render.Options{EventDiff: policy}
}

func invalid(field, msg string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, field, msg)
}
