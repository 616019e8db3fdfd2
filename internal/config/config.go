// Package config holds sortvis settings. Values come from defaults, then an
// optional YAML file, then command-line flags.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/kevinxiao27/sortvis/internal/dataset"
	"github.com/kevinxiao27/sortvis/internal/errs"
	"github.com/kevinxiao27/sortvis/sorts"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "sortvis.yaml"

type Config struct {
	Version int `yaml:"version"`

	Algorithm string `yaml:"algorithm"` // bubble | cocktail | merge
	Size      int    `yaml:"size"`
	Order     string `yaml:"order"` // shuffled | reversed | sorted
	Seed      uint64 `yaml:"seed"`  // 0 = random

	Replay ReplayConfig `yaml:"replay"`
	Server ServerConfig `yaml:"server"`
}

// MaxFPS bounds the frame rate so a frame period stays above zero.
const MaxFPS = 1000

type ReplayConfig struct {
	OpsPerFrame int  `yaml:"ops_per_frame"`
	FPS         int  `yaml:"fps"` // 0 = as fast as possible
	Headless    bool `yaml:"headless"`
}

type ServerConfig struct {
	Addr    string `yaml:"addr"`
	MaxSize int    `yaml:"max_size"`
}

func Default() *Config {
	return &Config{
		Version:   1,
		Algorithm: sorts.Default,
		Size:      64,
		Order:     dataset.Shuffled,
		Replay: ReplayConfig{
			OpsPerFrame: 30,
			FPS:         60,
		},
		Server: ServerConfig{
			Addr:    ":8080",
			MaxSize: 4096,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults are returned as they are.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeInvalidConfig, "read config")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.Wrap(err, errs.CodeInvalidConfig, "parse "+path)
	}
	return cfg, cfg.Validate()
}

// Save writes cfg as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) Validate() error {
	invalid := func(field string, value any) error {
		return errs.New(errs.CodeInvalidConfig, "invalid "+field).With(field, value)
	}

	if !slices.Contains(sorts.Names(), c.Algorithm) {
		return invalid("algorithm", c.Algorithm)
	}
	if c.Size < 0 {
		return invalid("size", c.Size)
	}
	if !slices.Contains(dataset.Orders(), c.Order) {
		return invalid("order", c.Order)
	}
	if c.Replay.OpsPerFrame < 1 {
		return invalid("ops_per_frame", c.Replay.OpsPerFrame)
	}
	if c.Replay.FPS < 0 || c.Replay.FPS > MaxFPS {
		return invalid("fps", c.Replay.FPS)
	}
	if c.Server.MaxSize < 1 {
		return invalid("max_size", c.Server.MaxSize)
	}
	return nil
}
