package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration parsed from rectmap.yaml.
type Config struct {
	// Logging configures the logrus logger.
	Logging LoggingConfig `yaml:"logging"`
	// Search tunes the candidate enumeration.
	Search SearchConfig `yaml:"search"`
	// View configures the terminal viewer.
	View ViewConfig `yaml:"view"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr for the CLI and no log for the viewer.
	Path string `yaml:"path"`
}

type SearchConfig struct {
	// Workers is the number of goroutines enumerating vertex pairs. 0 or 1 runs inline.
	Workers int `yaml:"workers"`
	// Top is how many enclosed candidates are ranked.
	Top int `yaml:"top"`
}

type ViewConfig struct {
	SidebarWidth int `yaml:"sidebar_width"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Search:  SearchConfig{Workers: 1, Top: 10},
		View:    ViewConfig{SidebarWidth: 28},
	}
}

// Load reads path on top of Default. Missing keys keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse %s", path)
	}
	if err := Validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func Validate(cfg *Config) error {
	switch strings.ToLower(cfg.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return errors.Errorf("logging.level: unknown level %q", cfg.Logging.Level)
	}
	if cfg.Search.Workers < 0 {
		return errors.Errorf("search.workers must not be negative, got %d", cfg.Search.Workers)
	}
	if cfg.Search.Top < 0 {
		return errors.Errorf("search.top must not be negative, got %d", cfg.Search.Top)
	}
	if cfg.View.SidebarWidth < 0 {
		return errors.Errorf("view.sidebar_width must not be negative, got %d", cfg.View.SidebarWidth)
	}
	return nil
}
