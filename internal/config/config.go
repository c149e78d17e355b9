// Package config loads gh-clonestats settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kyleking/gh-clonestats/internal/chart"
	"github.com/kyleking/gh-clonestats/internal/report"
)

// Viewer modes.
const (
	ViewerAuto   = "auto"
	ViewerAlways = "always"
	ViewerNever  = "never"
)

// Config holds run settings.
type Config struct {
	Output        string `yaml:"output"`
	Top           int    `yaml:"top"`
	RepoLimit     int    `yaml:"repo_limit"`
	IncludeStatus bool   `yaml:"include_status"`
	Viewer        string `yaml:"viewer"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output: report.DefaultPath,
		Top:    chart.DefaultTopN,
		Viewer: ViewerAuto,
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Output == "":
		return errors.New("output path must not be empty")
	case c.Top < 1:
		return fmt.Errorf("top must be at least 1, got %d", c.Top)
	case c.RepoLimit < 0:
		return fmt.Errorf("repo_limit must not be negative, got %d", c.RepoLimit)
	}
	switch c.Viewer {
	case ViewerAuto, ViewerAlways, ViewerNever:
		return nil
	default:
		return fmt.Errorf("viewer must be one of %s, %s, %s; got %q", ViewerAuto, ViewerAlways, ViewerNever, c.Viewer)
	}
}

// LoadEnv loads variables such as GH_TOKEN from a .env file in the working
// directory so they reach the gh subprocess. A missing file is not an error.
// Variables already set in the environment win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	present := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}
