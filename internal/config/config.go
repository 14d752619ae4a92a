// Package config provides application settings loading.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/youruser/ucgdeck/internal/render"
)

// Config is the application configuration. JSON settings files are read as
// well, since JSON is valid YAML.
type Config struct {
	FontPath   string `yaml:"font_path"`
	DataDir    string `yaml:"data_dir"`
	OutputDir  string `yaml:"output_dir"`
	ParamsFile string `yaml:"params_file"`

	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
	Workers  int    `yaml:"workers"`

	// Render holds layout overrides. Keys left out keep their defaults.
	Render render.Config `yaml:"render"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		DataDir:    "data",
		OutputDir:  "output",
		ParamsFile: "params.json",
		Addr:       ":8080",
		LogLevel:   "info",
		Workers:    4,
	}
}

// LoadFromFile loads configuration from a YAML or JSON file. A missing file
// yields the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToFile writes cfg as YAML.
func SaveToFile(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// RenderConfig merges the render overrides onto the render defaults.
// font_path at the top level applies unless the render block sets its own.
func (c Config) RenderConfig() render.Config {
	overrides := c.Render
	if overrides.FontPath == "" {
		overrides.FontPath = c.FontPath
	}
	return render.Merge(render.Defaults(), overrides)
}
