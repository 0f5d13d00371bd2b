package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/ledgerkit/ing2qif/internal/model"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "ing2qif.yaml"

// Config represents the top-level ing2qif.yaml configuration.
type Config struct {
	Format  string        `yaml:"format"`
	Columns model.Columns `yaml:"columns"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
}

// InputConfig describes how the bank export is decoded.
type InputConfig struct {
	Encoding  string `yaml:"encoding"`  // WHATWG label, e.g. "utf-8", "windows-1252"
	Delimiter string `yaml:"delimiter"` // single character
}

// OutputConfig controls the generated file.
type OutputConfig struct {
	Extension string `yaml:"extension"`
}

// Load reads a config file from disk. Settings missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.Comma(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads path when given, otherwise DefaultFile when it exists in the
// working directory, otherwise the defaults.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg, err := Load(DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the settings for an ING current account export.
func Default() *Config {
	return &Config{
		Format:  "ing",
		Columns: model.DefaultColumns(),
		Input: InputConfig{
			Encoding:  "utf-8",
			Delimiter: ",",
		},
		Output: OutputConfig{
			Extension: ".qif",
		},
	}
}

// Comma returns the input delimiter as a rune.
func (c *Config) Comma() (rune, error) {
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return 0, fmt.Errorf("input delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Input.Delimiter)
	return r, nil
}
