// Package config loads command defaults from an optional YAML file.
// Command-line flags always take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = ".pagemark.yaml"

// Config holds the defaults a config file may set.
type Config struct {
	Label         string `yaml:"label"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	Scope         string `yaml:"scope"`
	StripNoise    bool   `yaml:"strip_noise"`
	Format        string `yaml:"format"`
	OutputDir     string `yaml:"output_dir"`
	MaxPages      int    `yaml:"max_pages"`
	SnippetRadius int    `yaml:"snippet_radius"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Label:         "highlight",
		Format:        "html",
		MaxPages:      100,
		SnippetRadius: 12,
	}
}

// Load reads path over the defaults. A missing file is not an error when
// path is DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Formats lists the accepted output formats.
var Formats = []string{"html", "markdown", "json", "pdf"}

// Validate checks the values a file may have set wrongly.
func (c Config) Validate() error {
	if c.Label == "" || strings.ContainsAny(c.Label, " \t\n\r\f") {
		return fmt.Errorf("label %q must be a single class name", c.Label)
	}
	valid := false
	for _, f := range Formats {
		if c.Format == f {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("max_pages must be positive, got %d", c.MaxPages)
	}
	if c.SnippetRadius < 0 {
		return fmt.Errorf("snippet_radius must not be negative, got %d", c.SnippetRadius)
	}
	return nil
}
