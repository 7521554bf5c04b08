// Package config resolves the report generator settings from defaults, an
// optional YAML file, a .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-partyreport/pkg/convert"
)

// Defaults mirror the paths the report has always been generated with.
const (
	DefaultConfigFile       = "partyreport.yaml"
	DefaultInput            = "output/analysis.json"
	DefaultMarkdownTemplate = "template.markdown"
	DefaultHTMLTemplate     = "template.html"
	DefaultOutput           = "docs/index.html"
	DefaultTitle            = "Do MPs mention their party on Twitter?"
	DefaultTokenEnv         = "GITHUB_TOKEN"
	DefaultDotEnv           = ".env"
)

// Config holds every knob of a report run.
type Config struct {
	Input            string          `yaml:"input"`
	MarkdownTemplate string          `yaml:"markdown_template"`
	HTMLTemplate     string          `yaml:"html_template"`
	Output           string          `yaml:"output"`
	MarkdownOutput   string          `yaml:"markdown_output"`
	Title            string          `yaml:"title"`
	Strict           bool            `yaml:"strict"`
	Templates        TemplatesConfig `yaml:"templates"`
	Converter        ConverterConfig `yaml:"converter"`

	// Token is resolved from the environment, never from the YAML file.
	Token string `yaml:"-"`
}

// TemplatesConfig controls shell rendering.
type TemplatesConfig struct {
	// Render expands template tags in the shells before splicing. Off by
	// default: shells are plain text and braces in them are kept verbatim.
	Render bool `yaml:"render"`
}

// ConverterConfig selects and tunes the Markdown to HTML conversion.
type ConverterConfig struct {
	Name       string        `yaml:"name"`
	Endpoint   string        `yaml:"endpoint"`
	APIVersion string        `yaml:"api_version"`
	UserAgent  string        `yaml:"user_agent"`
	Timeout    time.Duration `yaml:"timeout"`
	TokenEnv   string        `yaml:"token_env"`
	Sanitize   bool          `yaml:"sanitize"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:            DefaultInput,
		MarkdownTemplate: DefaultMarkdownTemplate,
		HTMLTemplate:     DefaultHTMLTemplate,
		Output:           DefaultOutput,
		Title:            DefaultTitle,
		Converter: ConverterConfig{
			Name:       convert.GitHubName,
			Endpoint:   convert.DefaultEndpoint,
			APIVersion: convert.DefaultAPIVersion,
			UserAgent:  convert.DefaultUserAgent,
			Timeout:    convert.DefaultTimeout,
			TokenEnv:   DefaultTokenEnv,
		},
	}
}

// Load reads path over the defaults. A missing file is only an error when
// required is true.
func Load(fs afero.Fs, path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	switch {
	case errors.Is(err, os.ErrNotExist) && !required:
		return cfg, nil
	case err != nil:
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML. The token is never written.
func Save(fs afero.Fs, path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid setting. When converters is not empty
// Converter.Name must be one of them.
func (c Config) Validate(converters ...string) error {
	required := []struct{ key, value string }{
		{"input", c.Input},
		{"markdown_template", c.MarkdownTemplate},
		{"html_template", c.HTMLTemplate},
		{"output", c.Output},
		{"converter.name", c.Converter.Name},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("config: %s is required", field.key)
		}
	}
	if c.Converter.Timeout < 0 {
		return fmt.Errorf("config: converter.timeout must not be negative")
	}
	if len(converters) > 0 && !slices.Contains(converters, c.Converter.Name) {
		return fmt.Errorf("config: converter.name %q is not one of %s", c.Converter.Name, strings.Join(converters, ", "))
	}
	if c.MarkdownOutput != "" && c.MarkdownOutput == c.Output {
		return fmt.Errorf("config: markdown_output and output must differ")
	}
	return nil
}
