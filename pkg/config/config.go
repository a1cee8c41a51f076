// Package config holds the service configuration: server settings, default
// formatting options, named presets, and dialect settings. All of it is an
// explicitly passed value; nothing in the formatting or validation path
// reads globals.
package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sqlkit/sqlformat/pkg/formatter"
)

// MaxSQLLength bounds input size at the service boundary. The validation
// and formatting cores do not enforce it themselves.
const MaxSQLLength = 1024 * 1024 // 1 MiB

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig                 `yaml:"server" json:"server"`
	Format    formatter.Options            `yaml:"format" json:"format"`
	Presets   map[string]formatter.Options `yaml:"presets" json:"presets"`
	Dialects  map[string]DialectSettings   `yaml:"dialects" json:"dialects"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host        string   `yaml:"host" json:"host"`
	Port        int      `yaml:"port" json:"port"`
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins"`
}

// DialectSettings captures per-dialect lexical conventions.
type DialectSettings struct {
	QuoteChar               string `yaml:"quote_char" json:"quote_char"`
	EscapeQuotes            bool   `yaml:"escape_quotes" json:"escape_quotes"`
	SupportsWindowFunctions bool   `yaml:"supports_window_functions" json:"supports_window_functions"`
}

// Default returns the stock configuration: localhost server, standard
// formatting defaults, the four shipped presets, and the known dialects.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "127.0.0.1",
			Port:        5000,
			CORSOrigins: []string{"*"},
		},
		Format: formatter.DefaultOptions(),
		Presets: map[string]formatter.Options{
			"standard": {
				KeywordCase:     "upper",
				IndentWidth:     4,
				WrapAfter:       79,
				Reindent:        true,
				StripWhitespace: true,
			},
			"compact": {
				KeywordCase:     "upper",
				IndentWidth:     2,
				WrapAfter:       120,
				Reindent:        true,
				StripWhitespace: true,
			},
			"minimal": {
				KeywordCase:     "lower",
				IndentWidth:     2,
				WrapAfter:       79,
				Reindent:        true,
				StripWhitespace: true,
			},
			"legacy": {
				KeywordCase:     "upper",
				IdentifierCase:  "upper",
				IndentWidth:     8,
				IndentTabs:      true,
				WrapAfter:       79,
				Reindent:        true,
				StripWhitespace: true,
			},
		},
		Dialects: map[string]DialectSettings{
			"postgresql": {QuoteChar: `"`, EscapeQuotes: true, SupportsWindowFunctions: true},
			"mysql":      {QuoteChar: "`", EscapeQuotes: true, SupportsWindowFunctions: true},
			"sqlite":     {QuoteChar: `"`, EscapeQuotes: true, SupportsWindowFunctions: true},
			"oracle":     {QuoteChar: `"`, EscapeQuotes: true, SupportsWindowFunctions: true},
			"sqlserver":  {QuoteChar: "[", EscapeQuotes: true, SupportsWindowFunctions: true},
		},
	}
}

// LoadFromFile loads configuration from a YAML or JSON file, overlaying the
// defaults so partial files work.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", filename)
	}

	cfg := Default()

	// Try YAML first, then JSON.
	if yamlErr := yaml.Unmarshal(data, cfg); yamlErr != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, errors.Wrapf(yamlErr, "failed to parse config file: %s", filename)
		}
	}

	return cfg, nil
}

// Preset returns a named preset, falling back to the configured defaults
// for an unknown name.
func (c *Config) Preset(name string) (formatter.Options, bool) {
	if opts, ok := c.Presets[name]; ok {
		return opts, true
	}
	return c.Format, false
}
