// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Output modes accepted by the CLI.
const (
	OutputConsole = "console"
	OutputJSON    = "json"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags, which take priority.
type Config struct {
	Output  string `json:"output,omitempty" validate:"omitempty,oneof=console json"` // Output mode: console or json
	Export  string `json:"export,omitempty"`                                         // Path for the optional JSON export
	Catalog string `json:"catalog,omitempty"`                                        // Path to a YAML skill catalog override
	NoColor bool   `json:"no_color,omitempty"`                                       // Disable ANSI colors
	Verbose bool   `json:"verbose,omitempty"`                                        // Print detailed pipeline information
}

// Load reads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration before any processing begins. The
// output mode in particular must be rejected up front rather than after
// extraction has already run.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fieldErr := range fieldErrs {
				if fieldErr.Field() == "Output" {
					return fmt.Errorf("invalid output mode %q: must be %q or %q", c.Output, OutputConsole, OutputJSON)
				}
			}
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued string fields
// filled from defaults. This applies config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Export == "" {
		result.Export = defaults.Export
	}
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
