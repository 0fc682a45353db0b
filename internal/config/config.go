// Package config provides configuration management for LeanMutator using
// Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// Configuration Loading Priority (highest to lowest):
//  1. Command-line flags (--operators, --timeout, etc.)
//  2. LEANMUTATOR_CONFIG_FILE environment variable: custom config file path
//  3. Individual LEANMUTATOR_<SECTION> environment variables
//  4. .leanmutator.yml in the current directory
//  5. built-in defaults
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the fully resolved configuration for a mutate run.
type Config struct {
	Operators   []string `yaml:"operators"`
	Exclude     []string `yaml:"exclude"`
	Timeout     int      `yaml:"timeout"` // milliseconds, per-mutation
	Parallel    int      `yaml:"parallel"`
	Output      string   `yaml:"output"` // console|json|html
	Report      string   `yaml:"report"` // report file path, "" = stdout
	Threshold   int      `yaml:"threshold"`
	Sources     []string `yaml:"sources,omitempty"`
	TestCommand string   `yaml:"test_command,omitempty" mapstructure:"test_command"`
	Isolated    bool      `yaml:"-"` // CLI-only, never persisted
	Verbose     bool      `yaml:"-"`
	NoColor     bool      `yaml:"-"`
	WeakSpots   bool      `yaml:"-"`
	TargetFiles []string  `yaml:"-"` // CLI positional arguments
}

// Default returns the built-in defaults a config file or flags may
// override, the lowest rung of the precedence ladder described above.
func Default() *Config {
	return &Config{
		Operators:   nil, // nil/empty = select all registered operators
		Exclude:     []string{".git", ".leanmutator-cache"},
		Timeout:     5000,
		Parallel:    1,
		Output:      "console",
		Report:      "",
		Threshold:   80,
		TestCommand: "lean build",
	}
}

// Load reads configuration from viper (already populated by the CLI layer
// with flag bindings and any config file it located) and fills in any
// value viper did not set with the built-in default.
func Load() (*Config, error) {
	cfg := Default()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if !viper.IsSet("operators") && len(cfg.Operators) == 0 {
		cfg.Operators = Default().Operators
	}
	if !viper.IsSet("exclude") && len(cfg.Exclude) == 0 {
		cfg.Exclude = Default().Exclude
	}
	if !viper.IsSet("timeout") && cfg.Timeout == 0 {
		cfg.Timeout = Default().Timeout
	}
	if !viper.IsSet("parallel") && cfg.Parallel == 0 {
		cfg.Parallel = Default().Parallel
	}
	if cfg.Output == "" {
		cfg.Output = Default().Output
	}
	if !viper.IsSet("threshold") && cfg.Threshold == 0 {
		cfg.Threshold = Default().Threshold
	}
	if cfg.TestCommand == "" {
		cfg.TestCommand = Default().TestCommand
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadLegacy decodes a configuration file with the yaml.v2 decoder,
// kept for sites whose `.leanmutator.yml`
// predates the v3-based `init` writer.
func LoadLegacy(data []byte) (*Config, error) {
	cfg := Default()
	if err := yamlV2Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode legacy configuration: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DefaultConfigPath returns the path `init` writes to and `mutate` reads
// from absent an explicit --config flag or LEANMUTATOR_CONFIG_FILE.
func DefaultConfigPath() string {
	return ".leanmutator.yml"
}

// validatePath rejects path traversal and shell metacharacters in a
// user-supplied path. Validate applies it to the report file and the
// configured sources; CLI positional paths and exclude patterns are not
// checked.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	clean := filepath.Clean(path)
	if strings.Contains(clean, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}
	dangerous := []string{";", "&", "|", "$", "`", "<", ">", "\"", "'"}
	for _, ch := range dangerous {
		if strings.Contains(clean, ch) {
			return fmt.Errorf("path contains dangerous character %q: %s", ch, path)
		}
	}
	return nil
}
