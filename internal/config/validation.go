package config

import "fmt"

// Validate checks a resolved Config for internally consistent, safe
// values. It never looks at the filesystem — scan-path existence is the
// CLI layer's concern, not the config layer's.
func Validate(cfg *Config) error {
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", cfg.Timeout)
	}
	if cfg.Parallel < 0 {
		return fmt.Errorf("parallel must be non-negative, got %d", cfg.Parallel)
	}
	if cfg.Threshold < 0 || cfg.Threshold > 100 {
		return fmt.Errorf("threshold must be in [0, 100], got %d", cfg.Threshold)
	}
	switch cfg.Output {
	case "console", "json", "html":
	default:
		return fmt.Errorf("output must be one of console|json|html, got %q", cfg.Output)
	}
	if cfg.Report != "" {
		if err := validatePath(cfg.Report); err != nil {
			return fmt.Errorf("invalid report path: %w", err)
		}
	}
	for _, p := range cfg.Sources {
		if err := validatePath(p); err != nil {
			return fmt.Errorf("invalid source path %q: %w", p, err)
		}
	}
	return nil
}
