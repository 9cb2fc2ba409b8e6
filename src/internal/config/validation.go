// FILE: logtint/src/internal/config/validation.go
package config

import (
	"fmt"
	"strings"
)

// validateConfig only checks presence and ranges. Pattern contents are not
// checked, a bad pattern surfaces as a timestamp error on the first record.
func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	required := []struct {
		path  string
		value string
	}{
		{"fields.level", cfg.Fields.Level},
		{"fields.message", cfg.Fields.Message},
		{"fields.timestamp", cfg.Fields.Timestamp},
		{"timestamp.pattern", cfg.Timestamp.Pattern},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s cannot be empty", r.path)
		}
	}

	if cfg.Color.Tier < 0 || cfg.Color.Tier > MaxColorTier {
		return fmt.Errorf("color.tier must be between 0 and %d: %d", MaxColorTier, cfg.Color.Tier)
	}

	switch cfg.Color.Mode {
	case ColorModeAuto, ColorModeAlways, ColorModeNever:
	default:
		return fmt.Errorf("invalid color mode: %s", cfg.Color.Mode)
	}

	if cfg.Logging != nil {
		if err := validateLogConfig(cfg.Logging); err != nil {
			return fmt.Errorf("logging config: %w", err)
		}
	}

	return nil
}

// Validate runs the same checks as Load on an already built configuration
func (c *Config) Validate() error {
	return validateConfig(c)
}
