// FILE: logtint/src/internal/config/saver.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lconfig "github.com/lixenwraith/config"
)

// SaveToFile writes the resolved configuration as TOML, creating the parent
// directory when needed.
func (c *Config) SaveToFile(path string) error {
	if path == "" {
		return fmt.Errorf("cannot save config: path is empty")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	// The resolved values are registered as defaults and saved as is, an
	// existing file at path is replaced rather than merged.
	lcfg, err := lconfig.NewBuilder().
		WithTarget(c).
		WithFileFormat("toml").
		WithArgs([]string{}).
		WithSources(lconfig.SourceDefault).
		Build()
	if err != nil && !errors.Is(err, lconfig.ErrConfigNotFound) {
		return fmt.Errorf("failed to create config builder: %w", err)
	}

	// lconfig writes atomically
	if err := lcfg.Save(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
