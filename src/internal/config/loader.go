// FILE: logtint/src/internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

const envPrefix = "LOGTINT_"

// Load resolves the configuration from CLI overrides, environment, the TOML
// file at configPath and defaults, in that order of precedence.
// cliArgs use the "--section.key=value" form.
func Load(configPath string, cliArgs []string) (*Config, error) {
	if configPath == "" {
		configPath = GetConfigPath()
	}
	if cliArgs == nil {
		// nil would let the builder fall back to os.Args
		cliArgs = []string{}
	}

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix(envPrefix).
		WithFile(configPath).
		WithArgs(cliArgs).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		// A missing config file is normal, the other sources still apply
		if !errors.Is(err, lconfig.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	finalConfig := &Config{}
	if err := cfg.Scan(finalConfig); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	if finalConfig.Logging == nil {
		finalConfig.Logging = DefaultLogConfig()
	}

	return finalConfig, validateConfig(finalConfig)
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	env = envPrefix + env
	return env
}

// GetConfigPath locates the TOML file from LOGTINT_CONFIG_FILE / LOGTINT_CONFIG_DIR,
// falling back to ~/.config/logtint.toml
func GetConfigPath() string {
	if configFile := os.Getenv("LOGTINT_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("LOGTINT_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("LOGTINT_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "logtint.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "logtint.toml")
	}

	return "logtint.toml"
}
