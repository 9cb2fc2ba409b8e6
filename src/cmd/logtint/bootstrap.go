// FILE: logtint/src/cmd/logtint/bootstrap.go
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"logtint/src/internal/config"
	"logtint/src/internal/format"
	"logtint/src/internal/pipeline"

	"github.com/lixenwraith/log"
)

// bootstrapPipeline builds the pipeline rendering to out
func bootstrapPipeline(cfg *config.Config, out io.Writer, logger *log.Logger) (*pipeline.Pipeline, error) {
	tier, err := format.ParseTier(cfg.Color.Tier)
	if err != nil {
		return nil, err
	}

	colorize := colorEnabled(cfg.Color.Mode, out)
	formatter, err := format.New("text", format.Options{
		Tier:     tier,
		Colorize: colorize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter: %w", err)
	}

	logger.Debug("msg", "Formatter ready",
		"component", "bootstrap",
		"color_mode", cfg.Color.Mode,
		"color_tier", int(tier),
		"colorize", colorize)

	return pipeline.New(cfg, formatter, logger)
}

// initializeLogger sets up and starts the diagnostics logger from configuration
func initializeLogger(cfg *config.Config, quiet bool) (*log.Logger, error) {
	logger := log.NewLogger()

	// The library creates its directory even with file output disabled
	configArgs := []string{
		fmt.Sprintf("directory=%s", os.TempDir()),
		"format=txt",
	}

	if quiet {
		// In quiet mode, disable ALL logging output
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_console=false",
			"level=255")

		return startLogger(logger, configArgs)
	}

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_console=false")

	case "stderr":
		// stdout carries rendered lines
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_console=true",
			"console_target=stderr")

	case "file":
		if cfg.Logging.File == nil {
			return nil, fmt.Errorf("file log output requires logging.file settings")
		}
		configArgs = append(configArgs,
			"disable_file=false",
			"enable_console=false",
			fmt.Sprintf("directory=%s", cfg.Logging.File.Directory),
			fmt.Sprintf("name=%s", cfg.Logging.File.Name))

	default:
		return nil, fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	return startLogger(logger, configArgs)
}

func startLogger(logger *log.Logger, configArgs []string) (*log.Logger, error) {
	if err := logger.ApplyConfigString(configArgs...); err != nil {
		return nil, fmt.Errorf("failed to configure logger: %w", err)
	}
	if err := logger.Start(); err != nil {
		return nil, fmt.Errorf("failed to start logger: %w", err)
	}
	return logger, nil
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
