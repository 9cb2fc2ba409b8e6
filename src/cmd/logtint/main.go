// FILE: logtint/src/cmd/logtint/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"logtint/src/internal/config"
	"logtint/src/internal/core"
	"logtint/src/internal/version"

	"github.com/lixenwraith/log"
)

// Exit codes
const (
	exitOK       = 0
	exitPipeline = 1
	exitConfig   = 2
)

func main() {
	flagCfg, err := ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(exitOK)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitConfig)
	}

	output := NewOutputHandler(flagCfg.Quiet, os.Stderr)

	if flagCfg.ShowVersion {
		fmt.Println(version.String())
		os.Exit(exitOK)
	}

	cfg, err := config.Load(flagCfg.ConfigFile, flagCfg.Overrides)
	if err != nil {
		output.Error("Failed to load config: %v\n", err)
		os.Exit(exitConfig)
	}

	if flagCfg.SaveConfig != "" {
		if err := cfg.SaveToFile(flagCfg.SaveConfig); err != nil {
			output.Error("Failed to save config: %v\n", err)
			os.Exit(exitConfig)
		}
		os.Exit(exitOK)
	}

	logger, err := initializeLogger(cfg, flagCfg.Quiet)
	if err != nil {
		output.Error("Failed to initialize logger: %v\n", err)
		os.Exit(exitConfig)
	}

	os.Exit(run(cfg, logger, output, os.Stdin, os.Stdout))
}

// run drives in to out and maps the outcome to an exit code
func run(cfg *config.Config, logger *log.Logger, output *OutputHandler, in io.Reader, out io.Writer) int {
	defer shutdownLogger(logger, output)

	logger.Info("msg", "logtint starting",
		"version", version.Short(),
		"pattern", cfg.Timestamp.Pattern,
		"color_tier", cfg.Color.Tier)

	p, err := bootstrapPipeline(cfg, out, logger)
	if err != nil {
		output.Error("Error: %v\n", err)
		return exitConfig
	}

	if err := p.Run(context.Background(), in, out); err != nil {
		output.Error("Error: %v\n", err)
		if kind := core.KindOf(err); kind != 0 {
			logger.Debug("msg", "Exiting on fatal record error", "kind", kind.String())
		}
		return exitPipeline
	}

	logger.Info("msg", "Input exhausted", "records", p.Stats.RecordsRendered)
	return exitOK
}

func shutdownLogger(logger *log.Logger, output *OutputHandler) {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			// Best effort - can't log the shutdown error
			output.Error("Logger shutdown error: %v\n", err)
		}
	}
}
