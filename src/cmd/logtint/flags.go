// FILE: logtint/src/cmd/logtint/flags.go
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// FlagConfig holds the flags that act outside the layered configuration.
// Everything else becomes an lconfig CLI override.
type FlagConfig struct {
	ConfigFile  string
	SaveConfig  string
	ShowVersion bool
	Quiet       bool

	// "--section.key=value" overrides for config.Load
	Overrides []string
}

// overrideFlag maps a command-line flag onto a configuration path
type overrideFlag struct {
	long  string
	short string
	path  string
	usage string
}

var overrideFlags = []overrideFlag{
	{"level", "l", "fields.level", "JSON key holding the severity"},
	{"message", "m", "fields.message", "JSON key holding the message"},
	{"timestamp", "t", "fields.timestamp", "JSON key holding the timestamp"},
	{"strptime", "s", "timestamp.pattern", "strptime pattern for timestamps (default \"%+\", ISO 8601 with offset)"},
	{"color", "c", "color.tier", "Color tier: 0 severity only, 1 adds message, 2 adds timestamp"},
	{"color-mode", "", "color.mode", "Color mode: auto, always, never"},
	{"log-level", "", "logging.level", "Diagnostic log level: debug, info, warn, error"},
	{"log-output", "", "logging.output", "Diagnostic log output: stderr, file, none"},
	{"log-dir", "", "logging.file.directory", "Diagnostic log directory (when using file output)"},
}

// ParseFlags parses command-line arguments
func ParseFlags(args []string) (*FlagConfig, error) {
	fc := &FlagConfig{}
	fs := flag.NewFlagSet("logtint", flag.ContinueOnError)
	fs.Usage = func() { customUsage(fs.Output()) }

	fs.StringVar(&fc.ConfigFile, "config", "", "Config file path")
	fs.StringVar(&fc.SaveConfig, "save-config", "", "Write the resolved configuration to a TOML file and exit")
	fs.BoolVar(&fc.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&fc.Quiet, "quiet", false, "Suppress diagnostics and error output")
	fs.BoolVar(&fc.Quiet, "q", false, "Suppress diagnostics and error output")

	values := make(map[string]*string, len(overrideFlags)*2)
	paths := make(map[string]string, len(overrideFlags)*2)
	for _, of := range overrideFlags {
		for _, name := range []string{of.long, of.short} {
			if name == "" {
				continue
			}
			values[name] = fs.String(name, "", of.usage)
			paths[name] = of.path
		}
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	// Only explicitly set flags override lower-precedence sources
	fs.Visit(func(f *flag.Flag) {
		if path, ok := paths[f.Name]; ok {
			fc.Overrides = append(fc.Overrides, fmt.Sprintf("--%s=%s", path, *values[f.Name]))
		}
	})

	return fc, nil
}

func customUsage(w io.Writer) {
	fmt.Fprintf(w, "logtint - colorize JSON log lines from stdin\n\n")
	fmt.Fprintf(w, "Usage: logtint [options] < input.jsonl\n\n")

	fmt.Fprintf(w, "Fields:\n")
	for _, of := range overrideFlags {
		if of.short != "" {
			fmt.Fprintf(w, "  -%s, --%s string\n\t%s\n", of.short, of.long, of.usage)
		} else {
			fmt.Fprintf(w, "  --%s string\n\t%s\n", of.long, of.usage)
		}
	}

	fmt.Fprintf(w, "\nGeneral:\n")
	fmt.Fprintf(w, "  --config string\n\tConfig file path\n")
	fmt.Fprintf(w, "  --save-config string\n\tWrite the resolved configuration to a TOML file and exit\n")
	fmt.Fprintf(w, "  -q, --quiet\n\tSuppress diagnostics and error output\n")
	fmt.Fprintf(w, "  --version\n\tShow version information\n")

	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  # Render with defaults\n")
	fmt.Fprintf(w, "  app | logtint\n\n")
	fmt.Fprintf(w, "  # Custom keys, unix timestamps, full color\n")
	fmt.Fprintf(w, "  app | logtint -l severity -m msg -t ts -s %%s -c 2\n\n")

	fmt.Fprintf(w, "Environment Variables:\n")
	fmt.Fprintf(w, "  LOGTINT_CONFIG_FILE   Config file path\n")
	fmt.Fprintf(w, "  LOGTINT_CONFIG_DIR    Config directory\n")
	fmt.Fprintf(w, "  LOGTINT_<SECTION>_<KEY>  Any config key, e.g. LOGTINT_COLOR_TIER=1\n")
	fmt.Fprintf(w, "  NO_COLOR              Disable color in auto mode\n")
}
