// FILE: logtint/src/cmd/logtint/terminal.go
package main

import (
	"io"
	"os"

	"logtint/src/internal/config"

	"golang.org/x/term"
)

// colorEnabled decides whether out receives ANSI colors. Writers without a
// file descriptor are never terminals.
func colorEnabled(mode string, out io.Writer) bool {
	isTerminal := false
	if f, ok := out.(interface{ Fd() uintptr }); ok {
		isTerminal = term.IsTerminal(int(f.Fd()))
	}
	return colorSupported(mode, isTerminal, os.LookupEnv)
}

// colorSupported applies the color mode. In auto mode color needs a terminal,
// no NO_COLOR variable and a TERM other than "dumb".
func colorSupported(mode string, isTerminal bool, lookupEnv func(string) (string, bool)) bool {
	switch mode {
	case config.ColorModeAlways:
		return true
	case config.ColorModeNever:
		return false
	}

	if _, ok := lookupEnv("NO_COLOR"); ok {
		return false
	}
	if termName, _ := lookupEnv("TERM"); termName == "dumb" {
		return false
	}
	return isTerminal
}
