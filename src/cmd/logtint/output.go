// FILE: logtint/src/cmd/logtint/output.go
package main

import (
	"fmt"
	"io"
)

// OutputHandler writes user-facing messages to stderr, respecting quiet mode.
// stdout is reserved for rendered lines.
type OutputHandler struct {
	quiet  bool
	stderr io.Writer
}

// NewOutputHandler returns a handler writing to stderr unless quiet is set
func NewOutputHandler(quiet bool, stderr io.Writer) *OutputHandler {
	return &OutputHandler{
		quiet:  quiet,
		stderr: stderr,
	}
}

// Writes to stderr if not in quiet mode
func (o *OutputHandler) Error(format string, args ...any) {
	if !o.quiet {
		fmt.Fprintf(o.stderr, format, args...)
	}
}
