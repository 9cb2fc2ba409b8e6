// FILE: logtint/src/internal/core/severity.go
package core

import (
	"fmt"
	"strings"
)

// Severity is the canonical log level. Values are ordered from least to most severe.
type Severity int

const (
	SeverityTrace Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityWarn
	SeverityError
)

// SeverityWidth is the padded width of the severity token in rendered lines
const SeverityWidth = 6

var severityNames = [...]string{
	SeverityTrace: "TRACE",
	SeverityDebug: "DEBUG",
	SeverityInfo:  "INFO",
	SeverityWarn:  "WARN",
	SeverityError: "ERROR",
}

// String returns the upper-case token used in rendered output.
func (s Severity) String() string {
	if s < SeverityTrace || s > SeverityError {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// Padded returns the token left-aligned in a field of SeverityWidth characters.
func (s Severity) Padded() string {
	return fmt.Sprintf("%-*s", SeverityWidth, s.String())
}

// ParseSeverity maps a raw level value onto a Severity, ignoring case.
// Unknown values fail with a field error.
func ParseSeverity(raw string) (Severity, error) {
	switch strings.ToLower(raw) {
	case "trace":
		return SeverityTrace, nil
	case "debug":
		return SeverityDebug, nil
	case "info":
		return SeverityInfo, nil
	case "warn", "warning":
		return SeverityWarn, nil
	case "error":
		return SeverityError, nil
	default:
		return 0, NewError(KindField, "", fmt.Errorf("unknown severity %q", raw))
	}
}
