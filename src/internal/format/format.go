// FILE: logtint/src/internal/format/format.go
package format

import (
	"fmt"

	"logtint/src/internal/core"
)

// Formatter defines the interface for turning a Record into one output line.
type Formatter interface {
	// Format renders a record, including the trailing newline.
	Format(rec core.Record) ([]byte, error)

	// Name returns the formatter type name
	Name() string
}

// Options configures a formatter. Colorize is decided by the caller from the
// output destination's capabilities.
type Options struct {
	Tier     Tier
	Colorize bool
}

// New creates a new Formatter by name
func New(name string, opts Options) (Formatter, error) {
	// Default to text if no format specified
	if name == "" {
		name = "text"
	}

	switch name {
	case "text":
		f, err := NewTextFormatter(opts)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", name)
	}
}
