// FILE: logtint/src/internal/core/entry.go
package core

import (
	"time"
)

// Record is one decoded input line, reduced to the three fields logtint renders.
// It lives only for the duration of processing one line.
type Record struct {
	Level   Severity
	Time    time.Time
	Message string
}

// RawRecord is the typed view of the configured keys before severity mapping
// and timestamp normalization.
type RawRecord struct {
	Level     string
	Timestamp string
	Message   string
}
