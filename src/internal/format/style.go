// FILE: logtint/src/internal/format/style.go
package format

import (
	"fmt"

	"logtint/src/internal/core"

	"github.com/fatih/color"
)

// Tier controls how much of a line is colored
type Tier int

const (
	// TierNone colors the severity token only
	TierNone Tier = iota
	// TierMessage adds the message
	TierMessage
	// TierFull adds the timestamp
	TierFull
)

// ParseTier converts a configured color tier
func ParseTier(v int64) (Tier, error) {
	if v < int64(TierNone) || v > int64(TierFull) {
		return TierNone, fmt.Errorf("color tier must be 0, 1 or 2: %d", v)
	}
	return Tier(v), nil
}

// Segment identifies a part of the rendered line
type Segment int

const (
	SegmentTimestamp Segment = iota
	SegmentSeverity
	SegmentMessage
)

var severityColors = map[core.Severity]color.Attribute{
	core.SeverityTrace: color.FgCyan,
	core.SeverityDebug: color.FgBlue,
	core.SeverityInfo:  color.FgGreen,
	core.SeverityWarn:  color.FgYellow,
	core.SeverityError: color.FgRed,
}

// SeverityColor returns the foreground color of a severity
func SeverityColor(sev core.Severity) color.Attribute {
	if attr, ok := severityColors[sev]; ok {
		return attr
	}
	return color.Reset
}

// Style decides whether seg is colored at tier, and with which color.
// The severity token is always colored.
func Style(sev core.Severity, tier Tier, seg Segment) (color.Attribute, bool) {
	var styled bool
	switch seg {
	case SegmentSeverity:
		styled = true
	case SegmentMessage:
		styled = tier >= TierMessage
	case SegmentTimestamp:
		styled = tier >= TierFull
	}
	return SeverityColor(sev), styled
}
