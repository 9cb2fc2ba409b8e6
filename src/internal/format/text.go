// FILE: logtint/src/internal/format/text.go
package format

import (
	"strings"

	"logtint/src/internal/core"
	"logtint/src/internal/timestamp"

	"github.com/fatih/color"
)

// TextFormatter renders "<rfc3339> <SEVERITY padded to 6> - <message>"
type TextFormatter struct {
	tier     Tier
	colorize bool
	palette  map[color.Attribute]*color.Color
}

// NewTextFormatter creates a text formatter
func NewTextFormatter(opts Options) (*TextFormatter, error) {
	if _, err := ParseTier(int64(opts.Tier)); err != nil {
		return nil, err
	}

	f := &TextFormatter{
		tier:     opts.Tier,
		colorize: opts.Colorize,
		palette:  make(map[color.Attribute]*color.Color, len(severityColors)),
	}

	// Colors are forced on or off here so fatih/color's own tty detection
	// does not second-guess the caller
	for _, attr := range severityColors {
		c := color.New(attr)
		if opts.Colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		f.palette[attr] = c
	}

	return f, nil
}

// Format renders one record
func (f *TextFormatter) Format(rec core.Record) ([]byte, error) {
	var b strings.Builder

	b.WriteString(f.paint(rec.Level, SegmentTimestamp, timestamp.Format(rec.Time)))
	b.WriteByte(' ')
	b.WriteString(f.paint(rec.Level, SegmentSeverity, rec.Level.Padded()))
	b.WriteString(" - ")
	b.WriteString(f.paint(rec.Level, SegmentMessage, rec.Message))
	b.WriteByte('\n')

	return []byte(b.String()), nil
}

func (f *TextFormatter) paint(sev core.Severity, seg Segment, text string) string {
	if !f.colorize {
		return text
	}
	attr, styled := Style(sev, f.tier, seg)
	if !styled {
		return text
	}
	c, ok := f.palette[attr]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// Name returns the formatter name
func (f *TextFormatter) Name() string {
	return "text"
}
