// FILE: logtint/src/internal/timestamp/timestamp.go
package timestamp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"logtint/src/internal/core"

	"github.com/itchyny/timefmt-go"
)

const (
	// PatternISO8601 parses RFC 3339 / ISO 8601 with a mandatory offset and optional
	// fraction. The date and time may be separated by "T", "t" or a space, and the
	// offset may be "Z", "z", "UTC", "+hh:mm", "+hhmm" or "+hh mm".
	PatternISO8601 = "%+"

	// PatternUnix parses Unix seconds, optionally with a decimal fraction
	PatternUnix = "%s"

	// Placeholder is substituted when a record carries no timestamp. It is not
	// checked against the configured pattern.
	Placeholder = "1970-01-01 00:00:00"
)

// Normalizer converts raw timestamp strings into fixed-offset instants using
// one strptime-style pattern for the life of the process.
type Normalizer struct {
	pattern string
}

// NewNormalizer creates a normalizer for pattern. The pattern is not validated
// up front; a pattern that matches nothing fails on first use.
func NewNormalizer(pattern string) *Normalizer {
	return &Normalizer{pattern: pattern}
}

// Pattern returns the configured pattern
func (n *Normalizer) Pattern() string {
	return n.pattern
}

// Normalize parses raw with the configured pattern
func (n *Normalizer) Normalize(raw string) (time.Time, error) {
	return Parse(raw, n.pattern)
}

var (
	errNoOffset = errors.New("pattern parses no UTC offset")

	iso8601Relaxed = regexp.MustCompile(
		`^(\d{4}-\d{2}-\d{2})[Tt ](\d{2}:\d{2}:\d{2}(?:\.\d+)?)\s*` +
			`(?:([Zz]|[Uu][Tt][Cc])|([+-]\d{2})[: ]?(\d{2}))$`)
)

// Parse parses value against a strptime-style pattern. Every pattern must
// yield a UTC offset: "%s" is read as UTC, any other strptime pattern needs a
// "%z" directive. Failures are timestamp errors.
func Parse(value, pattern string) (time.Time, error) {
	var (
		t   time.Time
		err error
	)

	switch pattern {
	case PatternISO8601:
		t, err = parseISO8601(value)
	case PatternUnix:
		t, err = parseUnix(value)
	default:
		if !hasOffsetDirective(pattern) {
			err = errNoOffset
			break
		}
		t, err = timefmt.Parse(value, pattern)
	}

	if err != nil {
		return time.Time{}, core.NewError(core.KindTimestamp, "",
			fmt.Errorf("cannot read %q as %q: %w", value, pattern, err))
	}

	_, offset := t.Zone()
	return t.In(time.FixedZone("", offset)), nil
}

func parseISO8601(value string) (time.Time, error) {
	m := iso8601Relaxed.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, fmt.Errorf("not an RFC 3339 timestamp")
	}

	offset := "Z"
	if m[3] == "" {
		offset = m[4] + ":" + m[5]
	}
	return time.Parse(time.RFC3339Nano, m[1]+"T"+m[2]+offset)
}

// hasOffsetDirective reports whether pattern contains %z, including the
// %:z and %::z forms. %Z names a zone but is not enough on its own.
func hasOffsetDirective(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		i++
		for i < len(pattern) && pattern[i] == ':' {
			i++
		}
		if i < len(pattern) && pattern[i] == 'z' {
			return true
		}
	}
	return false
}

func parseUnix(value string) (time.Time, error) {
	whole, frac, hasFrac := strings.Cut(value, ".")
	sec, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid unix seconds: %w", err)
	}

	var nsec int64
	if hasFrac {
		if frac == "" || len(frac) > 9 || strings.Trim(frac, "0123456789") != "" {
			return time.Time{}, fmt.Errorf("invalid fractional seconds %q", frac)
		}
		digits := frac + strings.Repeat("0", 9-len(frac))
		nsec, err = strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid fractional seconds %q", frac)
		}
		if strings.HasPrefix(whole, "-") {
			nsec = -nsec
		}
	}

	return time.Unix(sec, nsec).UTC(), nil
}

// Format renders t as RFC 3339. A zero offset is written as "+00:00" rather
// than "Z", and fractional seconds appear only when non-zero, with 3, 6 or 9 digits.
func Format(t time.Time) string {
	layout := "2006-01-02T15:04:05"

	ns := t.Nanosecond()
	switch {
	case ns == 0:
	case ns%1_000_000 == 0:
		layout += ".000"
	case ns%1_000 == 0:
		layout += ".000000"
	default:
		layout += ".000000000"
	}

	return t.Format(layout + "-07:00")
}
