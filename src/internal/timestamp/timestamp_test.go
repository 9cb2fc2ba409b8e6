// FILE: logtint/src/internal/timestamp/timestamp_test.go
package timestamp

import (
	"errors"
	"testing"
	"time"

	"logtint/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		pattern  string
		expected string
	}{
		{
			name:     "ISO8601WithOffset",
			value:    "2024-01-02T03:04:05+00:00",
			pattern:  PatternISO8601,
			expected: "2024-01-02T03:04:05+00:00",
		},
		{
			name:     "ISO8601Zulu",
			value:    "2024-01-02T03:04:05Z",
			pattern:  PatternISO8601,
			expected: "2024-01-02T03:04:05+00:00",
		},
		{
			name:     "ISO8601FractionAndOffset",
			value:    "2024-01-02T03:04:05.123+09:30",
			pattern:  PatternISO8601,
			expected: "2024-01-02T03:04:05.123+09:30",
		},
		{
			name:     "ISO8601Micros",
			value:    "2024-01-02T03:04:05.123456-05:00",
			pattern:  PatternISO8601,
			expected: "2024-01-02T03:04:05.123456-05:00",
		},
		{
			name:     "ISO8601Nanos",
			value:    "2024-01-02T03:04:05.123456789+00:00",
			pattern:  PatternISO8601,
			expected: "2024-01-02T03:04:05.123456789+00:00",
		},
		{
			name:     "UnixSeconds",
			value:    "1700000000",
			pattern:  PatternUnix,
			expected: "2023-11-14T22:13:20+00:00",
		},
		{
			name:     "UnixFractional",
			value:    "1700000000.25",
			pattern:  PatternUnix,
			expected: "2023-11-14T22:13:20.250+00:00",
		},
		{
			name:     "ISO8601SpaceSeparator",
			value:    "2024-01-02 03:04:05+00:00",
			pattern:  PatternISO8601,
			expected: "2024-01-02T03:04:05+00:00",
		},
		{
			name:     "ISO8601LowercaseSeparatorAndZulu",
			value:    "2024-01-02t03:04:05.5z",
			pattern:  PatternISO8601,
			expected: "2024-01-02T03:04:05.500+00:00",
		},
		{
			name:     "ISO8601OffsetWithoutColon",
			value:    "2024-01-02T03:04:05-0730",
			pattern:  PatternISO8601,
			expected: "2024-01-02T03:04:05-07:30",
		},
		{
			name:     "ISO8601SpacedOffset",
			value:    "2024-01-02 03:04:05 +01:00",
			pattern:  PatternISO8601,
			expected: "2024-01-02T03:04:05+01:00",
		},
		{
			name:     "ISO8601UTCSuffix",
			value:    "2024-01-02 03:04:05 UTC",
			pattern:  PatternISO8601,
			expected: "2024-01-02T03:04:05+00:00",
		},
		{
			name:     "StrptimeColonOffset",
			value:    "02/01/2024 03:04:05 -05:00",
			pattern:  "%d/%m/%Y %H:%M:%S %:z",
			expected: "2024-01-02T03:04:05-05:00",
		},
		{
			name:     "StrptimeWithOffset",
			value:    "2024-01-02T03:04:05+0900",
			pattern:  "%Y-%m-%dT%H:%M:%S%z",
			expected: "2024-01-02T03:04:05+09:00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := Parse(tc.value, tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, Format(ts))
		})
	}
}

func TestParse_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		pattern string
	}{
		{"PlaceholderAgainstISO8601", Placeholder, PatternISO8601},
		{"ISO8601WithoutOffset", "2024-01-02T03:04:05", PatternISO8601},
		{"UnixGarbage", "abc", PatternUnix},
		{"UnixDecimalAgainstISO8601", "1700000000", PatternISO8601},
		{"UnixEmptyFraction", "1700000000.", PatternUnix},
		{"UnixSignedFraction", "1.+5", PatternUnix},
		{"UnixNegativeFraction", "1.-5", PatternUnix},
		{"ISO8601BadSeparator", "2024-01-02_03:04:05Z", PatternISO8601},
		{"ISO8601OffsetHoursOnly", "2024-01-02T03:04:05+01", PatternISO8601},
		{"StrptimeWithoutOffset", Placeholder, "%Y-%m-%d %H:%M:%S"},
		{"StrptimeZoneNameOnly", "2024-01-02 03:04:05 UTC", "%Y-%m-%d %H:%M:%S %Z"},
		{"StrptimeMismatch", "yesterday", "%Y-%m-%d"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.value, tc.pattern)
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrTimestamp))
			assert.Equal(t, core.KindTimestamp, core.KindOf(err))
			assert.Contains(t, err.Error(), tc.value)
		})
	}
}

func TestHasOffsetDirective(t *testing.T) {
	assert.True(t, hasOffsetDirective("%Y-%m-%dT%H:%M:%S%z"))
	assert.True(t, hasOffsetDirective("%H:%M %:z"))
	assert.True(t, hasOffsetDirective("%::z"))
	assert.False(t, hasOffsetDirective("%Y-%m-%d %H:%M:%S"))
	assert.False(t, hasOffsetDirective("%H:%M %Z"))
	assert.False(t, hasOffsetDirective("%H:%M %%z"))
	assert.False(t, hasOffsetDirective("%"))
}

func TestFormat(t *testing.T) {
	utc := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-01-02T15:04:05+00:00", Format(utc))

	east := time.Date(2024, 1, 2, 15, 4, 5, 0, time.FixedZone("", 2*3600))
	assert.Equal(t, "2024-01-02T15:04:05+02:00", Format(east))

	assert.Equal(t, "2024-01-02T15:04:05.001+00:00", Format(utc.Add(time.Millisecond)))
	assert.Equal(t, "2024-01-02T15:04:05.000001+00:00", Format(utc.Add(time.Microsecond)))
	assert.Equal(t, "2024-01-02T15:04:05.000000001+00:00", Format(utc.Add(time.Nanosecond)))
}

func TestFormat_RoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 999_000_000, time.FixedZone("", -7*3600)),
		time.Date(2030, 6, 15, 12, 0, 0, 123_456_789, time.FixedZone("", 5*3600+1800)),
	}

	for _, instant := range instants {
		rendered := Format(instant)
		parsed, err := Parse(rendered, PatternISO8601)
		require.NoError(t, err, rendered)
		assert.True(t, instant.Equal(parsed), rendered)
		assert.Equal(t, rendered, Format(parsed))
	}
}

func TestNormalizer(t *testing.T) {
	n := NewNormalizer(PatternUnix)
	assert.Equal(t, PatternUnix, n.Pattern())

	ts, err := n.Normalize("0")
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T00:00:00+00:00", Format(ts))

	ts, err = n.Normalize("-1.5")
	require.NoError(t, err)
	assert.Equal(t, "1969-12-31T23:59:58.500+00:00", Format(ts))
}
