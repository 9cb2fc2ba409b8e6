// FILE: logtint/src/cmd/logtint/flags_test.go
package main

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Run("NoArgs", func(t *testing.T) {
		fc, err := ParseFlags(nil)
		require.NoError(t, err)
		assert.Empty(t, fc.Overrides)
		assert.False(t, fc.Quiet)
		assert.False(t, fc.ShowVersion)
	})

	t.Run("ShortFlags", func(t *testing.T) {
		fc, err := ParseFlags([]string{"-l", "severity", "-m", "msg", "-t", "ts", "-s", "%s", "-c", "2"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"--fields.level=severity",
			"--fields.message=msg",
			"--fields.timestamp=ts",
			"--timestamp.pattern=%s",
			"--color.tier=2",
		}, fc.Overrides)
	})

	t.Run("LongFlags", func(t *testing.T) {
		fc, err := ParseFlags([]string{
			"--strptime=%Y-%m-%d %H:%M:%S",
			"--color-mode", "never",
			"--log-level", "debug",
			"--config", "/tmp/logtint.toml",
			"-q",
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"--timestamp.pattern=%Y-%m-%d %H:%M:%S",
			"--color.mode=never",
			"--logging.level=debug",
		}, fc.Overrides)
		assert.Equal(t, "/tmp/logtint.toml", fc.ConfigFile)
		assert.True(t, fc.Quiet)
	})

	t.Run("Version", func(t *testing.T) {
		fc, err := ParseFlags([]string{"--version"})
		require.NoError(t, err)
		assert.True(t, fc.ShowVersion)
	})

	t.Run("UnknownFlag", func(t *testing.T) {
		_, err := ParseFlags([]string{"--bogus"})
		assert.Error(t, err)
	})

	t.Run("PositionalArgs", func(t *testing.T) {
		_, err := ParseFlags([]string{"file.log"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected arguments")
	})

	t.Run("Help", func(t *testing.T) {
		_, err := ParseFlags([]string{"-h"})
		assert.True(t, errors.Is(err, flag.ErrHelp))
	})
}

func TestParseLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error", "INFO"} {
		_, err := parseLogLevel(level)
		assert.NoError(t, err, level)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}
