// FILE: logtint/src/internal/config/config.go
package config

// Config is the resolved, read-only configuration shared by every pipeline stage
type Config struct {
	Fields    FieldsConfig    `toml:"fields"`
	Timestamp TimestampConfig `toml:"timestamp"`
	Color     ColorConfig     `toml:"color"`
	Logging   *LogConfig      `toml:"logging"`
}

// FieldsConfig names the JSON keys holding the three rendered fields
type FieldsConfig struct {
	Level     string `toml:"level"`
	Message   string `toml:"message"`
	Timestamp string `toml:"timestamp"`
}

type TimestampConfig struct {
	// strptime-style pattern, "%+" is ISO 8601 with offset
	Pattern string `toml:"pattern"`
}

type ColorConfig struct {
	// 0: severity only, 1: severity and message, 2: everything
	Tier int64 `toml:"tier"`

	// "auto", "always" or "never"
	Mode string `toml:"mode"`
}

const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

const (
	DefaultLevelKey         = "level"
	DefaultMessageKey       = "message"
	DefaultTimestampKey     = "timestamp"
	DefaultTimestampPattern = "%+"
	MaxColorTier            = 2
)

func defaults() *Config {
	return &Config{
		Fields: FieldsConfig{
			Level:     DefaultLevelKey,
			Message:   DefaultMessageKey,
			Timestamp: DefaultTimestampKey,
		},
		Timestamp: TimestampConfig{
			Pattern: DefaultTimestampPattern,
		},
		Color: ColorConfig{
			Tier: 0,
			Mode: ColorModeAuto,
		},
		Logging: DefaultLogConfig(),
	}
}

// Default returns the configuration used when no source overrides anything
func Default() *Config {
	return defaults()
}
