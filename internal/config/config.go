// Package config provides centralized configuration management for the
// converter. It loads configuration from environment variables with sensible
// defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

// Config holds all tool configuration.
// All settings can be configured via environment variables.
type Config struct {
	Convert ConvertConfig
	Logging LoggingConfig
}

// ConvertConfig holds conversion run settings.
type ConvertConfig struct {
	// SampleSize is how many sample conversions the run summary shows (default: 5)
	SampleSize int `env:"CONVERT_SAMPLE_SIZE" default:"5"`

	// OutputSuffix is appended to the input file stem for the default
	// output name (default: _converted)
	OutputSuffix string `env:"CONVERT_OUTPUT_SUFFIX" default:"_converted"`

	// MaxFileSize is the maximum input file size in bytes (default: 100MB)
	MaxFileSize int64 `env:"CONVERT_MAX_FILE_SIZE" default:"104857600"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
