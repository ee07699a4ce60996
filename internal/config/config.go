package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/username/datum/pkg/datum"
)

// Output formats understood by the CLI
const (
	FormatDateTime = "datetime"
	FormatLong     = "long"
	FormatISO      = "iso"
	FormatDate     = "date"
)

// Config represents application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Clock  ClockConfig  `mapstructure:"clock"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // empty logs to the console
	Level string `mapstructure:"level"`
}

// ClockConfig pins "now" for reproducible output
type ClockConfig struct {
	Now string `mapstructure:"now"` // YYYY-MM-DDTHH:mm:ss
}

// OutputConfig controls how the CLI renders results
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Format: FormatDateTime},
	}
}

// Load loads configuration from file. When configPath is empty and no
// datum.yaml is found on the search path the defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("datum")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.datum")
		v.AddConfigPath("/etc/datum")
	}

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("clock.now", "")
	v.SetDefault("output.format", FormatDateTime)

	// DATUM_OUTPUT_FORMAT overrides output.format
	v.SetEnvPrefix("DATUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatDateTime, FormatLong, FormatISO, FormatDate:
	default:
		return fmt.Errorf("output.format must be one of datetime, long, iso, date, got '%s'", c.Output.Format)
	}

	if c.Clock.Now != "" {
		if _, err := datum.New().FromISOLongDate(c.Clock.Now); err != nil {
			return fmt.Errorf("clock.now: %w", err)
		}
	}

	return nil
}

// GetClock returns a clock pinned to clock.now, or the system clock
func (c *ClockConfig) GetClock() datum.Clock {
	if c.Now == "" {
		return datum.SystemClock{}
	}
	d := datum.New()
	at, err := d.FromISOLongDate(c.Now)
	if err != nil {
		return datum.SystemClock{}
	}
	return datum.NewFixedClock(at)
}

// Render formats d according to the configured output format
func (c *OutputConfig) Render(d *datum.Datum) string {
	switch c.Format {
	case FormatLong:
		return d.ToLongDateTimeString()
	case FormatISO:
		return d.ToISOString()
	case FormatDate:
		return d.ToISODateString()
	default:
		return d.ToDateTimeString()
	}
}
