package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
	Output   OutputConfig   `mapstructure:"output"`
}

// CalendarConfig represents calendar construction settings
type CalendarConfig struct {
	SaturdayOff       bool   `mapstructure:"saturday_off"`
	SundayOff         bool   `mapstructure:"sunday_off"`
	ExtraClosuresFile string `mapstructure:"extra_closures_file"` // Optional extra closure dates, one per line
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty = console logging
	Level string `mapstructure:"level"`
}

// OutputConfig represents CLI output configuration
type OutputConfig struct {
	Format string `mapstructure:"format"` // "iso" or "fr"
}

// Load loads configuration from file. A missing config file is not an
// error unless an explicit path was given; defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("calendar.saturday_off", true)
	v.SetDefault("calendar.sunday_off", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("output.format", "iso")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.workday-calendar")
		v.AddConfigPath("/etc/workday-calendar")
	}

	// Read environment variables
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
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
	case "iso", "fr":
	default:
		return fmt.Errorf("output.format must be 'iso' or 'fr', got '%s'", c.Output.Format)
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got '%s'", c.Log.Level)
	}

	return nil
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Calendar.ExtraClosuresFile = os.ExpandEnv(c.Calendar.ExtraClosuresFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
