// Package config loads tool configuration from defaults, an optional
// .reviewloop.toml file, and REVIEWLOOP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// BotConfig identifies the review bot being tracked.
type BotConfig struct {
	// Login is the review author login that marks a bot review.
	Login string `mapstructure:"login"`
	// CheckName is the case-insensitive substring matched against CI check
	// names to find the bot's check.
	CheckName string `mapstructure:"check_name"`
}

// WaitConfig tunes the CI poll loop.
type WaitConfig struct {
	InitialDelay time.Duration `mapstructure:"initial_delay"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// OutputConfig names the report output files.
type OutputConfig struct {
	Path     string `mapstructure:"path"`
	HTMLPath string `mapstructure:"html_path"`
}

// Config holds the full tool configuration.
type Config struct {
	Bot    BotConfig    `mapstructure:"bot"`
	Wait   WaitConfig   `mapstructure:"wait"`
	Output OutputConfig `mapstructure:"output"`
}

// setDefaults registers the default value for every configuration key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("bot.login", "coderabbitai")
	v.SetDefault("bot.check_name", "coderabbit")

	v.SetDefault("wait.initial_delay", "10s") // Lets CI register after a push.
	v.SetDefault("wait.poll_interval", "15s")
	v.SetDefault("wait.timeout", "600s")

	v.SetDefault("output.path", ".reviews/prComments.md")
	v.SetDefault("output.html_path", ".reviews/prComments.html")
}

// Load reads configuration and returns a populated Config. A missing config
// file is fine; a malformed one is an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("REVIEWLOOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	v.SetConfigName(".reviewloop")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper unmarshals configuration from a prepared Viper instance.
// Exposed for tests.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// NewViper returns a Viper instance carrying only the tool defaults.
// Exposed for tests.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}
