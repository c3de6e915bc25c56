package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/quantmind-br/testmanifest/internal/matcher"
	"github.com/quantmind-br/testmanifest/internal/utils"
)

// Config represents the application configuration
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	Platform string         `mapstructure:"platform" yaml:"platform"`
	Matcher  MatcherConfig  `mapstructure:"matcher" yaml:"matcher"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Watch    WatchConfig    `mapstructure:"watch" yaml:"watch"`
}

// ManifestConfig locates the disabled-test manifest
type ManifestConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
	// Strict reports a missing manifest file instead of treating it as empty
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// MatcherConfig selects the regex engine
type MatcherConfig struct {
	Engine string `mapstructure:"engine" yaml:"engine"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// WatchConfig contains settings for the watch command
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	c.Manifest.Path = utils.ExpandPath(c.Manifest.Path)

	c.Matcher.Engine = strings.ToLower(c.Matcher.Engine)
	if c.Matcher.Engine == "" {
		c.Matcher.Engine = DefaultEngine
	}
	if _, err := matcher.New(c.Matcher.Engine); err != nil {
		return fmt.Errorf("invalid matcher.engine: %w", err)
	}

	switch c.Logging.Format {
	case "pretty", "json":
	case "":
		c.Logging.Format = DefaultLogFormat
	default:
		return fmt.Errorf("invalid logging.format %q (use pretty or json)", c.Logging.Format)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	if c.Watch.Debounce < MinWatchDebounce {
		c.Watch.Debounce = DefaultWatchDebounce
	}
	return nil
}

// NewMatcher builds the configured regex engine
func (c *Config) NewMatcher() (matcher.Matcher, error) {
	return matcher.New(c.Matcher.Engine)
}
