package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/quantmind-br/testmanifest/internal/matcher"
)

// Default values
const (
	DefaultEngine = matcher.EngineRE2

	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	DefaultWatchDebounce = 100 * time.Millisecond
	MinWatchDebounce     = 10 * time.Millisecond
)

// Environment variables honoured for compatibility with existing test
// builds, checked after the TESTMANIFEST_ ones.
const (
	LegacyManifestEnv = "XLA_DISABLED_MANIFEST"
	LegacyPlatformEnv = "XLA_PLATFORM"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".testmanifest"
	}
	return filepath.Join(home, ".testmanifest")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Matcher: MatcherConfig{
			Engine: DefaultEngine,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Watch: WatchConfig{
			Debounce: DefaultWatchDebounce,
		},
	}
}
