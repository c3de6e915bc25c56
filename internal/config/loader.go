package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (TESTMANIFEST_*)
const EnvPrefix = "TESTMANIFEST"

// LoadWithViper loads configuration through v
func LoadWithViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Config file settings
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func bindLegacyEnv(v *viper.Viper) error {
	if err := v.BindEnv("manifest.path", EnvPrefix+"_MANIFEST_PATH", LegacyManifestEnv); err != nil {
		return err
	}
	return v.BindEnv("platform", EnvPrefix+"_PLATFORM", LegacyPlatformEnv)
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("manifest.path", d.Manifest.Path)
	v.SetDefault("manifest.strict", d.Manifest.Strict)
	v.SetDefault("platform", d.Platform)

	v.SetDefault("matcher.engine", d.Matcher.Engine)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("watch.debounce", d.Watch.Debounce)
}
