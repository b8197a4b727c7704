package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/DayoWang/memobase/internal/profile"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

// ProfileConfig holds the profile taxonomy overrides.
type ProfileConfig struct {
	OverwriteUserProfiles  []profile.RawTopic `yaml:"overwrite_user_profiles"`
	AdditionalUserProfiles []profile.RawTopic `yaml:"additional_user_profiles"`
}

// Overrides converts the config fields to profile.Overrides.
func (p ProfileConfig) Overrides() profile.Overrides {
	return profile.Overrides{
		Overwrite:  p.OverwriteUserProfiles,
		Additional: p.AdditionalUserProfiles,
	}
}

type Config struct {
	Log struct {
		Level string `yaml:"level" env:"MEMOBASE_LOG_LEVEL"`
	} `yaml:"log"`
	Profile ProfileConfig `yaml:",inline"`
}

// Load loads configuration from the specified file path.
// It first loads the embedded default configuration, then merges the user config on top.
// Finally, it overrides values with environment variables.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfig, &cfg); err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
			slog.Warn("config file not found, using defaults", "path", path)
		} else {
			// No env expansion here: descriptions are free text and "$" is literal.
			// Lists present in the user file replace the defaults.
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			slog.Debug("loaded user config", "path", path)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultConfigBytes returns the raw embedded default configuration.
// Used by the init-config command to write a starter file.
func DefaultConfigBytes() []byte {
	return defaultConfig
}

// LogLevel parses log.level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Validate checks configuration for required fields and valid ranges.
// Returns an error describing all validation failures.
// Only the profile list that takes effect is checked: a non-empty
// overwrite_user_profiles makes additional_user_profiles irrelevant.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	switch profile.ChoosePolicy(c.Profile.Overrides()) {
	case profile.PolicyOverwrite:
		if _, err := profile.BuildTopics(c.Profile.OverwriteUserProfiles); err != nil {
			errs = append(errs, fmt.Errorf("overwrite_user_profiles: %w", err))
		}
	case profile.PolicyAdditional:
		if _, err := profile.BuildTopics(c.Profile.AdditionalUserProfiles); err != nil {
			errs = append(errs, fmt.Errorf("additional_user_profiles: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
