// Package config loads the settings of the lvlmath command and decodes job
// files describing one enumeration.
//
// Settings come from, in increasing priority: built-in defaults, an optional
// config file (any format viper reads, chosen by extension) and LVLMATH_*
// environment variables, e.g. LVLMATH_ENUM_LIMIT=50 or LVLMATH_LOG_LEVEL=debug.
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "lvlmath"
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "LVLMATH"

	// DefaultLimit caps the elements printed when neither flag nor job sets one.
	DefaultLimit = 20
	// DefaultLogLevel is the zap level used unless configured.
	DefaultLogLevel = "info"
)

var (
	// ErrInvalidConfig is returned when a loaded setting is out of range.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrReadConfig is returned when the config file cannot be read or parsed.
	ErrReadConfig = errors.New("config: cannot read config file")
)

type (
	// Config is the resolved configuration of one command invocation.
	Config struct {
		Log  LogConfig  `mapstructure:"log"`
		Enum EnumConfig `mapstructure:"enum"`
	}

	// LogConfig selects the zap logger built by the cli package.
	LogConfig struct {
		Level       string `mapstructure:"level"`
		Development bool   `mapstructure:"development"`
	}

	// EnumConfig holds the defaults of the enum and run commands.
	EnumConfig struct {
		// Limit is the number of elements printed; it must be positive.
		Limit int `mapstructure:"limit"`
		// Timeout bounds the print loop; zero means no bound.
		Timeout time.Duration `mapstructure:"timeout"`
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Log:  LogConfig{Level: DefaultLogLevel},
		Enum: EnumConfig{Limit: DefaultLimit},
	}
}

// Load resolves the configuration. path may be empty, in which case only
// defaults and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.development", defaults.Log.Development)
	v.SetDefault("enum.limit", defaults.Enum.Limit)
	v.SetDefault("enum.timeout", defaults.Enum.Timeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges viper cannot express.
func (c *Config) Validate() error {
	if c.Enum.Limit < 1 {
		return fmt.Errorf("%w: enum.limit must be ≥ 1, got %d", ErrInvalidConfig, c.Enum.Limit)
	}
	if c.Enum.Timeout < 0 {
		return fmt.Errorf("%w: enum.timeout must be ≥ 0, got %s", ErrInvalidConfig, c.Enum.Timeout)
	}
	if c.Log.Level == "" {
		return fmt.Errorf("%w: log.level is empty", ErrInvalidConfig)
	}

	return nil
}
