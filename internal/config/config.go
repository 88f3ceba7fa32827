// Package config loads benchgraph settings with viper: built-in defaults, an
// optional config file, then BENCHGRAPH_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading the environment,
// e.g. BENCHGRAPH_DATA_ROOT.
const EnvPrefix = "BENCHGRAPH"

// Config is the validated runtime configuration.
type Config struct {
	// DataRoot is the directory holding benchmark instances.
	DataRoot string `mapstructure:"data_root" validate:"required"`
	// LogLevel is a zerolog level name.
	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error off disabled"`
	// LogFormat selects console or json output.
	LogFormat string `mapstructure:"log_format" validate:"oneof=console json"`
	// DeclaredNodes pre-allocates the declared node count while decoding.
	DeclaredNodes bool `mapstructure:"declared_nodes"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		DataRoot:  ".",
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads configuration. path may be empty, in which case only defaults
// and the environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Defaults()
	v.SetDefault("data_root", def.DataRoot)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("declared_nodes", def.DeclaredNodes)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}

	return nil
}
