// SPDX-License-Identifier: MIT

// Package config loads run settings from defaults, an optional config file,
// VALVENET_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. VALVENET_MINUTES.
const EnvPrefix = "VALVENET"

// Defaults.
const (
	DefaultMinutes   = 30
	DefaultStart     = "AA"
	DefaultWorkers   = 1
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds every tunable of a run.
type Config struct {
	// Minutes is the time budget.
	Minutes int `mapstructure:"minutes" validate:"gte=0"`

	// Start is the label of the valve the search begins at.
	Start string `mapstructure:"start" validate:"required"`

	// Workers bounds the goroutines used by the search.
	Workers int `mapstructure:"workers" validate:"gte=1,lte=256"`

	// Verify validates the distance matrix invariants before searching.
	Verify bool `mapstructure:"verify"`

	// Plan prints the opening plan after the result.
	Plan bool `mapstructure:"plan"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// Flags registers the command-line overrides on fs. Flag names match the
// config keys (log.level → --log-level).
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (yaml, toml or json)")
	fs.Int("minutes", DefaultMinutes, "time budget in minutes")
	fs.String("start", DefaultStart, "label of the start valve")
	fs.Int("workers", DefaultWorkers, "goroutines used by the search")
	fs.Bool("verify", false, "validate distance matrix invariants before searching")
	fs.Bool("plan", false, "print the opening plan")
	fs.String("log-level", DefaultLogLevel, "log level (trace, debug, info, warn, error, disabled)")
	fs.String("log-format", DefaultLogFormat, "log format (console, json)")
}

// Load resolves the configuration. fs may be nil; when set, flags the user
// actually passed override file and environment values, and --config names
// the config file.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("minutes", DefaultMinutes)
	v.SetDefault("start", DefaultStart)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("verify", false)
	v.SetDefault("plan", false)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, flag := range map[string]string{
			"minutes":    "minutes",
			"start":      "start",
			"workers":    "workers",
			"verify":     "verify",
			"plan":       "plan",
			"log.level":  "log-level",
			"log.format": "log-format",
		} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", flag, err)
				}
			}
		}

		if path, err := fs.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
