// Package config resolves runtime settings from defaults, an optional YAML
// file, .env files, AUROREXAM_* environment variables and command-line
// flags, in rising priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. AUROREXAM_SEED.
const EnvPrefix = "AUROREXAM"

// Keys understood by Load.
const (
	KeySeed        = "seed"
	KeyPlain       = "plain"
	KeyTrace       = "trace"
	KeyWorld       = "world"
	KeyLogLevel    = "log_level"
	KeyLogFile     = "log_file"
	KeyHistorySize = "history_size"
)

// Config is the resolved runtime configuration.
type Config struct {
	Seed        int64  `mapstructure:"seed"`         // 0 seeds from the clock
	Plain       bool   `mapstructure:"plain"`        // line-oriented I/O instead of the TUI
	Trace       bool   `mapstructure:"trace"`        // start with trace output on
	World       string `mapstructure:"world"`        // Lua world file or directory; empty for the built-in map
	LogLevel    string `mapstructure:"log_level"`    // zerolog level name
	LogFile     string `mapstructure:"log_file"`     // empty logs to stderr
	HistorySize int    `mapstructure:"history_size"` // TUI command history length
}

// New returns a viper instance with defaults and environment binding in
// place. Callers bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyPlain, false)
	v.SetDefault(KeyTrace, false)
	v.SetDefault(KeyWorld, "")
	v.SetDefault(KeyLogLevel, "disabled")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyHistorySize, 100)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves the configuration. configFile names an explicit YAML file;
// when empty, $HOME/.aurorexam.yaml is read if present. envFiles default
// to ".env"; missing ones are skipped and never override variables that
// are already set.
func Load(v *viper.Viper, configFile string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".aurorexam")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values that cannot be acted on.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s %q: %w", KeyLogLevel, c.LogLevel, err)
	}
	if c.HistorySize < 0 {
		return fmt.Errorf("invalid %s %d: must not be negative", KeyHistorySize, c.HistorySize)
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Disabled
	}
	return lvl
}
