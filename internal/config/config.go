// Package config loads licensit settings from an optional YAML file and
// LICENSIT_* environment variables.
//
// Precedence, highest first:
//  1. --config flag
//  2. LICENSIT_CONFIG_FILE environment variable
//  3. $XDG_CONFIG_HOME/licensit/config.yaml (or ~/.config/licensit/config.yaml)
//
// Individual keys can be overridden with LICENSIT_<SECTION>_<KEY>, for example
// LICENSIT_LOGGING_LEVEL=debug or LICENSIT_OUTPUT_COLOR=never.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "LICENSIT"

// Color modes for output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all licensit settings.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Author  AuthorConfig  `mapstructure:"author"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	Color string `mapstructure:"color"`
}

// AuthorConfig controls author discovery.
type AuthorConfig struct {
	// GitConfigPaths are extra git config files consulted before the standard ones.
	GitConfigPaths []string `mapstructure:"git_config_paths"`
}

// configDirFunc is swapped in tests.
var configDirFunc = defaultConfigDir

func defaultConfigDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "licensit")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "licensit")
}

// DefaultConfigPath returns the config file location used when none is given.
func DefaultConfigPath() string {
	dir := configDirFunc()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("output.color", def.Output.Color)
	v.SetDefault("author.git_config_paths", []string{})
}

// Load reads settings. An explicit path must exist; the default location is optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := strings.TrimSpace(path)
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG_FILE"))
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", explicit, err)
		}
	} else if defaultPath := DefaultConfigPath(); defaultPath != "" {
		v.SetConfigFile(defaultPath)
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", defaultPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if _, err := os.Stat(v.ConfigFileUsed()); err == nil {
		cfg.Source = v.ConfigFileUsed()
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))

	paths := make([]string, 0, len(c.Author.GitConfigPaths))
	for _, p := range c.Author.GitConfigPaths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	c.Author.GitConfigPaths = paths
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color: invalid value %q (expected auto, always or never)", c.Output.Color)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: invalid value %q (expected console or json)", c.Logging.Format)
	}
	return nil
}
