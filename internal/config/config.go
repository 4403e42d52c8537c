// Package config loads numtasks settings from defaults, an optional YAML
// file and NUMTASKS_* environment variables using viper.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FileName is the config file name searched for in the working directory.
	FileName = "numtasks"
	// EnvPrefix prefixes environment overrides, e.g. NUMTASKS_RUN_WORKERS.
	EnvPrefix = "NUMTASKS"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete numtasks configuration.
type Config struct {
	Log LogConfig `mapstructure:"log" yaml:"log"`
	Run RunConfig `mapstructure:"run" yaml:"run"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file"`
}

// RunConfig controls which exercises run and how results are reported.
type RunConfig struct {
	Workers    int      `mapstructure:"workers" yaml:"workers"`
	Tasks      []int    `mapstructure:"tasks" yaml:"tasks"`
	Categories []string `mapstructure:"categories" yaml:"categories"`
	Output     string   `mapstructure:"output" yaml:"output"`
	// SaveDir, when set, receives every result array as a .npy file.
	SaveDir    string   `mapstructure:"save_dir" yaml:"save_dir"`
	// Parallel lets the CPU backend split large element-wise loops across goroutines.
	Parallel   bool     `mapstructure:"parallel" yaml:"parallel"`
}

// Default returns the built-in configuration: all exercises, one at a time,
// text report, info level text logs.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Run: RunConfig{
			Workers:  1,
			Output:   "text",
			Parallel: true,
		},
	}
}

// New returns a viper instance holding the defaults and wired to the
// environment. Callers may bind command line flags to it before Load.
func New() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("run.workers", d.Run.Workers)
	v.SetDefault("run.tasks", []int{})
	v.SetDefault("run.categories", []string{})
	v.SetDefault("run.output", d.Run.Output)
	v.SetDefault("run.save_dir", d.Run.SaveDir)
	v.SetDefault("run.parallel", d.Run.Parallel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path into v, or numtasks.yaml from the working directory when
// path is empty, and returns the validated result. A missing default file
// is not an error; a missing explicit file is.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges that the decoder cannot.
func (c *Config) Validate() error {
	if c.Run.Workers < 1 {
		return fmt.Errorf("%w: run.workers must be at least 1, got %d", ErrInvalidConfig, c.Run.Workers)
	}
	if !slices.Contains([]string{"text", "json", "yaml"}, strings.ToLower(c.Run.Output)) {
		return fmt.Errorf("%w: run.output %q must be text, json or yaml", ErrInvalidConfig, c.Run.Output)
	}
	if !slices.Contains([]string{"text", "json", "logfmt"}, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("%w: log.format %q must be text, json or logfmt", ErrInvalidConfig, c.Log.Format)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error", "fatal"}, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log.level %q is not a known level", ErrInvalidConfig, c.Log.Level)
	}
	for _, id := range c.Run.Tasks {
		if id < 1 {
			return fmt.Errorf("%w: run.tasks contains %d, task IDs start at 1", ErrInvalidConfig, id)
		}
	}
	return nil
}
