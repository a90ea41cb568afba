// Package config loads uuidv9 command settings from defaults, an optional YAML file,
// UUIDV9_* environment variables and command-line flags, in increasing priority.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Lzww0608/uuidv9"
	"github.com/Lzww0608/uuidv9/internal/log"
)

const envPrefix = "UUIDV9"

type Config struct {
	Generate GenerateConfig `mapstructure:"generate"`
	Validate ValidateConfig `mapstructure:"validate"`
	Log      log.Config     `mapstructure:"log"`
}

type GenerateConfig struct {
	Prefix    string `mapstructure:"prefix"`
	Timestamp bool   `mapstructure:"timestamp"`
	// Time, when set, replaces the current time with an explicit date or epoch.
	Time     string `mapstructure:"time"`
	Checksum bool   `mapstructure:"checksum"`
	Version  bool   `mapstructure:"version"`
	Legacy   bool   `mapstructure:"legacy"`
	Count    int    `mapstructure:"count"`
}

type ValidateConfig struct {
	Checksum bool `mapstructure:"checksum"`
	Version  bool `mapstructure:"version"`
}

// Options converts the settings into a generation config.
func (c GenerateConfig) Options() uuidv9.Config {
	cfg := uuidv9.Config{
		Prefix:   c.Prefix,
		Checksum: c.Checksum,
		Version:  c.Version,
		Legacy:   c.Legacy,
	}
	switch {
	case c.Time != "":
		cfg.Timestamp = uuidv9.TimestampAt(c.Time)
	case !c.Timestamp:
		cfg.Timestamp = uuidv9.NoTimestamp
	}
	return cfg
}

// Options converts the settings into validation options.
func (c ValidateConfig) Options() uuidv9.ValidateOptions {
	return uuidv9.ValidateOptions{Checksum: c.Checksum, Version: c.Version}
}

// flag name -> config key
var (
	commonFlags = map[string]string{
		"log-level":  "log.level",
		"log-pretty": "log.pretty",
	}
	generateFlags = map[string]string{
		"prefix":    "generate.prefix",
		"timestamp": "generate.timestamp",
		"time":      "generate.time",
		"checksum":  "generate.checksum",
		"version":   "generate.version",
		"legacy":    "generate.legacy",
		"count":     "generate.count",
	}
	validateFlags = map[string]string{
		"checksum": "validate.checksum",
		"version":  "validate.version",
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("generate.prefix", "")
	v.SetDefault("generate.timestamp", true)
	v.SetDefault("generate.time", "")
	v.SetDefault("generate.checksum", false)
	v.SetDefault("generate.version", false)
	v.SetDefault("generate.legacy", false)
	v.SetDefault("generate.count", 1)
	v.SetDefault("validate.checksum", false)
	v.SetDefault("validate.version", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

// CommonFlags registers the flags shared by every subcommand.
func CommonFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error, off)")
	fs.Bool("log-pretty", false, "human-readable log output")
}

// GenerateFlags registers the generate subcommand flags.
func GenerateFlags(fs *pflag.FlagSet) {
	CommonFlags(fs)
	fs.String("prefix", "", "up to 8 hex digits placed at the start of each id")
	fs.Bool("timestamp", true, "embed the current time (--timestamp=false for fully random ids)")
	fs.String("time", "", "embed this date or epoch instead of the current time")
	fs.Bool("checksum", false, "append a CRC-8 checksum")
	fs.Bool("version", false, "insert the v9 version marker")
	fs.Bool("legacy", false, "mark ids as v1/v4 compatible")
	fs.IntP("count", "n", 1, "number of ids to generate")
}

// ValidateFlags registers the validate subcommand flags.
func ValidateFlags(fs *pflag.FlagSet) {
	CommonFlags(fs)
	fs.Bool("checksum", false, "require a valid checksum")
	fs.Bool("version", false, "require a version marker")
}

// Load resolves the configuration for a subcommand whose flags have been parsed.
// command selects which flags are bound: "generate" or "validate".
func Load(command string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, fs); err != nil {
		return nil, err
	}

	bindings := commonFlags
	switch command {
	case "generate":
		bindings = merge(commonFlags, generateFlags)
	case "validate":
		bindings = merge(commonFlags, validateFlags)
	}
	for name, key := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Generate.Count < 1 {
		return nil, fmt.Errorf("generate.count must be positive, got %d", cfg.Generate.Count)
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, fs *pflag.FlagSet) error {
	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("uuidv9")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/uuidv9")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // no file, rely on env vars and flags
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func merge(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
