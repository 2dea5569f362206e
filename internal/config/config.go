// Package config loads the bn command configuration.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

type LogConfig struct {
	Path  string `toml:"log_path"`
	File  string `toml:"log_file"`
	Level string `toml:"log_level"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Group  bool   `toml:"group"`
}

type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "warn",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load decodes the TOML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (config *Config, err error) {
	defer Error.WrapP(&err)

	config = Default()
	if path == "" {
		return config, nil
	}

	if _, err = os.Stat(path); err != nil {
		return nil, err
	}

	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, Error.New("unknown keys: %v", undecoded)
	}

	switch config.Output.Format {
	case "text", "json", "table":
	default:
		return nil, Error.New("unknown output format: %q", config.Output.Format)
	}

	return config, nil
}
