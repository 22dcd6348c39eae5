// Package config loads venvx configuration. Built-in defaults are embedded
// in the binary; a user venvx.toml in the venvx config directory overrides
// them key by key.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/venvx/pkg/errors"
)

// Config holds user-tunable venvx settings
type Config struct {
	// Home overrides the root directory holding all environments
	Home string `koanf:"home" toml:"home"`

	// DefaultPipArgs are passed to pip on every install
	DefaultPipArgs []string `koanf:"default_pip_args" toml:"default_pip_args"`

	// UseEmoji controls emoji in user-facing warnings
	UseEmoji bool `koanf:"use_emoji" toml:"use_emoji"`
}

// Default returns the built-in configuration
func Default() Config {
	cfg, err := Load("")
	if err != nil {
		// The embedded defaults always parse; reaching here is a build
		// defect, not a runtime condition.
		panic(err)
	}
	return cfg
}

// DefaultTOML renders the built-in configuration as TOML
func DefaultTOML() (string, error) {
	out, err := gotoml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot render default config")
	}
	return string(out), nil
}

// Load reads configuration, layering the user file at configPath (if it
// exists) over the embedded defaults. An empty configPath loads defaults
// only.
func Load(configPath string) (Config, error) {
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. Layer the user config if present
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configPath)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return cfg, nil
}
