// Package config provides configuration helpers and TOML parsing.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Search SearchConfig `toml:"search"`
}

// SearchConfig maps search-related settings.
type SearchConfig struct {
	Lang      *string `toml:"lang"`
	Locale    *string `toml:"locale"`
	Length    *int    `toml:"length"`
	Cap       *int    `toml:"cap"`
	Source    *string `toml:"source"`
	LookupURL *string `toml:"lookup-url"`
	LogLevel  *string `toml:"log-level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, errors.Wrap(err, "failed to stat config")
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, errors.Wrap(err, "failed to decode config")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, errors.Newf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
