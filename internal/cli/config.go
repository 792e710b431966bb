package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/printworks/rainbowpress/pkg/errors"
)

// Config holds the optional TOML defaults file. Every field mirrors a
// generate flag; values from the file apply only where the flag was not
// given on the command line.
//
// Example (~/.config/rainbowpress/config.toml):
//
//	[fingerprint]
//	width = 0.4
//	height = 0.6
//	spacing = 100.0
//	min_inner = 5
//
//	[page]
//	paper = "Letter (US)"
//	orientation = "portrait"
//	margin = 1.5
//	auto = false
type Config struct {
	Fingerprint FingerprintConfig `toml:"fingerprint"`
	Page        PageConfig        `toml:"page"`
}

// FingerprintConfig configures the element dimensions and allocation
// parameters. Zero values mean "not set".
type FingerprintConfig struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Spacing  float64 `toml:"spacing"`
	MinInner int     `toml:"min_inner"`
}

// PageConfig configures the target page. Zero values mean "not set";
// Margin uses a pointer since 0 is a meaningful margin.
type PageConfig struct {
	Paper       string   `toml:"paper"`
	Orientation string   `toml:"orientation"`
	Margin      *float64 `toml:"margin"`
	Auto        bool     `toml:"auto"`
	Width       float64  `toml:"width"`
	Height      float64  `toml:"height"`
}

// defaultConfigPath returns the conventional config location, or empty
// if the user config directory cannot be determined.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rainbowpress", "config.toml")
}

// loadConfig reads the TOML config at path. When path is empty the
// default location is tried; a missing file is not an error and yields
// a nil config.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config %s", path)
	}
	return &cfg, nil
}
