// Package config loads sigpad settings from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/sigpad"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Pen    PenConfig    `toml:"pen"`
	Output OutputConfig `toml:"output"`
}

// PenConfig maps pad options. Unset keys keep the library defaults.
type PenConfig struct {
	MinWidth   *float64 `toml:"min-width"`
	MaxWidth   *float64 `toml:"max-width"`
	DotSize    *float64 `toml:"dot-size"`
	Weight     *float64 `toml:"velocity-filter-weight"`
	Color      *string  `toml:"color"`
	Background *string  `toml:"background"`
}

// OutputConfig maps rendering settings of the command-line tool.
type OutputConfig struct {
	Width   *int    `toml:"width"`
	Height  *int    `toml:"height"`
	Format  *string `toml:"format"`
	Backend *string `toml:"backend"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		sigpad.Logger().Warn("config: unknown keys ignored", "path", path, "keys", fmt.Sprint(undecoded))
	}
	return cfg, nil
}

// Options converts the pen settings to pad options. Colors are parsed with
// sigpad.ParseColor; an unparsable color is an error.
func (c PenConfig) Options() ([]sigpad.Option, error) {
	var opts []sigpad.Option
	if c.MinWidth != nil {
		opts = append(opts, sigpad.WithMinWidth(*c.MinWidth))
	}
	if c.MaxWidth != nil {
		opts = append(opts, sigpad.WithMaxWidth(*c.MaxWidth))
	}
	if c.DotSize != nil {
		opts = append(opts, sigpad.WithDotSize(sigpad.FixedDotSize(*c.DotSize)))
	}
	if c.Weight != nil {
		opts = append(opts, sigpad.WithVelocityFilterWeight(*c.Weight))
	}
	if c.Color != nil {
		col, err := sigpad.ParseColor(*c.Color)
		if err != nil {
			return nil, fmt.Errorf("pen color: %w", err)
		}
		opts = append(opts, sigpad.WithPenColor(col))
	}
	if c.Background != nil {
		col, err := sigpad.ParseColor(*c.Background)
		if err != nil {
			return nil, fmt.Errorf("background color: %w", err)
		}
		opts = append(opts, sigpad.WithBackgroundColor(col))
	}
	return opts, nil
}
