// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/pcolor/base/iox/tomlx"
	"cogentcore.org/pcolor/base/iox/yamlx"
	"cogentcore.org/pcolor/colors/colormap"
)

// Config is the persistent view preference record of a color scale.
type Config struct {

	// Palette is the name of the color map.
	Palette string `toml:"palette" yaml:"palette" json:"palette"`

	// TwoSided reserves colors for negative values around a zero point.
	TwoSided bool `toml:"two_sided" yaml:"two_sided" json:"two_sided"`

	// LogShape is the pseudo-log shape in [0, 100]; 0 is nearly linear.
	LogShape float32 `toml:"log_shape" yaml:"log_shape" json:"log_shape"`
}

// DefaultConfig returns the default scale: two-sided [colormap.DefaultMap]
// with a linear shape.
func DefaultConfig() Config {
	return Config{Palette: colormap.DefaultMap, TwoSided: true}
}

// State returns the current configuration record.
func (cs *ColorScale) State() Config { return cs.cfg }

// SetState restores a configuration record.
func (cs *ColorScale) SetState(cfg Config) {
	cs.Configure(cfg.Palette, cfg.TwoSided)
	cs.SetShape(cfg.LogShape)
}

// OpenConfig reads a configuration record from a .toml, .yaml or .yml
// file. Fields not present in the file keep their default values.
func OpenConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(&cfg, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(&cfg, filename)
	default:
		err = fmt.Errorf("colorscale.OpenConfig: unsupported config extension %q", ext)
	}
	return cfg, err
}

// SaveConfig writes the configuration record to a .toml, .yaml or .yml file.
func SaveConfig(cfg Config, filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Save(&cfg, filename)
	case ".yaml", ".yml":
		return yamlx.Save(&cfg, filename)
	default:
		return fmt.Errorf("colorscale.SaveConfig: unsupported config extension %q", ext)
	}
}
