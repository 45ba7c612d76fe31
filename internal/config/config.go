// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads gralstat's configuration.
//
// Defaults are compiled in. A configuration file, in any format
// viper understands, and GRALSTAT_* environment variables override
// them.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

//go:embed default.json
var defaultConfig []byte

type Config struct {
	Logger Logger `mapstructure:"logger"`
	Plot   Plot   `mapstructure:"plot"`

	// Aliases names a properties file of extra MIME type
	// aliases for the format registry.
	Aliases string `mapstructure:"aliases"`
}

type Logger struct {
	Level            string `mapstructure:"level"`
	Format           string `mapstructure:"format"`
	DisableTimestamp bool   `mapstructure:"disable_timestamp"`
}

// Plot holds the defaults for image output. Width and Height are
// in inches.
type Plot struct {
	Width   float64 `mapstructure:"width"`
	Height  float64 `mapstructure:"height"`
	XColumn int     `mapstructure:"x_column"`
	YColumn int     `mapstructure:"y_column"`
}

// Load returns the default configuration overridden by the file at
// path, if path is non-empty, and by the environment.
func Load(path string) (Config, error) {
	var cfg Config
	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(defaultConfig)); err != nil {
		return cfg, fmt.Errorf("default config: %w", err)
	}
	if path != "" {
		// The file's own extension picks its format.
		fv := viper.New()
		fv.SetConfigFile(path)
		if err := fv.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := v.MergeConfigMap(fv.AllSettings()); err != nil {
			return cfg, fmt.Errorf("merging %s: %w", path, err)
		}
	}
	v.SetEnvPrefix("GRALSTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
