// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/trim21/errgo"
)

type Run struct {
	GraphPath string `toml:"graph"`
	LogLevel  string `toml:"log-level"`
	Source    uint32 `toml:"source"`
}

type Config struct {
	Run Run `toml:"run"`
}

// LoadFromFile reads a TOML config. A missing file yields the defaults.
func LoadFromFile(path string) (Config, error) {
	var cfg = Config{
		Run: Run{LogLevel: "error"},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return Config{}, errgo.Wrap(err, "failed to read config file")
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errgo.Wrap(err, "failed to parse config file")
	}

	return cfg, nil
}
