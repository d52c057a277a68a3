// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package config loads the settings of the recog command from a TOML file.
//
//  prompt = "> "
//  color  = true
//  debug  = false
//  format = "text"
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/golangee/recog/encoder"
)

// ErrUnknownFormat is returned by Validate for an output format which has no encoder.
var ErrUnknownFormat = errors.New("unknown output format")

// Config contains the settings of the command line tool.
type Config struct {
	// Prompt is printed before every line read in interactive mode.
	Prompt string `toml:"prompt"`
	// Color enables styled diagnostics on terminals.
	Color bool `toml:"color"`
	// Debug logs every committed token.
	Debug bool `toml:"debug"`
	// Format is one of encoder.Formats.
	Format string `toml:"format"`
}

// Default returns the settings used without a configuration file.
func Default() Config {
	return Config{
		Prompt: "> ",
		Color:  true,
		Debug:  false,
		Format: "text",
	}
}

// Load reads the file at path on top of the defaults. Keys missing in the file keep their
// default value.
func Load(path string) (Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	return Parse(string(buf))
}

// Parse decodes TOML content on top of the defaults.
func Parse(content string) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key '%s'", undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the settings can be used.
func (c Config) Validate() error {
	for _, f := range encoder.Formats {
		if f == c.Format {
			return nil
		}
	}

	return fmt.Errorf("%w: '%s'", ErrUnknownFormat, c.Format)
}
