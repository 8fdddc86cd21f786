/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/load"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tokensmith"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json", ".toml"}

// Load searches for .config/tokensmith.{yaml,yml,json,toml} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem fs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}
		return LoadFile(filesystem, configPath)
	}
	return nil, nil
}

// LoadFile reads a config file, choosing the decoder by extension.
func LoadFile(filesystem fs.FileSystem, path string) (*Config, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem fs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// FetchTimeout parses Fetch.Timeout, defaulting to load.DefaultTimeout.
func (c *Config) FetchTimeout() (time.Duration, error) {
	if c.Fetch.Timeout == "" {
		return load.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil {
		return 0, fmt.Errorf("fetch.timeout: %w", err)
	}
	return d, nil
}
