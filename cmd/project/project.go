/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project opens the configuration the CLI commands share and
// loads the token stores it describes. Flag, environment and config file
// values are merged through viper.
package project

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"bennypowers.dev/tokensmith/config"
	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/load"
	"bennypowers.dev/tokensmith/schema"
)

// Viper keys bound to the root command's persistent flags.
const (
	KeyConfig = "config"
	KeyRoot   = "root"
	KeySchema = "schema"
	KeyBrand  = "brand"
	KeyMode   = "mode"
	KeyFetch  = "fetch"
)

// Project is an opened configuration rooted at a directory.
type Project struct {
	FS     fs.FileSystem
	Root   string
	Config *config.Config

	// ConfigPath is the file the config was read from, or empty when
	// defaults are in use.
	ConfigPath string

	// Schema is the forced schema version, or schema.Unknown to detect
	// per file.
	Schema schema.Version

	fetcher load.Fetcher
}

// Open reads the config named by the config key, or searches Root for
// one. A missing config yields defaults; a broken one is an error.
func Open(filesystem fs.FileSystem) (*Project, error) {
	p := &Project{FS: filesystem, Root: viper.GetString(KeyRoot)}
	if p.Root == "" {
		p.Root = "."
	}

	if path := viper.GetString(KeyConfig); path != "" {
		cfg, err := config.LoadFile(filesystem, path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		p.Config, p.ConfigPath = cfg, path
	} else {
		cfg, err := config.Load(filesystem, p.Root)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		if cfg == nil {
			logger.Debug("no config found in %s, using defaults", p.Root)
			cfg = config.Default()
		} else {
			p.ConfigPath = p.findConfig()
		}
		p.Config = cfg
	}

	if err := p.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	p.Schema = p.Config.SchemaVersion()
	if s := viper.GetString(KeySchema); s != "" {
		v, err := schema.FromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid schema version: %s", s)
		}
		p.Schema = v
	}

	if p.Config.Fetch.Enabled || viper.GetBool(KeyFetch) {
		cached, err := load.NewCachingFetcher(load.NewHTTPFetcher(load.DefaultMaxSize), load.DefaultCacheSize)
		if err != nil {
			return nil, err
		}
		p.fetcher = cached
	}
	return p, nil
}

func (p *Project) findConfig() string {
	for _, ext := range []string{".yaml", ".yml", ".json", ".toml"} {
		path := filepath.Join(p.Root, config.ConfigDir, config.ConfigFileName+ext)
		if p.FS.Exists(path) {
			return path
		}
	}
	return ""
}

// Runs returns the configured brand and mode runs, narrowed by the brand
// and mode keys. When files is non-empty they replace the configured
// sources as a single unnamed brand.
func (p *Project) Runs(files []string) ([]config.Run, error) {
	cfg := p.Config
	if len(files) > 0 {
		override := *cfg
		override.Sources = make([]config.Source, len(files))
		for i, f := range files {
			override.Sources[i] = config.Source{Path: f}
		}
		override.Brands = nil
		cfg = &override
	}

	runs, err := cfg.Runs(viper.GetString(KeyBrand))
	if err != nil {
		return nil, err
	}

	mode := viper.GetString(KeyMode)
	if mode == "" {
		return runs, nil
	}
	if len(cfg.Modes) > 0 && !slices.Contains(cfg.Modes, mode) {
		return nil, fmt.Errorf("unknown mode %q (configured: %s)", mode, strings.Join(cfg.Modes, ", "))
	}
	var selected []config.Run
	for _, r := range runs {
		if r.Mode == mode || len(cfg.Modes) == 0 {
			r.Mode = mode
			selected = append(selected, r)
		}
	}
	return selected, nil
}

// Load reads the layers of run into a store.
func (p *Project) Load(ctx context.Context, run config.Run) (*load.Result, error) {
	timeout, err := p.Config.FetchTimeout()
	if err != nil {
		return nil, err
	}
	return load.Load(ctx, run.Layers, load.Options{
		Root:          p.Root,
		FS:            p.FS,
		SchemaVersion: p.Schema,
		GroupMarkers:  p.Config.GroupMarkers,
		Fetcher:       p.fetcher,
		FetchTimeout:  timeout,
	})
}

// Label names a run for log messages.
func Label(run config.Run) string {
	var parts []string
	if run.Brand != "" {
		parts = append(parts, "brand "+run.Brand)
	}
	if run.Mode != "" {
		parts = append(parts, "mode "+run.Mode)
	}
	if len(parts) == 0 {
		return "tokens"
	}
	return strings.Join(parts, ", ")
}
