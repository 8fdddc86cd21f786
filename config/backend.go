/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"
	"maps"
	"slices"

	"bennypowers.dev/tokensmith/emit"
	"bennypowers.dev/tokensmith/emit/backend"
	"bennypowers.dev/tokensmith/mangle"
	"bennypowers.dev/tokensmith/normalize"
	"bennypowers.dev/tokensmith/schema"
)

// BackendSpec defines a custom backend. Empty fields are taken from the
// built-in named by Extends, if any.
type BackendSpec struct {
	Extends     string            `yaml:"extends" json:"extends" toml:"extends"`
	FileName    string            `yaml:"fileName" json:"fileName" toml:"fileName"`
	Naming      string            `yaml:"naming" json:"naming" toml:"naming"`
	Header      string            `yaml:"header" json:"header" toml:"header"`
	Footer      string            `yaml:"footer" json:"footer" toml:"footer"`
	Declaration string            `yaml:"declaration" json:"declaration" toml:"declaration"`
	Color       string            `yaml:"color" json:"color" toml:"color"`
	Quoting     string            `yaml:"quoting" json:"quoting" toml:"quoting"`
	Precision   int               `yaml:"precision" json:"precision" toml:"precision"`
	Units       map[string]string `yaml:"units" json:"units" toml:"units"`
}

// BackendNames returns built-in and custom backend names, sorted.
func (c *Config) BackendNames() []string {
	names := backend.Names()
	for name := range c.Backends {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Backend returns the named backend. Custom definitions shadow built-ins.
func (c *Config) Backend(name string) (emit.Backend, error) {
	spec, ok := c.Backends[name]
	if !ok {
		return backend.Builtin(name)
	}

	var b emit.Backend
	if spec.Extends != "" {
		base, err := backend.Builtin(spec.Extends)
		if err != nil {
			return emit.Backend{}, fmt.Errorf("backend %q: %w", name, err)
		}
		b = base
	}
	b.Name = name

	if spec.Naming != "" {
		s, err := mangle.Lookup(spec.Naming)
		if err != nil {
			return emit.Backend{}, fmt.Errorf("backend %q: %w", name, err)
		}
		b.Naming = s
	}
	if spec.Quoting != "" {
		q, err := emit.ParseQuoting(spec.Quoting)
		if err != nil {
			return emit.Backend{}, fmt.Errorf("backend %q: %w", name, err)
		}
		b.Quoting = q
	}
	for dst, src := range map[*string]string{
		&b.FileName:    spec.FileName,
		&b.Header:      spec.Header,
		&b.Footer:      spec.Footer,
		&b.Declaration: spec.Declaration,
		&b.Color:       spec.Color,
	} {
		if src != "" {
			*dst = src
		}
	}
	if spec.Precision != 0 {
		b.Number.Precision = spec.Precision
	}
	if len(spec.Units) > 0 {
		units := maps.Clone(b.Number.Units)
		if units == nil {
			units = make(map[normalize.Category]string, len(spec.Units))
		}
		for cat, unit := range spec.Units {
			category, err := normalize.ParseCategory(cat)
			if err != nil {
				return emit.Backend{}, fmt.Errorf("backend %q: units: %w", name, err)
			}
			units[category] = unit
		}
		b.Number.Units = units
	}

	if _, err := emit.Compile(b); err != nil {
		return emit.Backend{}, err
	}
	return b, nil
}

// Target returns the backend for an output with its prefix applied.
func (c *Config) Target(o Output) (emit.Backend, error) {
	b, err := c.Backend(o.Backend)
	if err != nil {
		return emit.Backend{}, err
	}
	b.Naming = mangle.WithPrefix(b.Naming, o.Prefix)
	return b, nil
}

// Validate checks everything that can be checked without loading tokens.
func (c *Config) Validate() error {
	if c.Schema != "" {
		if _, err := schema.FromString(c.Schema); err != nil {
			return err
		}
	}
	if _, err := c.NormalizeOptions(); err != nil {
		return err
	}
	for i, o := range c.Outputs {
		if _, err := c.Target(o); err != nil {
			return fmt.Errorf("outputs[%d]: %w", i, err)
		}
	}
	for _, s := range c.allSources() {
		for from := range s.Rewrites {
			if from == "" {
				return fmt.Errorf("source %q: empty rewrite prefix", s.Path)
			}
		}
	}
	if _, err := c.FetchTimeout(); err != nil {
		return err
	}
	return nil
}

func (c *Config) allSources() []Source {
	all := slices.Clone(c.Sources)
	for _, brand := range c.BrandNames() {
		all = append(all, c.Brands[brand]...)
	}
	return all
}
