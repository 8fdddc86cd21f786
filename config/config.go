/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config describes a tokensmith project: where tokens come from,
// how they are categorized and which artifacts are generated.
package config

import (
	"cmp"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokensmith/load"
	"bennypowers.dev/tokensmith/normalize"
	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/token"
)

// Config represents the project configuration.
type Config struct {
	// Sources are loaded for every brand, in order.
	Sources []Source `yaml:"sources" json:"sources" toml:"sources"`

	// Brands adds per-brand sources after Sources. Each brand is generated
	// separately.
	Brands map[string][]Source `yaml:"brands" json:"brands" toml:"brands"`

	// Modes lists the values substituted for $mode in references, e.g.
	// light and dark. Each mode is generated separately.
	Modes []string `yaml:"modes" json:"modes" toml:"modes"`

	// Schema forces a specific schema version (optional).
	Schema string `yaml:"schema" json:"schema" toml:"schema"`

	// GroupMarkers are token names that can be both tokens and groups.
	GroupMarkers []string `yaml:"groupMarkers" json:"groupMarkers" toml:"groupMarkers"`

	// Categories are ordered rules assigning categories to tokens.
	Categories []CategoryRule `yaml:"categories" json:"categories" toml:"categories"`

	// Policy is "fail-closed" (default) or "warn-non-color".
	Policy string `yaml:"policy" json:"policy" toml:"policy"`

	// Outputs are the artifacts to generate.
	Outputs []Output `yaml:"outputs" json:"outputs" toml:"outputs"`

	// Backends defines custom backends by name.
	Backends map[string]BackendSpec `yaml:"backends" json:"backends" toml:"backends"`

	// Fetch configures remote sources.
	Fetch Fetch `yaml:"fetch" json:"fetch" toml:"fetch"`
}

// Source is a token source. It can be written as a plain string, or as an
// object with a mount point and reference rewrites. TOML only supports the
// object form.
type Source struct {
	// Path is a file, glob, URL, or npm:/jsr: package file.
	Path string `yaml:"path" json:"path" toml:"path"`

	// Mount is the dotted path the source's tokens are placed under.
	Mount string `yaml:"mount" json:"mount" toml:"mount"`

	// Rewrites maps a dotted reference prefix to its replacement.
	Rewrites map[string]string `yaml:"rewrites" json:"rewrites" toml:"rewrites"`

	// GroupMarkers overrides the global group markers for this source.
	GroupMarkers []string `yaml:"groupMarkers" json:"groupMarkers" toml:"groupMarkers"`
}

// UnmarshalYAML handles both string and object forms for Source.
func (s *Source) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Path = node.Value
		return nil
	}
	type rawSource Source
	return node.Decode((*rawSource)(s))
}

// UnmarshalJSON handles both string and object forms for Source.
func (s *Source) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		s.Path = path
		return nil
	}
	type rawSource Source
	return json.Unmarshal(data, (*rawSource)(s))
}

// Layer converts s to a load layer. Rewrites are ordered longest prefix
// first so that the most specific one applies.
func (s Source) Layer() load.Layer {
	l := load.Layer{Source: s.Path, GroupMarkers: s.GroupMarkers}
	if s.Mount != "" {
		l.Mount = token.ParsePath(s.Mount)
	}
	for _, from := range slices.SortedFunc(maps.Keys(s.Rewrites), func(a, b string) int {
		return cmp.Or(cmp.Compare(strings.Count(b, "."), strings.Count(a, ".")), strings.Compare(a, b))
	}) {
		l.Rewrites = append(l.Rewrites, load.Rewrite{
			From: token.ParsePath(from),
			To:   token.ParsePath(s.Rewrites[from]),
		})
	}
	return l
}

// CategoryRule is the configuration form of normalize.Rule.
type CategoryRule struct {
	Pattern  string `yaml:"pattern" json:"pattern" toml:"pattern"`
	Type     string `yaml:"type" json:"type" toml:"type"`
	Category string `yaml:"category" json:"category" toml:"category"`
}

// Output is one artifact to generate per brand and mode.
type Output struct {
	// Backend is a built-in or custom backend name.
	Backend string `yaml:"backend" json:"backend" toml:"backend"`

	// Path is the file to write. {brand}, {mode} and {backend} are
	// expanded; a trailing slash appends the backend's file name.
	Path string `yaml:"path" json:"path" toml:"path"`

	// Prefix is prepended to every token path before mangling.
	Prefix string `yaml:"prefix" json:"prefix" toml:"prefix"`
}

// Fetch configures network access for URL and package sources.
type Fetch struct {
	// Enabled allows network access. URL sources require it.
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// Timeout is a Go duration string, e.g. "10s".
	Timeout string `yaml:"timeout" json:"timeout" toml:"timeout"`
}

// Run is one generation: a brand, a mode and the layers that make up its
// store.
type Run struct {
	Brand  string
	Mode   string
	Layers []load.Layer
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// SchemaVersion returns the parsed schema version from the Schema field.
// Returns schema.Unknown if the field is empty or invalid.
func (c *Config) SchemaVersion() schema.Version {
	if c.Schema == "" {
		return schema.Unknown
	}
	v, err := schema.FromString(c.Schema)
	if err != nil {
		return schema.Unknown
	}
	return v
}

// BrandNames returns the configured brands, sorted.
func (c *Config) BrandNames() []string {
	return slices.Sorted(maps.Keys(c.Brands))
}

// Runs returns one run per brand and mode. Without brands there is one
// unnamed brand; without modes one unnamed mode. When only is non-empty,
// other brands are skipped.
func (c *Config) Runs(only string) ([]Run, error) {
	brands := c.BrandNames()
	if only != "" {
		if _, ok := c.Brands[only]; !ok {
			return nil, fmt.Errorf("unknown brand %q (configured: %s)", only, strings.Join(brands, ", "))
		}
		brands = []string{only}
	}
	if len(brands) == 0 {
		brands = []string{""}
	}
	modes := c.Modes
	if len(modes) == 0 {
		modes = []string{""}
	}

	var runs []Run
	for _, brand := range brands {
		layers := make([]load.Layer, 0, len(c.Sources)+len(c.Brands[brand]))
		for _, s := range c.Sources {
			layers = append(layers, s.Layer())
		}
		for _, s := range c.Brands[brand] {
			layers = append(layers, s.Layer())
		}
		if len(layers) == 0 {
			return nil, fmt.Errorf("no sources configured")
		}
		for _, mode := range modes {
			runs = append(runs, Run{Brand: brand, Mode: mode, Layers: layers})
		}
	}
	return runs, nil
}

// NormalizeOptions converts the categories and policy settings.
func (c *Config) NormalizeOptions() (normalize.Options, error) {
	policy, err := normalize.ParsePolicy(c.Policy)
	if err != nil {
		return normalize.Options{}, err
	}
	opts := normalize.Options{Policy: policy}
	for i, r := range c.Categories {
		cat, err := normalize.ParseCategory(r.Category)
		if err != nil {
			return normalize.Options{}, fmt.Errorf("categories[%d]: %w", i, err)
		}
		rule := normalize.Rule{Pattern: r.Pattern, Type: r.Type, Category: cat}
		if err := rule.Validate(); err != nil {
			return normalize.Options{}, fmt.Errorf("categories[%d]: %w", i, err)
		}
		opts.Rules = append(opts.Rules, rule)
	}
	return opts, nil
}

// OutputPath expands the placeholders in o.Path. fileName is used when
// the path is empty or ends with a slash.
func (o Output) OutputPath(brand, mode, fileName string) string {
	p := o.Path
	if p == "" || strings.HasSuffix(p, "/") {
		p += fileName
	}
	return strings.NewReplacer(
		"{brand}", brand,
		"{mode}", mode,
		"{backend}", o.Backend,
	).Replace(p)
}
