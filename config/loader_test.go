/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"testing"
	"time"

	"bennypowers.dev/tokensmith/internal/mapfs"
	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.SchemaVersion() != schema.StyleDictionary {
		t.Errorf("expected Style Dictionary schema, got %v", cfg.SchemaVersion())
	}
	if len(cfg.Sources) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(cfg.Sources))
	}
	if cfg.Sources[1].Mount != "theme.light" {
		t.Errorf("expected mount theme.light, got %q", cfg.Sources[1].Mount)
	}
	if got := cfg.Brands["postnl"]; len(got) != 1 || got[0].Path != "tokens/brand/postnl.json" {
		t.Errorf("expected string source form for postnl, got %+v", got)
	}
	if len(cfg.Modes) != 2 || cfg.Modes[0] != "light" {
		t.Errorf("unexpected modes %v", cfg.Modes)
	}
	if len(cfg.Outputs) != 3 || cfg.Outputs[1].Prefix != "ds" {
		t.Errorf("unexpected outputs %+v", cfg.Outputs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_JSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(cfg.Sources))
	}
	if cfg.Sources[0].Path != "tokens/*.json" {
		t.Errorf("expected string source, got %+v", cfg.Sources[0])
	}
	if cfg.Sources[1].Mount != "acme" {
		t.Errorf("expected object source with mount, got %+v", cfg.Sources[1])
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/toml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Sources) != 2 || cfg.Sources[0].Mount != "globals" {
		t.Errorf("unexpected sources %+v", cfg.Sources)
	}
	if len(cfg.Brands["acme"]) != 1 {
		t.Errorf("expected one acme source, got %+v", cfg.Brands)
	}
	timeout, err := cfg.FetchTimeout()
	if err != nil || timeout != 2*time.Second {
		t.Errorf("FetchTimeout() = %v, %v", timeout, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := Load(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
	if LoadOrDefault(mapfs.New(), "/project") == nil {
		t.Error("LoadOrDefault must never return nil")
	}
}

func TestLoad_Priority(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/.config/tokensmith.json", `{"modes": ["json"]}`, 0644)
	mfs.AddFile("/p/.config/tokensmith.yaml", `modes: [yaml]`, 0644)

	cfg, err := Load(mfs, "/p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Modes[0] != "yaml" {
		t.Errorf("expected yaml to win, got %v", cfg.Modes)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/bad.yaml", "sources: [", 0644)
	mfs.AddFile("/p/config.ini", "x=1", 0644)

	for _, path := range []string{"/p/bad.yaml", "/p/config.ini", "/p/missing.json"} {
		if _, err := LoadFile(mfs, path); err == nil {
			t.Errorf("LoadFile(%s): expected error", path)
		}
	}
}

func TestConfig_SchemaVersion_Invalid(t *testing.T) {
	cfg := &Config{Schema: "invalid"}
	if cfg.SchemaVersion() != schema.Unknown {
		t.Errorf("expected Unknown for invalid schema, got %v", cfg.SchemaVersion())
	}
	if cfg.Validate() == nil {
		t.Error("expected Validate to reject an unknown schema")
	}
}
