/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports the tokensmith build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X bennypowers.dev/tokensmith/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// Get returns the version string: the ldflags version, the module
// version from build info, a tag-commit pair, or "dev".
func Get() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "(devel)" && v != "" {
			return v
		}
	}

	if GitTag == "unknown" || GitCommit == "unknown" {
		return "dev"
	}

	v := GitTag
	short := GitCommit
	if len(short) > 7 {
		short = short[:7]
	}
	if short != "" && !strings.HasSuffix(GitTag, short) {
		v += "-" + short
	}
	if GitDirty == "dirty" {
		v += "-dirty"
	}
	return v
}

// UserAgent identifies tokensmith when fetching remote sources.
func UserAgent() string {
	return "tokensmith/" + Get()
}

// Full returns the version with its commit, when known.
func Full() string {
	if GitCommit != "unknown" {
		return fmt.Sprintf("%s (commit: %s)", Get(), GitCommit)
	}
	return Get()
}

// Info returns detailed build information.
func Info() map[string]string {
	return map[string]string{
		"version":   Get(),
		"gitCommit": GitCommit,
		"gitTag":    GitTag,
		"buildTime": BuildTime,
		"gitDirty":  GitDirty,
		"goVersion": runtime.Version(),
		"platform":  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
