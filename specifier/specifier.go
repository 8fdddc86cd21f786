/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier classifies token source strings: local files, globs,
// http(s) URLs, and npm or jsr package files.
package specifier

import (
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a local file path.
	KindLocal Kind = iota
	// KindGlob is a doublestar pattern over local files.
	KindGlob
	// KindURL is an http or https URL.
	KindURL
	// KindNPM is an npm package specifier.
	KindNPM
	// KindJSR is a jsr package specifier.
	KindJSR
)

func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindGlob:
		return "glob"
	case KindURL:
		return "url"
	case KindNPM:
		return "npm"
	case KindJSR:
		return "jsr"
	default:
		return "unknown"
	}
}

// Specifier is a parsed token source.
type Specifier struct {
	Kind Kind

	// Package is the package name for npm and jsr specifiers, e.g.
	// "@scope/pkg".
	Package string

	// File is the path: within the package for npm and jsr, the file or
	// pattern otherwise.
	File string

	// Raw is the original string.
	Raw string
}

var (
	// npmPattern matches npm:@scope/pkg/path, npm:pkg/path, or bare npm:pkg
	npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/@][^/]*)(/.*)?$`)

	// jsrPattern matches jsr:@scope/pkg/path; jsr packages are always scoped
	jsrPattern = regexp.MustCompile(`^jsr:(@[^/]+/[^/]+)(/.*)?$`)
)

// Parse classifies spec. Anything that is not a URL or a package
// specifier is a local path, or a glob when it contains glob
// metacharacters.
func Parse(spec string) Specifier {
	switch {
	case strings.HasPrefix(spec, "https://"), strings.HasPrefix(spec, "http://"):
		return Specifier{Kind: KindURL, File: spec, Raw: spec}
	case strings.HasPrefix(spec, "npm:"):
		if m := npmPattern.FindStringSubmatch(spec); m != nil {
			return Specifier{Kind: KindNPM, Package: m[1], File: strings.TrimPrefix(m[2], "/"), Raw: spec}
		}
	case strings.HasPrefix(spec, "jsr:"):
		if m := jsrPattern.FindStringSubmatch(spec); m != nil {
			return Specifier{Kind: KindJSR, Package: m[1], File: strings.TrimPrefix(m[2], "/"), Raw: spec}
		}
	}
	if IsGlob(spec) {
		return Specifier{Kind: KindGlob, File: spec, Raw: spec}
	}
	return Specifier{Kind: KindLocal, File: spec, Raw: spec}
}

// IsGlob reports whether s contains glob metacharacters.
func IsGlob(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// IsPackage reports whether the specifier names a package file.
func (s Specifier) IsPackage() bool {
	return s.Kind == KindNPM || s.Kind == KindJSR
}

// IsRemote reports whether the source is read over the network.
func (s Specifier) IsRemote() bool {
	return s.Kind == KindURL
}

// CDNURL returns the URL a package file is served at: unpkg for npm,
// esm.sh for jsr. It reports false for other kinds and for bare package
// names.
func (s Specifier) CDNURL() (string, bool) {
	if s.File == "" {
		return "", false
	}
	switch s.Kind {
	case KindNPM:
		return "https://unpkg.com/" + s.Package + "/" + s.File, true
	case KindJSR:
		return "https://esm.sh/jsr/" + s.Package + "/" + s.File, true
	}
	return "", false
}
