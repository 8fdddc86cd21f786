/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

var (
	// curlyBracePattern matches {token.path} references.
	curlyBracePattern = regexp.MustCompile(`\{([^{}]+)\}`)

	// wholeCurlyBracePattern matches a value that is exactly one reference.
	wholeCurlyBracePattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

	// jsonPointerPattern matches JSON pointer format: #/path/to/token
	jsonPointerPattern = regexp.MustCompile(`^#/(.+)$`)
)

// ParseCurlyBraceRef returns the target of a value that consists of a
// single curly brace reference, such as "{color.primary}".
func ParseCurlyBraceRef(value string) (Path, bool) {
	m := wholeCurlyBracePattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return nil, false
	}
	return ParsePath(strings.TrimSpace(m[1])), true
}

// ParseJSONPointerRef returns the target of a JSON pointer reference such
// as "#/color/primary".
func ParseJSONPointerRef(ref string) (Path, bool) {
	m := jsonPointerPattern.FindStringSubmatch(ref)
	if m == nil {
		return nil, false
	}
	parts := strings.Split(m[1], "/")
	// RFC 6901: ~1 must be decoded before ~0
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		parts[i] = part
	}
	return Path(parts), true
}

// ContainsRef reports whether value mentions a curly brace reference
// anywhere, e.g. "calc({spacing.sm} * 2)".
func ContainsRef(value string) bool {
	return curlyBracePattern.MatchString(value)
}

// ExtractAllRefs returns every curly brace reference target in value.
func ExtractAllRefs(value string) []Path {
	matches := curlyBracePattern.FindAllStringSubmatch(value, -1)
	refs := make([]Path, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, ParsePath(strings.TrimSpace(m[1])))
	}
	return refs
}
