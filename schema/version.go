/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema identifies token source conventions and holds the
// sentinel errors shared across the pipeline.
package schema

import "fmt"

// Version represents a token source convention.
type Version int

const (
	// Unknown represents an undetected or unrecognized version.
	Unknown Version = iota

	// Draft is the DTCG editor's draft: $value, $type, {curly.refs}.
	Draft

	// V2025_10 is the stable DTCG 2025.10 format, which adds $ref,
	// $extends and structured color objects.
	V2025_10

	// StyleDictionary is the legacy value/type format without the $
	// prefix.
	StyleDictionary
)

const (
	draftURL    = "https://www.designtokens.org/schemas/draft.json"
	v2025_10URL = "https://www.designtokens.org/schemas/2025.10.json"
)

// String returns the string representation of the version.
func (v Version) String() string {
	switch v {
	case Draft:
		return "draft"
	case V2025_10:
		return "v2025.10"
	case StyleDictionary:
		return "style-dictionary"
	default:
		return "unknown"
	}
}

// URL returns the JSON Schema URL for this version, if it has one.
func (v Version) URL() string {
	switch v {
	case Draft:
		return draftURL
	case V2025_10:
		return v2025_10URL
	default:
		return ""
	}
}

// ValueKey returns the object key holding a token's value.
func (v Version) ValueKey() string {
	if v == StyleDictionary {
		return "value"
	}
	return "$value"
}

// TypeKey returns the object key holding a token's type.
func (v Version) TypeKey() string {
	if v == StyleDictionary {
		return "type"
	}
	return "$type"
}

// DescriptionKey returns the object key holding a token's description.
func (v Version) DescriptionKey() string {
	if v == StyleDictionary {
		return "comment"
	}
	return "$description"
}

// FromURL returns the version named by a JSON Schema URL.
func FromURL(url string) (Version, error) {
	switch url {
	case draftURL:
		return Draft, nil
	case v2025_10URL:
		return V2025_10, nil
	default:
		return Unknown, fmt.Errorf("%w: unrecognized schema URL: %s", ErrUnknownVersion, url)
	}
}

// FromString parses a version name as written in config or on the CLI.
func FromString(s string) (Version, error) {
	switch s {
	case "draft":
		return Draft, nil
	case "v2025.10", "v2025_10", "2025.10", "2025", "v2025":
		return V2025_10, nil
	case "style-dictionary", "sd", "legacy":
		return StyleDictionary, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownVersion, s)
	}
}
