/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import (
	"slices"

	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/token"
)

// RootTokenName is the reserved 2025.10 name for a group's own value.
const RootTokenName = "$root"

// IsRootToken checks if a token name represents a group's own value. A
// root token takes the group's path.
func IsRootToken(name string, version schema.Version, groupMarkers []string) bool {
	switch version {
	case schema.V2025_10:
		return name == RootTokenName
	case schema.Draft, schema.StyleDictionary:
		return slices.Contains(groupMarkers, name)
	default:
		return false
	}
}

// TrimRootSegment drops a trailing root marker from a reference target so
// that {color.accent.$root} and {color.accent} name the same token.
func TrimRootSegment(target token.Path, version schema.Version, groupMarkers []string) token.Path {
	if len(target) > 1 && IsRootToken(target[len(target)-1], version, groupMarkers) {
		return target[:len(target)-1]
	}
	return target
}
