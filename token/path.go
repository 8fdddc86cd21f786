/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"slices"
	"strings"
)

// Path is the ordered list of segments naming a token, e.g.
// ["bg", "brand", "primary"]. Segments are compared exactly: paths that
// differ only in case or segmentation are distinct tokens.
type Path []string

// ParsePath splits a dot-separated path. An empty string yields a nil Path.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return Path(strings.Split(s, "."))
}

// String returns the dot-separated form of the path.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Key returns a lossless map key for the path. Unlike String, it keeps
// ["a.b"] and ["a", "b"] apart.
func (p Path) Key() string {
	return strings.Join(p, "\x00")
}

// Equal reports whether both paths have the same segments.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// HasPrefix reports whether prefix is a leading sub-path of p.
func (p Path) HasPrefix(prefix Path) bool {
	return len(prefix) <= len(p) && slices.Equal(p[:len(prefix)], prefix)
}

// Join returns a new path made of p followed by segments.
func (p Path) Join(segments ...string) Path {
	out := make(Path, 0, len(p)+len(segments))
	out = append(out, p...)
	return append(out, segments...)
}

// Clone returns a copy of p that shares no storage with it.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}
