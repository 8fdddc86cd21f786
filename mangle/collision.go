/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mangle

import (
	"fmt"

	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/token"
)

// NameCollisionError reports two distinct paths that mangle to the same
// identifier.
type NameCollisionError struct {
	First      token.Path
	Second     token.Path
	Identifier string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("%s: %s and %s both become %q", schema.ErrNameCollision, e.First, e.Second, e.Identifier)
}

// Is matches schema.ErrNameCollision.
func (e *NameCollisionError) Is(target error) bool {
	return target == schema.ErrNameCollision
}

// Names mangles every path in order. It fails on the first identifier that
// two distinct paths share, or on a path that mangles to nothing.
func Names(paths []token.Path, s Strategy) ([]string, error) {
	names := make([]string, len(paths))
	seen := make(map[string]int, len(paths))
	for i, p := range paths {
		name := s.Mangle(p)
		if name == "" {
			return nil, fmt.Errorf("%s: mangles to an empty identifier", p)
		}
		if j, ok := seen[name]; ok && !paths[j].Equal(p) {
			return nil, &NameCollisionError{First: paths[j], Second: p, Identifier: name}
		}
		seen[name] = i
		names[i] = name
	}
	return names, nil
}
