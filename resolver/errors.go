/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"strings"

	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/token"
)

// UnresolvedReferenceError reports a reference whose target does not
// exist.
type UnresolvedReferenceError struct {
	// Path is the token holding the reference.
	Path token.Path
	// Target is the missing path it names.
	Target token.Path
}

func (e *UnresolvedReferenceError) Error() string {
	return schema.ErrUnresolvedReference.Error() + ": " + e.Path.String() + " -> " + e.Target.String()
}

// Is matches schema.ErrUnresolvedReference.
func (e *UnresolvedReferenceError) Is(target error) bool {
	return target == schema.ErrUnresolvedReference
}

// CyclicReferenceError reports a reference cycle. Cycle lists every path
// on the cycle with the first path repeated at the end, so a token that
// references itself yields [A, A].
type CyclicReferenceError struct {
	Cycle []token.Path
}

func (e *CyclicReferenceError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, p := range e.Cycle {
		parts[i] = p.String()
	}
	return schema.ErrCircularReference.Error() + ": " + strings.Join(parts, " -> ")
}

// Is matches schema.ErrCircularReference.
func (e *CyclicReferenceError) Is(target error) bool {
	return target == schema.ErrCircularReference
}
