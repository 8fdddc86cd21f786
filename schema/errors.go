/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// Sentinel errors shared by every stage. Typed stage errors match these
// through errors.Is.
var (
	// ErrUnknownVersion indicates an unrecognized schema version.
	ErrUnknownVersion = errors.New("unknown schema version")

	// ErrMixedSchemas indicates one source mixes conventions from
	// different schema versions.
	ErrMixedSchemas = errors.New("mixed schema versions detected")

	// ErrInvalidToken indicates a token value could not be parsed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingValue indicates a token object has no value field.
	ErrMissingValue = errors.New("token missing $value")

	// ErrInvalidReference indicates a reference is malformed.
	ErrInvalidReference = errors.New("invalid token reference")

	// ErrCircularReference indicates a reference cycle.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrUnresolvedReference indicates a reference to a missing token.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrTypeMismatch indicates a resolved value does not fit its category.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNameCollision indicates two paths mangle to one identifier.
	ErrNameCollision = errors.New("identifier collision")
)
