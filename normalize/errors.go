/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package normalize

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/token"
)

// TypeMismatchError reports a resolved value whose kind does not fit its
// category.
type TypeMismatchError struct {
	Path     token.Path
	Category Category
	Expected token.Kind
	Actual   token.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s: category %s expects a %s, got a %s",
		schema.ErrTypeMismatch, e.Path, e.Category, e.Expected, e.Actual)
}

// Is matches schema.ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == schema.ErrTypeMismatch
}

// MismatchesError collects every mismatch found in one pass.
type MismatchesError struct {
	Mismatches []*TypeMismatchError
}

func (e *MismatchesError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d type mismatch(es)", len(e.Mismatches))
	for _, m := range e.Mismatches {
		b.WriteString("\n  ")
		b.WriteString(m.Error())
	}
	return b.String()
}

// Unwrap exposes the individual mismatches to errors.Is and errors.As.
func (e *MismatchesError) Unwrap() []error {
	errs := make([]error, len(e.Mismatches))
	for i, m := range e.Mismatches {
		errs[i] = m
	}
	return errs
}
