/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package normalize assigns each resolved token a category and checks that
// its value has the kind the category needs.
package normalize

import (
	"fmt"
	"iter"
	"slices"

	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/resolver"
	"bennypowers.dev/tokensmith/token"
)

// Policy decides what happens to a token whose kind does not fit.
type Policy int

const (
	// FailClosed rejects the whole set on any mismatch.
	FailClosed Policy = iota

	// WarnNonColor logs mismatches outside the color category and keeps
	// the token with its actual kind. Color mismatches still fail.
	WarnNonColor
)

// ParsePolicy parses a policy name as written in config.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "fail-closed", "strict":
		return FailClosed, nil
	case "warn-non-color", "warn":
		return WarnNonColor, nil
	default:
		return FailClosed, fmt.Errorf("unknown policy %q (valid: fail-closed, warn-non-color)", s)
	}
}

func (p Policy) String() string {
	if p == WarnNonColor {
		return "warn-non-color"
	}
	return "fail-closed"
}

// Options configures normalization.
type Options struct {
	// Rules are tried in order; the first match wins.
	Rules  []Rule
	Policy Policy
}

// Typed is a resolved token with its category.
type Typed struct {
	token.Resolved
	Category Category
	Kind     token.Kind
}

// Set is the frozen output of normalization. It is never modified after
// Normalize returns and is safe for concurrent readers.
type Set struct {
	tokens []Typed
}

// Tokens yields every token in store order.
func (s *Set) Tokens() iter.Seq[Typed] {
	return slices.Values(s.tokens)
}

// Len returns the number of tokens.
func (s *Set) Len() int {
	return len(s.tokens)
}

// At returns the i-th token.
func (s *Set) At(i int) Typed {
	return s.tokens[i]
}

// Paths returns the paths of every token in order.
func (s *Set) Paths() []token.Path {
	out := make([]token.Path, len(s.tokens))
	for i, t := range s.tokens {
		out[i] = t.Path
	}
	return out
}

// Normalize categorizes every resolved token. Category comes from the first
// matching rule, then the declared $type, then the literal's kind.
func Normalize(res *resolver.Result, opts Options) (*Set, error) {
	for _, r := range opts.Rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	set := &Set{tokens: make([]Typed, 0, res.Len())}
	var mismatches []*TypeMismatchError

	for r := range res.Tokens() {
		cat := Categorize(r.Path, r.Type, r.Value.Kind(), opts.Rules)
		actual := r.Value.Kind()

		if expected := cat.Kind(); expected != actual {
			m := &TypeMismatchError{Path: r.Path, Category: cat, Expected: expected, Actual: actual}
			if opts.Policy == FailClosed || cat == Color {
				mismatches = append(mismatches, m)
				continue
			}
			logger.Warn("%s; keeping it as %s", m, actual)
			cat = CategoryForKind(actual)
		}

		set.tokens = append(set.tokens, Typed{Resolved: r, Category: cat, Kind: actual})
	}

	if len(mismatches) > 0 {
		return nil, &MismatchesError{Mismatches: mismatches}
	}
	return set, nil
}

// Categorize returns the category for one token.
func Categorize(path token.Path, typ string, kind token.Kind, rules []Rule) Category {
	for _, r := range rules {
		if r.Matches(path, typ) {
			return r.Category
		}
	}
	if c, ok := CategoryForType(typ); ok {
		return c
	}
	return CategoryForKind(kind)
}
