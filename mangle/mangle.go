/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mangle turns token paths into identifiers for target languages.
// Every strategy is deterministic and pure.
package mangle

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/tokensmith/token"
)

// Strategy converts a token path into an identifier.
type Strategy interface {
	Mangle(path token.Path) string
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(token.Path) string

// Mangle calls f.
func (f StrategyFunc) Mangle(path token.Path) string { return f(path) }

var (
	// Pascal joins capitalized words: bg.brand-accent → BgBrandAccent.
	Pascal Strategy = StrategyFunc(func(p token.Path) string {
		return identifier(ToPascalCase(pathWords(p)))
	})

	// Camel is Pascal with a lower-case first word: bgBrandAccent.
	Camel Strategy = StrategyFunc(func(p token.Path) string {
		return identifier(ToCamelCase(pathWords(p)))
	})

	// Snake joins lower-case words with underscores: bg_brand_accent.
	Snake Strategy = StrategyFunc(func(p token.Path) string {
		return identifier(joinLower(pathWords(p), "_"))
	})

	// ScreamingSnake joins upper-case words with underscores:
	// BG_BRAND_ACCENT.
	ScreamingSnake Strategy = StrategyFunc(func(p token.Path) string {
		return identifier(joinUpper(pathWords(p), "_"))
	})

	// Kebab joins lower-case words with hyphens: bg-brand-accent.
	Kebab Strategy = StrategyFunc(func(p token.Path) string {
		return joinLower(pathWords(p), "-")
	})

	// Dotted keeps the path as written: bg.brand-accent.
	Dotted Strategy = StrategyFunc(func(p token.Path) string {
		return p.String()
	})
)

var strategies = map[string]Strategy{
	"pascal":          Pascal,
	"camel":           Camel,
	"snake":           Snake,
	"screaming-snake": ScreamingSnake,
	"kebab":           Kebab,
	"dotted":          Dotted,
}

// StrategyNames returns the names accepted by Lookup, sorted.
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the built-in strategy with the given name. Common
// spellings such as "PascalCase" and "SCREAMING_SNAKE" are accepted.
func Lookup(name string) (Strategy, error) {
	key := strings.ToLower(strings.ReplaceAll(name, "_", "-"))
	key = strings.TrimSuffix(strings.TrimSuffix(key, "-case"), "case")
	if s, ok := strategies[key]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("unknown naming strategy %q (valid: %s)", name, strings.Join(StrategyNames(), ", "))
}

// Prefixed mangles the path with Prefix's segments prepended, so that the
// prefix follows the strategy's casing.
type Prefixed struct {
	Prefix   token.Path
	Strategy Strategy
}

// Mangle implements Strategy.
func (p Prefixed) Mangle(path token.Path) string {
	if len(p.Prefix) == 0 {
		return p.Strategy.Mangle(path)
	}
	return p.Strategy.Mangle(p.Prefix.Join(path...))
}

// WithPrefix wraps s in Prefixed when prefix is non-empty. The prefix is
// split on dots.
func WithPrefix(s Strategy, prefix string) Strategy {
	if prefix == "" {
		return s
	}
	return Prefixed{Prefix: token.ParsePath(prefix), Strategy: s}
}
