/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensmith/normalize"
	"bennypowers.dev/tokensmith/resolver"
	"bennypowers.dev/tokensmith/token"
)

// SampleStore returns a small store covering every literal kind, an alias
// and a translucent color. Golden artifacts under testdata/golden are
// generated from it.
func SampleStore() *token.Store {
	s := token.NewStore()
	put := func(path string, def token.Definition, typ string) {
		s.PutEntry(token.Entry{Path: token.ParsePath(path), Definition: def, Type: typ})
	}
	put("bg.brand.primary", token.Color{R: 15.0 / 255, G: 30.0 / 255, B: 128.0 / 255, A: 1}, "color")
	put("bg.button.primary", token.Reference{Target: token.ParsePath("bg.brand.primary")}, "")
	put("bg.overlay.scrim", token.Color{A: 0.5}, "color")
	put("settings.radius.xs", token.Number{Value: 4}, "dimension")
	put("typography.letter-spacing.wide", token.Number{Value: 0.25}, "")
	put("typography.font-weight.bold", token.Number{Value: 700}, "fontWeight")
	put("settings.fonts.font-family", token.String{Value: "Inter"}, "fontFamily")
	return s
}

// Normalized resolves and normalizes store with default options.
func Normalized(t *testing.T, store *token.Store) *normalize.Set {
	t.Helper()
	res, err := resolver.Resolve(store, resolver.Options{})
	require.NoError(t, err)
	set, err := normalize.Normalize(res, normalize.Options{})
	require.NoError(t, err)
	return set
}
