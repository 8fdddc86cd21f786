/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mangle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensmith/mangle"
	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/token"
)

func TestStrategies(t *testing.T) {
	tests := []struct {
		path      string
		pascal    string
		camel     string
		snake     string
		screaming string
		kebab     string
	}{
		{"bg.brand.accent", "BgBrandAccent", "bgBrandAccent", "bg_brand_accent", "BG_BRAND_ACCENT", "bg-brand-accent"},
		{"numbers.screen-size.width-2xl", "NumbersScreenSizeWidth2xl", "numbersScreenSizeWidth2xl", "numbers_screen_size_width_2xl", "NUMBERS_SCREEN_SIZE_WIDTH_2XL", "numbers-screen-size-width-2xl"},
		{"bg.inverse.tint-70", "BgInverseTint70", "bgInverseTint70", "bg_inverse_tint_70", "BG_INVERSE_TINT_70", "bg-inverse-tint-70"},
		{"settings.logic.buttonprimaryvariant", "SettingsLogicButtonprimaryvariant", "settingsLogicButtonprimaryvariant", "settings_logic_buttonprimaryvariant", "SETTINGS_LOGIC_BUTTONPRIMARYVARIANT", "settings-logic-buttonprimaryvariant"},
		{"typography.fontSize.heading1", "TypographyFontSizeHeading1", "typographyFontSizeHeading1", "typography_font_size_heading1", "TYPOGRAPHY_FONT_SIZE_HEADING1", "typography-font-size-heading1"},
		{"numbers.border-radius.radius0", "NumbersBorderRadiusRadius0", "numbersBorderRadiusRadius0", "numbers_border_radius_radius0", "NUMBERS_BORDER_RADIUS_RADIUS0", "numbers-border-radius-radius0"},
		{"space.2xl", "Space2xl", "space2xl", "space_2xl", "SPACE_2XL", "space-2xl"},
		{"2xl.gap", "_2xlGap", "_2xlGap", "_2xl_gap", "_2XL_GAP", "2xl-gap"},
		{"Bg.Primary", "BgPrimary", "bgPrimary", "bg_primary", "BG_PRIMARY", "bg-primary"},
		{"icon.size@2x", "IconSize2x", "iconSize2x", "icon_size_2x", "ICON_SIZE_2X", "icon-size-2x"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := token.ParsePath(tt.path)
			assert.Equal(t, tt.pascal, mangle.Pascal.Mangle(p))
			assert.Equal(t, tt.camel, mangle.Camel.Mangle(p))
			assert.Equal(t, tt.snake, mangle.Snake.Mangle(p))
			assert.Equal(t, tt.screaming, mangle.ScreamingSnake.Mangle(p))
			assert.Equal(t, tt.kebab, mangle.Kebab.Mangle(p))
		})
	}
}

func TestDeterminism(t *testing.T) {
	p := token.ParsePath("bg.feedback.alert.primary")
	first := mangle.Pascal.Mangle(p)
	for range 100 {
		assert.Equal(t, first, mangle.Pascal.Mangle(p))
	}
}

func TestSplitIntoWords(t *testing.T) {
	assert.Equal(t, []string{"font", "Size"}, mangle.SplitIntoWords("fontSize"))
	assert.Equal(t, []string{"width", "2xl"}, mangle.SplitIntoWords("width-2xl"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, mangle.SplitIntoWords("a_b.c d"))
	assert.Empty(t, mangle.SplitIntoWords("--"))
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"pascal", "PascalCase", "SCREAMING_SNAKE", "kebab-case", "camel"} {
		_, err := mangle.Lookup(name)
		assert.NoError(t, err, name)
	}
	_, err := mangle.Lookup("hungarian")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid: camel, dotted, kebab, pascal, screaming-snake, snake")
}

func TestStrategyNames(t *testing.T) {
	names := mangle.StrategyNames()
	assert.Equal(t, []string{"camel", "dotted", "kebab", "pascal", "screaming-snake", "snake"}, names)
	for _, name := range names {
		_, err := mangle.Lookup(name)
		assert.NoError(t, err, name)
	}
}

func TestPrefixed(t *testing.T) {
	s := mangle.WithPrefix(mangle.Pascal, "ds.tokens")
	assert.Equal(t, "DsTokensBgPrimary", s.Mangle(token.ParsePath("bg.primary")))

	k := mangle.WithPrefix(mangle.Kebab, "rh")
	assert.Equal(t, "rh-bg-primary", k.Mangle(token.ParsePath("bg.primary")))

	_, wrapped := mangle.WithPrefix(mangle.Pascal, "").(mangle.Prefixed)
	assert.False(t, wrapped)
}

func TestNames_Collision(t *testing.T) {
	paths := []token.Path{
		token.ParsePath("bg.primary"),
		token.ParsePath("fg.primary"),
		token.ParsePath("bg-primary"),
	}

	names, err := mangle.Names(paths, mangle.Pascal)
	require.Error(t, err)
	assert.Nil(t, names)

	var collision *mangle.NameCollisionError
	require.True(t, errors.As(err, &collision))
	assert.Equal(t, "bg.primary", collision.First.String())
	assert.Equal(t, "bg-primary", collision.Second.String())
	assert.Equal(t, "BgPrimary", collision.Identifier)
	assert.True(t, errors.Is(err, schema.ErrNameCollision))

	// the dotted strategy keeps both apart
	names, err = mangle.Names(paths, mangle.Dotted)
	require.NoError(t, err)
	assert.Equal(t, []string{"bg.primary", "fg.primary", "bg-primary"}, names)
}

func TestNames_CaseCollision(t *testing.T) {
	_, err := mangle.Names([]token.Path{token.ParsePath("Bg.primary"), token.ParsePath("bg.primary")}, mangle.Pascal)
	var collision *mangle.NameCollisionError
	assert.True(t, errors.As(err, &collision))
}

func TestNames_Empty(t *testing.T) {
	_, err := mangle.Names([]token.Path{token.ParsePath("--")}, mangle.Pascal)
	assert.Error(t, err)
}
