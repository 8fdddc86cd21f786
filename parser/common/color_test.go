/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensmith/parser/common"
	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/token"
)

func channels(c token.Color) string {
	return fmt.Sprintf("%.3f %.3f %.3f %.3f", c.R, c.G, c.B, c.A)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "hex", input: "#0f1e80", expected: "0.059 0.118 0.502 1.000"},
		{name: "uppercase hex", input: "#0F1E80", expected: "0.059 0.118 0.502 1.000"},
		{name: "hex with alpha", input: "#00000080", expected: "0.000 0.000 0.000 0.502"},
		{name: "rgb", input: "rgb(255, 0, 0)", expected: "1.000 0.000 0.000 1.000"},
		{name: "rgba", input: "rgba(0, 0, 255, 0.5)", expected: "0.000 0.000 1.000 0.500"},
		{name: "named", input: "white", expected: "1.000 1.000 1.000 1.000"},
		{name: "garbage", input: "not-a-color", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := common.ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, schema.ErrInvalidToken))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, channels(got))
		})
	}
}

func TestLooksLikeColor(t *testing.T) {
	assert.True(t, common.LooksLikeColor("#fff"))
	assert.True(t, common.LooksLikeColor(" RGB(0,0,0)"))
	assert.True(t, common.LooksLikeColor("oklch(0.5 0.1 200)"))
	assert.False(t, common.LooksLikeColor("white"))
	assert.False(t, common.LooksLikeColor("Inter"))
}

func TestCheckChannels(t *testing.T) {
	assert.NoError(t, common.CheckChannels(token.Color{R: 1, G: 0, B: 0.5, A: 1}))
	assert.Error(t, common.CheckChannels(token.Color{R: 1.2, A: 1}))
	assert.Error(t, common.CheckChannels(token.Color{R: -0.1, A: 1}))
}

func TestStructuredColor_ToColor(t *testing.T) {
	half := 0.5

	tests := []struct {
		name     string
		color    common.StructuredColor
		expected string
		wantErr  bool
	}{
		{
			name:     "srgb",
			color:    common.StructuredColor{ColorSpace: "srgb", Components: []any{0.059, 0.118, 0.502}},
			expected: "0.059 0.118 0.502 1.000",
		},
		{
			name:     "srgb with alpha and none",
			color:    common.StructuredColor{ColorSpace: "srgb", Components: []any{1.0, "none", 0}, Alpha: &half},
			expected: "1.000 0.000 0.000 0.500",
		},
		{
			name:     "hsl red",
			color:    common.StructuredColor{ColorSpace: "hsl", Components: []any{0.0, 100.0, 50.0}},
			expected: "1.000 0.000 0.000 1.000",
		},
		{
			name:     "hwb white",
			color:    common.StructuredColor{ColorSpace: "hwb", Components: []any{0.0, 100.0, 0.0}},
			expected: "1.000 1.000 1.000 1.000",
		},
		{
			name:     "display-p3 uses hex fallback",
			color:    common.StructuredColor{ColorSpace: "display-p3", Components: []any{1.0, 0.0, 0.0}, Hex: "#ff0000"},
			expected: "1.000 0.000 0.000 1.000",
		},
		{
			name:    "display-p3 without hex",
			color:   common.StructuredColor{ColorSpace: "display-p3", Components: []any{1.0, 0.0, 0.0}},
			wantErr: true,
		},
		{
			name:    "srgb out of range",
			color:   common.StructuredColor{ColorSpace: "srgb", Components: []any{1.5, 0.0, 0.0}},
			wantErr: true,
		},
		{
			name:    "unknown space",
			color:   common.StructuredColor{ColorSpace: "cmyk", Components: []any{0.0, 0.0, 0.0}},
			wantErr: true,
		},
		{
			name:    "bad component keyword",
			color:   common.StructuredColor{ColorSpace: "srgb", Components: []any{"auto", 0.0, 0.0}},
			wantErr: true,
		},
		{
			name:    "too few components",
			color:   common.StructuredColor{ColorSpace: "srgb", Components: []any{0.0, 0.0}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.color.ToColor()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, channels(got))
		})
	}
}

func TestStructuredColor_OklchStaysInGamut(t *testing.T) {
	c, err := common.StructuredColor{ColorSpace: "oklch", Components: []any{0.9, 0.4, 30.0}}.ToColor()
	require.NoError(t, err)
	assert.NoError(t, common.CheckChannels(c))
}
