/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensmith/parser/common"
	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/token"
)

func TestSplitDimension(t *testing.T) {
	tests := []struct {
		input string
		value float64
		unit  string
		ok    bool
	}{
		{"16px", 16, "px", true},
		{"4", 4, "", true},
		{"-0.25", -0.25, "", true},
		{"1.5rem", 1.5, "rem", true},
		{".5em", 0.5, "em", true},
		{"50%", 50, "%", true},
		{"auto", 0, "", false},
		{"calc(4px * 2)", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, u, ok := common.SplitDimension(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.value, v, 1e-9)
				assert.Equal(t, tt.unit, u)
			}
		})
	}
}

func TestParseDimension(t *testing.T) {
	v, ok := common.ParseDimension(16, "px")
	assert.True(t, ok)
	assert.Equal(t, 16.0, v)

	_, ok = common.ParseDimension(1.5, "rem")
	assert.False(t, ok)
}

func TestParseDuration(t *testing.T) {
	ms, err := common.ParseDuration(0.2, "s")
	require.NoError(t, err)
	assert.InDelta(t, 200, ms, 1e-9)

	_, err = common.ParseDuration(1, "min")
	assert.ErrorIs(t, err, schema.ErrInvalidToken)
}

func TestParseNumber(t *testing.T) {
	for _, s := range []string{"4", " -0.25 ", "1e3"} {
		_, ok := common.ParseNumber(s)
		assert.True(t, ok, s)
		assert.False(t, common.IsNonFinite(s), s)
	}
	for _, s := range []string{"NaN", "Inf", "+Infinity", "-inf"} {
		_, ok := common.ParseNumber(s)
		assert.False(t, ok, s)
		assert.True(t, common.IsNonFinite(s), s)
	}
	_, ok := common.ParseNumber("4px")
	assert.False(t, ok)
	assert.False(t, common.IsNonFinite("4px"))
}

func TestParseFontWeight(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"700", 700, false},
		{"bold", 700, false},
		{"Semi Bold", 600, false},
		{"semibold", 600, false},
		{"extrabold", 800, false},
		{"regular", 400, false},
		{"0", 0, true},
		{"chunky", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := common.ParseFontWeight(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTrimRootSegment(t *testing.T) {
	got := common.TrimRootSegment(token.ParsePath("color.accent.$root"), schema.V2025_10, nil)
	assert.Equal(t, "color.accent", got.String())

	got = common.TrimRootSegment(token.ParsePath("color.accent._"), schema.Draft, []string{"_"})
	assert.Equal(t, "color.accent", got.String())

	got = common.TrimRootSegment(token.ParsePath("color.accent.$root"), schema.Draft, nil)
	assert.Equal(t, "color.accent.$root", got.String())
}
