/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensmith/lint"
	"bennypowers.dev/tokensmith/token"
)

func store(paths ...string) *token.Store {
	s := token.NewStore()
	for _, p := range paths {
		s.Put(token.ParsePath(p), token.Number{Value: 1})
	}
	return s
}

func TestCheck_FlagsLikelyTypos(t *testing.T) {
	s := store(
		"bg.overlay.tertiary",
		"text.tertiary",
		"border.tertiary",
		"bg.overlay.tertiarty",
		"bg.overlay.quaternary",
		"text.quaternary",
		"bg.overlay.quarternary",
		"bg.status.info",
		"text.status.info",
		"text.status.nfo",
		"typography.heading.size",
		"typography.headling.weight",
	)

	anomalies := lint.Check(s)
	require.Len(t, anomalies, 4)

	got := map[string]string{}
	for _, a := range anomalies {
		got[a.Segment] = a.Similar
	}
	assert.Equal(t, map[string]string{
		"tertiarty":   "tertiary",
		"quarternary": "quaternary",
		"nfo":         "info",
		"headling":    "heading",
	}, got)

	first := anomalies[0]
	assert.Equal(t, "tertiarty", first.Segment)
	assert.Equal(t, 1, first.Count)
	assert.Equal(t, 3, first.SimilarCount)
	assert.Equal(t, []token.Path{token.ParsePath("bg.overlay.tertiarty")}, first.Paths)
	assert.Contains(t, first.String(), `"tertiarty" looks like a misspelling of "tertiary"`)
	assert.False(t, first.Ambiguous)
}

func TestCheck_NumberedSteps(t *testing.T) {
	s := store(
		"typography.font-size.heading1",
		"typography.font-size.heading2",
		"typography.font-size.headling3",
		"typography.font-size.headling4",
		"typography.font-size.headling5",
		"typography.font-size.heading-1",
		"typography.font-size.headling-3",
	)

	anomalies := lint.Check(s)
	require.Len(t, anomalies, 1)
	a := anomalies[0]
	assert.Equal(t, "headling", a.Segment)
	assert.Equal(t, "heading", a.Similar)
	assert.Equal(t, 4, a.Count)
	assert.Equal(t, 3, a.SimilarCount)
	assert.True(t, a.Ambiguous, "4 against 3 does not say which spelling is wrong")
	assert.Equal(t,
		`"headling" and "heading" look like spellings of one word (4 vs 3 tokens), e.g. typography.font-size.headling3`,
		a.String())
}

func TestCheck_DominantSpellingWins(t *testing.T) {
	// The rarer spelling is flagged even when it appears first.
	s := store("fg.feedback.nfo", "fg.feedback.info", "bg.feedback.info")
	anomalies := lint.Check(s)
	require.Len(t, anomalies, 1)
	assert.Equal(t, "nfo", anomalies[0].Segment)
	assert.False(t, anomalies[0].Ambiguous)
}

func TestCheck_IgnoresLegitimateNeighbours(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
	}{
		{"comparatives", []string{"spacing.wide", "spacing.wide.x", "spacing.wider"}},
		{"short substitutions", []string{"color.red", "color.red.x", "unit.rem"}},
		{"size steps", []string{"size.xs", "size.sm", "size.xs.x"}},
		{"digits", []string{"width.2xl", "width.3xl", "width.2xl.x"}},
		{"numeric steps", []string{"gray.100", "gray.200", "grey.300"}},
		{"same stem", []string{"heading1.a", "heading2.a", "heading-3.a"}},
		{"case only", []string{"Primary.a", "primary.b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, lint.Check(store(tt.paths...)))
		})
	}
}

func TestCheck_CountsOncePerToken(t *testing.T) {
	// "colour.colour" uses the segment twice but counts once.
	s := store("colour.colour", "color.a", "color.b")
	anomalies := lint.Check(s)
	require.Len(t, anomalies, 1)
	assert.Equal(t, "colour", anomalies[0].Segment)
	assert.Equal(t, "color", anomalies[0].Similar)
	assert.Equal(t, 1, anomalies[0].Count)
}
