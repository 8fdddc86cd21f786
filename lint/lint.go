/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lint reports path segments that look like misspellings of
// another segment in the same store. Findings are advisory: token names
// are never changed.
package lint

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"bennypowers.dev/tokensmith/token"
)

const (
	// minLength skips short stems such as "xs" or "sm", which differ
	// from each other by one letter without being typos.
	minLength = 3

	// minSubstitutionLength is the shortest stem for which a single
	// replaced letter is suspicious ("red" and "rem" are both words).
	minSubstitutionLength = 5

	// dominance is how many times more often one spelling must occur
	// before the other is called its misspelling.
	dominance = 2
)

// Anomaly is a pair of stems one edit apart. Segments are compared by
// their alphabetic stem, so "headling3" and "headling-4" both count
// towards "headling".
type Anomaly struct {
	// Segment is the stem being reported, as first written.
	Segment string

	// Similar is the stem it resembles.
	Similar string

	// Count is how many tokens use Segment; SimilarCount how many use
	// Similar.
	Count, SimilarCount int

	// Ambiguous is set when neither spelling clearly dominates, so the
	// report cannot say which one is the typo.
	Ambiguous bool

	// Paths lists the tokens containing Segment, in store order.
	Paths []token.Path
}

func (a Anomaly) String() string {
	if a.Ambiguous {
		return fmt.Sprintf("%q and %q look like spellings of one word (%d vs %d tokens), e.g. %s",
			a.Segment, a.Similar, a.Count, a.SimilarCount, a.Paths[0])
	}
	return fmt.Sprintf("%q looks like a misspelling of %q (%d vs %d tokens), e.g. %s",
		a.Segment, a.Similar, a.Count, a.SimilarCount, a.Paths[0])
}

type stem struct {
	written string
	index   int
	count   int
	paths   []token.Path
}

// Check scans every path in store. Each pair is reported once: against
// the dominant spelling when there is one, otherwise on the stem seen
// later in store order.
func Check(store *token.Store) []Anomaly {
	var order []string
	stems := make(map[string]*stem)

	for e := range store.All() {
		seen := make(map[string]bool, len(e.Path))
		for _, s := range e.Path {
			written := stemOf(s)
			key := strings.ToLower(written)
			if seen[key] || !candidate(key) {
				continue
			}
			seen[key] = true
			st, ok := stems[key]
			if !ok {
				st = &stem{written: written, index: len(order)}
				stems[key] = st
				order = append(order, key)
			}
			st.count++
			st.paths = append(st.paths, e.Path)
		}
	}

	var anomalies []Anomaly
	for _, key := range order {
		st := stems[key]
		best, ambiguous := "", false
		for _, other := range order {
			if !similar(key, other) {
				continue
			}
			o := stems[other]
			var amb bool
			switch {
			case o.count >= dominance*st.count:
			case st.count >= dominance*o.count:
				continue
			case st.index > o.index:
				amb = true
			default:
				continue
			}
			if best == "" || (ambiguous && !amb) || (ambiguous == amb && o.count > stems[best].count) {
				best, ambiguous = other, amb
			}
		}
		if best == "" {
			continue
		}
		anomalies = append(anomalies, Anomaly{
			Segment:      st.written,
			Similar:      stems[best].written,
			Count:        st.count,
			SimilarCount: stems[best].count,
			Ambiguous:    ambiguous,
			Paths:        st.paths,
		})
	}
	return anomalies
}

// stemOf drops a trailing step number and its separator: "heading-3"
// and "heading3" both become "heading".
func stemOf(s string) string {
	trimmed := strings.TrimRightFunc(s, unicode.IsDigit)
	if trimmed == s {
		return s
	}
	return strings.TrimRight(trimmed, "-_")
}

// candidate reports whether a stem is worth comparing. Stems that still
// hold digits are scale steps like "2xl".
func candidate(s string) bool {
	if len([]rune(s)) < minLength {
		return false
	}
	for _, r := range s {
		if unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// similar reports whether two distinct stems are one edit apart without
// one simply extending the other.
func similar(a, b string) bool {
	if a == b {
		return false
	}
	if strings.HasPrefix(a, b) || strings.HasPrefix(b, a) {
		// wide, wider
		return false
	}
	if fuzzy.LevenshteinDistance(a, b) != 1 {
		return false
	}
	la, lb := len([]rune(a)), len([]rune(b))
	return la != lb || la >= minSubstitutionLength
}
