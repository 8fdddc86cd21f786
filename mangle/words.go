/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mangle

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lower = cases.Lower(language.Und)
	upper = cases.Upper(language.Und)
)

// SplitIntoWords splits a segment on hyphens, underscores, dots, spaces,
// and lower-to-upper camelCase boundaries. Any other character that cannot
// appear in an identifier also separates words. Digits stay attached to
// the word they follow, so "width2xl" is one word.
func SplitIntoWords(s string) []string {
	var words []string
	var current strings.Builder
	var prev rune

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	flush()
	return words
}

// pathWords splits every segment of a path into words.
func pathWords(segments []string) []string {
	var words []string
	for _, seg := range segments {
		words = append(words, SplitIntoWords(seg)...)
	}
	return words
}

// capitalize upper-cases the first rune and lower-cases the rest. A
// leading digit is left alone: "2xl" stays "2xl".
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return upper.String(string(r)) + lower.String(word[size:])
}

// ToPascalCase converts words to PascalCase.
func ToPascalCase(words []string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToCamelCase converts words to camelCase.
func ToCamelCase(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return lower.String(words[0]) + ToPascalCase(words[1:])
}

// joinLower joins lower-cased words with sep.
func joinLower(words []string, sep string) string {
	return lower.String(strings.Join(words, sep))
}

// joinUpper joins upper-cased words with sep.
func joinUpper(words []string, sep string) string {
	return upper.String(strings.Join(words, sep))
}

// identifier prefixes names that start with a digit so that they are
// valid in every target language.
func identifier(name string) string {
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(r) {
		return "_" + name
	}
	return name
}
