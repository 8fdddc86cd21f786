/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package normalize

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/tokensmith/token"
)

// Category is the semantic type a backend renders a token as.
type Category string

const (
	Color      Category = "color"
	Dimension  Category = "dimension"
	FontWeight Category = "fontWeight"
	Number     Category = "number"
	String     Category = "string"
	FontFamily Category = "fontFamily"
)

// Categories lists every category in a stable order.
var Categories = []Category{Color, Dimension, FontWeight, Number, String, FontFamily}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: color, dimension, fontWeight, number, string, fontFamily)", s)
}

// Kind returns the literal kind a category requires.
func (c Category) Kind() token.Kind {
	switch c {
	case Color:
		return token.KindColor
	case Dimension, FontWeight, Number:
		return token.KindNumber
	default:
		return token.KindString
	}
}

// typeCategories maps DTCG $type values to categories.
var typeCategories = map[string]Category{
	"color":       Color,
	"dimension":   Dimension,
	"fontWeight":  FontWeight,
	"number":      Number,
	"duration":    Number,
	"string":      String,
	"fontFamily":  FontFamily,
	"fontStyle":   String,
	"strokeStyle": String,
	"cubicBezier": String,
}

// CategoryForType returns the category of a DTCG $type.
func CategoryForType(typ string) (Category, bool) {
	c, ok := typeCategories[typ]
	return c, ok
}

// CategoryForKind infers a category from a literal when nothing else
// assigns one.
func CategoryForKind(k token.Kind) Category {
	switch k {
	case token.KindColor:
		return Color
	case token.KindNumber:
		return Number
	default:
		return String
	}
}

// Rule assigns Category to tokens whose path matches Pattern or whose
// declared type equals Type. A rule with both set requires both.
type Rule struct {
	// Pattern is a doublestar glob over the path joined with "/", e.g.
	// "bg/**" or "**/radius/*".
	Pattern string

	// Type matches the declared $type.
	Type string

	Category Category
}

// Validate checks that the rule can match anything.
func (r Rule) Validate() error {
	if r.Pattern == "" && r.Type == "" {
		return fmt.Errorf("category rule for %q needs a pattern or a type", r.Category)
	}
	if r.Pattern != "" && !doublestar.ValidatePattern(r.Pattern) {
		return fmt.Errorf("invalid category pattern %q", r.Pattern)
	}
	if _, err := ParseCategory(string(r.Category)); err != nil {
		return err
	}
	return nil
}

// Matches reports whether the rule applies to a token.
func (r Rule) Matches(path token.Path, typ string) bool {
	if r.Type != "" && r.Type != typ {
		return false
	}
	if r.Pattern == "" {
		return true
	}
	ok, err := doublestar.Match(r.Pattern, strings.Join(path, "/"))
	return err == nil && ok
}
