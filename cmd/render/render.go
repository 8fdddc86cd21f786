/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokensmith/emit"
	"bennypowers.dev/tokensmith/normalize"
	"bennypowers.dev/tokensmith/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Path        string             `json:"path"`
	Type        string             `json:"type,omitempty"`
	Category    normalize.Category `json:"category"`
	Value       string             `json:"value"`
	Description string             `json:"description,omitempty"`
	RefChain    []string           `json:"aliasOf,omitempty"`

	// Hex is set for colors and drives the terminal swatch.
	Hex string `json:"-"`
}

// ComputeRows transforms a normalized set into display rows, in store
// order.
func ComputeRows(set *normalize.Set) []Row {
	rows := make([]Row, 0, set.Len())
	for t := range set.Tokens() {
		row := Row{
			Path:        t.Path.String(),
			Type:        t.Type,
			Category:    t.Category,
			Description: t.Description,
		}
		switch v := t.Value.(type) {
		case token.Color:
			cd := emit.NewColorData(v)
			row.Value, row.Hex = cd.CSS, cd.Hex
		case token.String:
			row.Value = v.Value
		default:
			row.Value = v.String()
		}
		for _, p := range t.Chain {
			row.RefChain = append(row.RefChain, p.String())
		}
		rows = append(rows, row)
	}
	return rows
}

// Filter narrows rows. Empty fields match everything.
type Filter struct {
	Category normalize.Category
	Type     string

	// Group is a dotted path prefix.
	Group string

	// Query fuzzy-matches the path, case-insensitively.
	Query string
}

// Apply returns the rows matching f, keeping their order.
func (f Filter) Apply(rows []Row) []Row {
	var out []Row
	for _, r := range rows {
		if f.Category != "" && r.Category != f.Category {
			continue
		}
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		if f.Group != "" && r.Path != f.Group && !strings.HasPrefix(r.Path, f.Group+".") {
			continue
		}
		if f.Query != "" && !fuzzy.MatchFold(f.Query, r.Path) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (path, category int) {
	path, category = 4, 8 // minimums for headers
	for _, r := range rows {
		path = max(path, len(r.Path))
		category = max(category, len(r.Category))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for a hex color.
func ColorSwatch(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ""
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as aligned columns. Colors get a swatch when
// swatches is set.
func Table(w io.Writer, rows []Row, swatches bool) error {
	pathW, catW := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if swatches && r.Hex != "" {
			swatch = ColorSwatch(r.Hex)
		}
		chain := ""
		if len(r.RefChain) > 0 {
			chain = " → " + strings.Join(r.RefChain, " → ")
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", pathW, r.Path, catW, r.Category, swatch, r.Value, chain); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Names renders just the token paths, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Path); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders one table per category, in order of first appearance.
func Markdown(w io.Writer, rows []Row) error {
	var order []normalize.Category
	byCategory := make(map[normalize.Category][]Row)
	for _, r := range rows {
		if _, ok := byCategory[r.Category]; !ok {
			order = append(order, r.Category)
		}
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	var sb strings.Builder
	for i, cat := range order {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s\n\n", toTitleCase(string(cat)))
		sb.WriteString("| Token | Value | Alias of |\n|---|---|---|\n")
		for _, r := range byCategory[cat] {
			alias := ""
			if len(r.RefChain) > 0 {
				alias = "`" + r.RefChain[0] + "`"
			}
			fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", r.Path, escapeCell(r.Value), alias)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// toTitleCase converts a category such as fontWeight to "Font Weight".
func toTitleCase(s string) string {
	var words []string
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return cases.Title(language.English).String(strings.Join(words, " "))
}
