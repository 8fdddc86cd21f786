/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bennypowers.dev/tokensmith/normalize"
	"bennypowers.dev/tokensmith/testutil"
)

func sampleRows(t *testing.T) []Row {
	t.Helper()
	return ComputeRows(testutil.Normalized(t, testutil.SampleStore()))
}

func TestComputeRows(t *testing.T) {
	rows := sampleRows(t)
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	primary := rows[0]
	if primary.Path != "bg.brand.primary" || primary.Value != "#0f1e80" || primary.Hex != "#0f1e80" {
		t.Errorf("unexpected color row: %+v", primary)
	}
	button := rows[1]
	if button.Value != "#0f1e80" || len(button.RefChain) != 1 || button.RefChain[0] != "bg.brand.primary" {
		t.Errorf("alias row should carry its chain: %+v", button)
	}
	if rows[2].Value != "rgba(0, 0, 0, 0.5)" {
		t.Errorf("translucent color = %q", rows[2].Value)
	}
	if rows[3].Value != "4" || rows[3].Category != normalize.Dimension {
		t.Errorf("radius row = %+v", rows[3])
	}
	if rows[6].Value != "Inter" {
		t.Errorf("string values render unquoted, got %q", rows[6].Value)
	}
}

func TestFilter(t *testing.T) {
	rows := sampleRows(t)
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"category", Filter{Category: normalize.Color}, []string{"bg.brand.primary", "bg.button.primary", "bg.overlay.scrim"}},
		{"type", Filter{Type: "fontWeight"}, []string{"typography.font-weight.bold"}},
		{"group", Filter{Group: "bg.brand"}, []string{"bg.brand.primary"}},
		{"group is a whole segment", Filter{Group: "bg.bra"}, nil},
		{"fuzzy query", Filter{Query: "BTNPRI"}, []string{"bg.button.primary"}},
		{"combined", Filter{Category: normalize.Color, Query: "scrim"}, []string{"bg.overlay.scrim"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, r := range tt.filter.Apply(rows) {
				got = append(got, r.Path)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorSwatch(t *testing.T) {
	if got := ColorSwatch("#0f1e80"); got != "\x1b[48;2;15;30;128m  \x1b[0m " {
		t.Errorf("ColorSwatch = %q", got)
	}
	if got := ColorSwatch("not-a-color"); got != "" {
		t.Errorf("expected empty swatch, got %q", got)
	}
}

func TestTable(t *testing.T) {
	rows := Filter{Group: "bg.button"}.Apply(sampleRows(t))
	var buf bytes.Buffer
	if err := Table(&buf, rows, false); err != nil {
		t.Fatal(err)
	}
	want := "bg.button.primary  color     #0f1e80 → bg.brand.primary\n"
	if buf.String() != want {
		t.Errorf("Table =\n%q\nwant\n%q", buf.String(), want)
	}

	buf.Reset()
	if err := Table(&buf, rows, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[48;2;15;30;128m") {
		t.Errorf("expected a swatch, got %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty rows should encode as [], got %q", buf.String())
	}

	buf.Reset()
	if err := JSON(&buf, sampleRows(t)); err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded[1]["aliasOf"] == nil {
		t.Errorf("expected aliasOf on the alias row: %v", decoded[1])
	}
	if _, ok := decoded[0]["Hex"]; ok {
		t.Error("hex should not be serialized")
	}
}

func TestNames(t *testing.T) {
	var buf bytes.Buffer
	if err := Names(&buf, Filter{Group: "settings"}.Apply(sampleRows(t))); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "settings.radius.xs\nsettings.fonts.font-family\n" {
		t.Errorf("Names = %q", buf.String())
	}
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown(&buf, sampleRows(t)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"## Color\n",
		"## Font Weight\n",
		"## Font Family\n",
		"| `bg.button.primary` | #0f1e80 | `bg.brand.primary` |\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "## Color") > strings.Index(out, "## Dimension") {
		t.Error("categories should appear in store order")
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct{ input, expected string }{
		{"color", "Color"},
		{"fontWeight", "Font Weight"},
		{"fontFamily", "Font Family"},
	}
	for _, tt := range tests {
		if got := toTitleCase(tt.input); got != tt.expected {
			t.Errorf("toTitleCase(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
