/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package backend

import (
	"bennypowers.dev/tokensmith/emit"
	"bennypowers.dev/tokensmith/mangle"
	"bennypowers.dev/tokensmith/normalize"
)

var pixels = emit.NumberFormat{
	Units: map[normalize.Category]string{normalize.Dimension: "px"},
}

// CSS writes custom properties on :root.
func CSS() emit.Backend {
	return emit.Backend{
		Name:     "css",
		FileName: "tokens.css",
		Naming:   mangle.Kebab,
		Header: `/**
 * ` + notice + `
 */

:root {
`,
		Declaration: "  --{{.Name}}: {{.Value}};\n",
		Footer:      "}\n",
		Color:       "{{.CSS}}",
		Number:      pixels,
		Quoting:     emit.QuoteNone,
	}
}

// SCSS writes Sass variables.
func SCSS() emit.Backend {
	return emit.Backend{
		Name:        "scss",
		FileName:    "_tokens.scss",
		Naming:      mangle.Kebab,
		Header:      "// " + notice + "\n\n",
		Declaration: "${{.Name}}: {{.Value}};\n",
		Color:       "{{.CSS}}",
		Number:      pixels,
		Quoting:     emit.QuoteNone,
	}
}

// TypeScript writes a const object and its key type.
func TypeScript() emit.Backend {
	return emit.Backend{
		Name:     "typescript",
		FileName: "tokens.ts",
		Naming:   mangle.Camel,
		Header: `/**
 * ` + notice + `
 */

export const tokens = {
`,
		Declaration: "  {{.Name}}: {{.Value}},\n",
		Footer: `} as const;

export type TokenName = keyof typeof tokens;
`,
		Color:   "{{json .CSS}}",
		Quoting: emit.QuoteJSON,
	}
}

// JSON writes a flat object keyed by kebab-case names.
func JSON() emit.Backend {
	return emit.Backend{
		Name:        "json",
		FileName:    "tokens.json",
		Naming:      mangle.Kebab,
		Header:      "{\n",
		Declaration: "  {{json .Name}}: {{.Value}}{{if not .Last}},{{end}}\n",
		Footer:      "}\n",
		Color:       "{{json .CSS}}",
		Quoting:     emit.QuoteJSON,
	}
}

// DTS writes TypeScript declarations for the constants a runtime
// bundle provides.
func DTS() emit.Backend {
	return emit.Backend{
		Name:     "dts",
		FileName: "tokens.d.ts",
		Naming:   mangle.Camel,
		Header: `/**
 * ` + notice + `
 */

`,
		Declaration: `export declare const {{.Name}}: {{if eq .Kind "number"}}number{{else}}string{{end}};
`,
		Footer: `{{if .Names}}
export type TokenName =
{{- range .Names}}
  | {{json .}}
{{- end}};
{{else}}
export type TokenName = never;
{{end}}`,
		Color:   "{{json .CSS}}",
		Quoting: emit.QuoteJSON,
	}
}
