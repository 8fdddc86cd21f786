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

// androidDeclaration picks the resource element from the token's kind
// and category.
const androidDeclaration = `{{if eq .Kind "color"}}  <color name="{{.Name}}">{{.Value}}</color>
{{else if eq .Category "dimension"}}  <dimen name="{{.Name}}">{{.Value}}</dimen>
{{else if and (eq .Kind "number") .Integer}}  <integer name="{{.Name}}">{{.Value}}</integer>
{{else if eq .Kind "number"}}  <item name="{{.Name}}" format="float" type="dimen">{{.Value}}</item>
{{else}}  <string name="{{.Name}}">{{.Value}}</string>
{{end}}`

// Android writes a values resource file with #AARRGGBB colors.
func Android() emit.Backend {
	return emit.Backend{
		Name:     "android",
		FileName: "tokens.xml",
		Naming:   mangle.Snake,
		Header: `<?xml version="1.0" encoding="utf-8"?>

<!--
  ` + notice + `
-->
<resources>
`,
		Declaration: androidDeclaration,
		Footer:      "</resources>\n",
		Color:       "{{.ARGB}}",
		Number: emit.NumberFormat{
			Units: map[normalize.Category]string{normalize.Dimension: "dp"},
		},
		Quoting: emit.QuoteXML,
	}
}
