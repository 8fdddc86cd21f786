/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Quoting selects how string literals are written.
type Quoting string

const (
	// QuoteNone writes strings verbatim.
	QuoteNone Quoting = "none"
	// QuoteObjC writes Objective-C NSString literals: @"…".
	QuoteObjC Quoting = "objc"
	// QuoteC writes C-style double quoted literals: "…".
	QuoteC Quoting = "c"
	// QuoteSingle writes single quoted literals: '…'.
	QuoteSingle Quoting = "single"
	// QuoteJSON writes JSON strings.
	QuoteJSON Quoting = "json"
	// QuoteXML escapes XML metacharacters without adding quotes.
	QuoteXML Quoting = "xml"
)

// ParseQuoting validates a quoting name. "double" is accepted for c.
func ParseQuoting(s string) (Quoting, error) {
	switch q := Quoting(s); q {
	case QuoteNone, QuoteObjC, QuoteC, QuoteSingle, QuoteJSON, QuoteXML:
		return q, nil
	case "", "double":
		return QuoteC, nil
	}
	return "", fmt.Errorf("unknown quoting %q (valid: none, objc, c, single, json, xml)", s)
}

var (
	cEscaper = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	singleEscaper = strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	xmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
)

// Quote renders s as a literal.
func (q Quoting) Quote(s string) string {
	switch q {
	case QuoteObjC:
		return `@"` + cEscaper.Replace(s) + `"`
	case QuoteC:
		return `"` + cEscaper.Replace(s) + `"`
	case QuoteSingle:
		return `'` + singleEscaper.Replace(s) + `'`
	case QuoteJSON:
		return jsonString(s)
	case QuoteXML:
		return EscapeXML(s)
	default:
		return s
	}
}

// EscapeXML escapes special XML characters.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// jsonString encodes s as a JSON string without HTML escaping.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// strings always encode
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
