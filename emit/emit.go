/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package emit renders a normalized token set into the text of one
// backend artifact. Rendering is pure: the same set and backend always
// produce the same bytes, and nothing is written to disk.
package emit

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"bennypowers.dev/tokensmith/mangle"
	"bennypowers.dev/tokensmith/normalize"
	"bennypowers.dev/tokensmith/token"
)

// Backend describes one target language.
type Backend struct {
	// Name identifies the backend, e.g. "objc".
	Name string

	// FileName is the default artifact name, e.g. "tokens.h".
	FileName string

	// Naming mangles token paths into identifiers.
	Naming mangle.Strategy

	// Header and Footer are templates rendered with Meta.
	Header string
	Footer string

	// Declaration is rendered once per token with a Declaration.
	Declaration string

	// Color renders a color value from ColorData.
	Color string

	Number  NumberFormat
	Quoting Quoting
}

// Meta is the data header and footer templates receive.
type Meta struct {
	Backend  string
	Brand    string
	Mode     string
	FileName string

	// Names lists every identifier in declaration order.
	Names []string
}

// Declaration is the data a declaration template receives.
type Declaration struct {
	// Name is the mangled identifier.
	Name string

	// Value is the rendered literal.
	Value string

	// Path is the dotted token path.
	Path string

	Category    normalize.Category
	Kind        string
	Description string

	// Integer reports whether a number has no fractional part.
	Integer bool

	Index int
	Last  bool
}

// Compiled is a backend with parsed templates.
type Compiled struct {
	Backend
	header, footer, decl, color *template.Template
}

func (b Backend) funcs() template.FuncMap {
	return template.FuncMap{
		"quote": b.Quoting.Quote,
		"json":  QuoteJSON.Quote,
		"xml":   EscapeXML,
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
	}
}

// Compile parses the backend's templates.
func Compile(b Backend) (*Compiled, error) {
	if b.Naming == nil {
		return nil, fmt.Errorf("backend %q: no naming strategy", b.Name)
	}
	if b.Declaration == "" {
		return nil, fmt.Errorf("backend %q: no declaration template", b.Name)
	}
	if b.Quoting == "" {
		b.Quoting = QuoteC
	}
	if b.Color == "" {
		b.Color = "{{.CSS}}"
	}

	c := &Compiled{Backend: b}
	for _, t := range []struct {
		name string
		text string
		dst  **template.Template
	}{
		{"header", b.Header, &c.header},
		{"footer", b.Footer, &c.footer},
		{"declaration", b.Declaration, &c.decl},
		{"color", b.Color, &c.color},
	} {
		tmpl, err := template.New(b.Name + "." + t.name).
			Funcs(b.funcs()).
			Option("missingkey=error").
			Parse(t.text)
		if err != nil {
			return nil, fmt.Errorf("backend %q: %s template: %w", b.Name, t.name, err)
		}
		*t.dst = tmpl
	}
	return c, nil
}

// Emit renders set with backend b. A naming collision aborts with no
// output.
func Emit(set *normalize.Set, b Backend, meta Meta) ([]byte, error) {
	c, err := Compile(b)
	if err != nil {
		return nil, err
	}
	return c.Emit(set, meta)
}

// Emit renders set. The compiled backend may be shared between goroutines.
func (c *Compiled) Emit(set *normalize.Set, meta Meta) ([]byte, error) {
	names, err := mangle.Names(set.Paths(), c.Naming)
	if err != nil {
		return nil, fmt.Errorf("backend %q: %w", c.Name, err)
	}

	meta.Backend = c.Name
	if meta.FileName == "" {
		meta.FileName = c.FileName
	}
	meta.Names = names

	var buf bytes.Buffer
	if err := c.header.Execute(&buf, meta); err != nil {
		return nil, fmt.Errorf("backend %q: header: %w", c.Name, err)
	}

	i := 0
	for tok := range set.Tokens() {
		value, err := c.value(tok)
		if err != nil {
			return nil, fmt.Errorf("backend %q: %s: %w", c.Name, tok.Path, err)
		}
		d := Declaration{
			Name:        names[i],
			Value:       value,
			Path:        tok.Path.String(),
			Category:    tok.Category,
			Kind:        tok.Kind.String(),
			Description: tok.Description,
			Index:       i,
			Last:        i == set.Len()-1,
		}
		if n, ok := tok.Value.(token.Number); ok {
			d.Integer = n.IsInteger()
		}
		if err := c.decl.Execute(&buf, d); err != nil {
			return nil, fmt.Errorf("backend %q: %s: %w", c.Name, tok.Path, err)
		}
		i++
	}

	if err := c.footer.Execute(&buf, meta); err != nil {
		return nil, fmt.Errorf("backend %q: footer: %w", c.Name, err)
	}
	return buf.Bytes(), nil
}

// value renders a literal according to its kind.
func (c *Compiled) value(tok normalize.Typed) (string, error) {
	switch v := tok.Value.(type) {
	case token.Color:
		var b strings.Builder
		if err := c.color.Execute(&b, NewColorData(v)); err != nil {
			return "", err
		}
		return b.String(), nil
	case token.Number:
		return c.Number.Format(v, tok.Category), nil
	case token.String:
		return c.Quoting.Quote(v.Value), nil
	}
	return "", fmt.Errorf("unsupported value %T", tok.Value)
}
