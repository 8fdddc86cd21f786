/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token data model and the insertion
// ordered Store that every later stage reads from.
package token

import (
	"fmt"
	"math"
	"strconv"

	"bennypowers.dev/tokensmith/schema"
)

// Kind identifies which variant a definition holds.
type Kind int

const (
	KindColor Kind = iota + 1
	KindNumber
	KindString
	KindReference
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Definition is the value a token path maps to. It is one of Color,
// Number, String or Reference.
type Definition interface {
	fmt.Stringer
	Kind() Kind
	definition()
}

// Literal is a Definition that is not a Reference.
type Literal interface {
	Definition
	literal()
}

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Number is a unitless numeric value. Units such as px are a backend
// concern.
type Number struct {
	Value float64
}

// String is a text value such as a font family.
type String struct {
	Value string
}

// Reference aliases the token at Target.
type Reference struct {
	Target Path
}

func (Color) Kind() Kind     { return KindColor }
func (Number) Kind() Kind    { return KindNumber }
func (String) Kind() Kind    { return KindString }
func (Reference) Kind() Kind { return KindReference }

func (Color) definition()     {}
func (Number) definition()    {}
func (String) definition()    {}
func (Reference) definition() {}

func (Color) literal()  {}
func (Number) literal() {}
func (String) literal() {}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3f, %.3f, %.3f, %.3f)", c.R, c.G, c.B, c.A)
}

func (n Number) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func (s String) String() string {
	return strconv.Quote(s.Value)
}

func (r Reference) String() string {
	return "{" + r.Target.String() + "}"
}

// IsInteger reports whether the number is finite and has no fractional
// part.
func (n Number) IsInteger() bool {
	return !math.IsInf(n.Value, 0) && n.Value == math.Trunc(n.Value)
}

// Entry is a stored definition together with its source metadata.
type Entry struct {
	// Path names the token.
	Path Path

	// Definition is the literal or reference the path maps to.
	Definition Definition

	// Type is the declared $type, possibly inherited from a group.
	Type string

	// Description is optional documentation for the token.
	Description string

	// FilePath is the source file or URL the entry was loaded from.
	FilePath string

	// Layer is the index of the source layer that put the entry, in
	// load order.
	Layer int

	// Line is the 0-based line number where the token is defined.
	Line uint32

	// Character is the 0-based character offset where the token is defined.
	Character uint32

	// SchemaVersion is the detected schema version of the source file.
	SchemaVersion schema.Version
}

// Resolved is a token whose value is a literal, after following every
// reference.
type Resolved struct {
	Path        Path
	Value       Literal
	Type        string
	Description string

	// Chain lists the paths followed to reach Value, starting with the
	// first alias target. It is empty for literal definitions.
	Chain []Path
}

// Extension records that Group inherits every token of Base that it does
// not define itself ($extends).
type Extension struct {
	Group Path
	Base  Path

	// FilePath is the source that declared the extension.
	FilePath string
}
