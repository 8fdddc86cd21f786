/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"bennypowers.dev/tokensmith/token"
)

// ColorData is what a backend's color template receives.
type ColorData struct {
	// R, G, B and A are the channels at three decimals: "0.059".
	R, G, B, A string

	// R255, G255, B255 and A255 are the channels scaled to 0-255.
	R255, G255, B255, A255 int

	// Alpha is the alpha channel as written in CSS: "0.5".
	Alpha string

	// Hex is "#rrggbb", Hex8 is "#rrggbbaa" and ARGB is "#AARRGGBB".
	Hex, Hex8, ARGB string

	// CSS is Hex when opaque and rgba() otherwise.
	CSS string

	// Opaque reports whether alpha is 1.
	Opaque bool
}

// NewColorData derives every color representation from c.
func NewColorData(c token.Color) ColorData {
	cf := colorful.Color{R: c.R, G: c.G, B: c.B}
	r, g, b := cf.RGB255()
	a := uint8(math.Round(c.A * 255))

	d := ColorData{
		R:      channel(c.R),
		G:      channel(c.G),
		B:      channel(c.B),
		A:      channel(c.A),
		R255:   int(r),
		G255:   int(g),
		B255:   int(b),
		A255:   int(a),
		Alpha:  strconv.FormatFloat(math.Round(c.A*1000)/1000, 'f', -1, 64),
		Hex:    cf.Hex(),
		Opaque: a == 255,
	}
	d.Hex8 = fmt.Sprintf("%s%02x", d.Hex, a)
	d.ARGB = fmt.Sprintf("#%02X%02X%02X%02X", a, r, g, b)
	if d.Opaque {
		d.CSS = d.Hex
	} else {
		d.CSS = fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, d.Alpha)
	}
	return d
}

// channel formats a channel at fixed three-decimal precision.
func channel(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
