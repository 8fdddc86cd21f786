/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/token"
)

// ValidColorSpaces lists the color spaces named by DTCG 2025.10. The value
// reports whether the space can be converted to sRGB channels without a
// hex fallback.
var ValidColorSpaces = map[string]bool{
	"srgb":         true,
	"srgb-linear":  true,
	"hsl":          true,
	"hwb":          true,
	"lab":          true,
	"lch":          true,
	"oklab":        true,
	"oklch":        true,
	"xyz-d65":      true,
	"xyz-d50":      false,
	"display-p3":   false,
	"a98-rgb":      false,
	"prophoto-rgb": false,
	"rec2020":      false,
}

// colorPrefixes are the CSS color notations recognised when a value has
// no declared $type.
var colorPrefixes = []string{"#", "rgb(", "rgba(", "hsl(", "hsla(", "hwb(", "lab(", "lch(", "oklab(", "oklch("}

// LooksLikeColor reports whether s is written in a CSS color notation.
// Named colors are deliberately excluded: "white" may be a plain string.
func LooksLikeColor(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range colorPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// ParseColor parses a CSS color string such as "#0f1e80", "rgb(15 30 128)"
// or "rebeccapurple".
func ParseColor(s string) (token.Color, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return token.Color{}, fmt.Errorf("%w: invalid color %q: %w", schema.ErrInvalidToken, s, err)
	}
	out := token.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	if err := CheckChannels(out); err != nil {
		return token.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return out, nil
}

// CheckChannels returns an error when any channel lies outside [0, 1].
func CheckChannels(c token.Color) error {
	for _, ch := range []struct {
		name  string
		value float64
	}{{"red", c.R}, {"green", c.G}, {"blue", c.B}, {"alpha", c.A}} {
		if math.IsNaN(ch.value) || ch.value < 0 || ch.value > 1 {
			return fmt.Errorf("%w: %s channel %v outside [0, 1]", schema.ErrInvalidToken, ch.name, ch.value)
		}
	}
	return nil
}

// StructuredColor is a 2025.10 color object.
type StructuredColor struct {
	ColorSpace string   `yaml:"colorSpace" json:"colorSpace"`
	Components []any    `yaml:"components" json:"components"`
	Alpha      *float64 `yaml:"alpha,omitempty" json:"alpha,omitempty"`
	Hex        string   `yaml:"hex,omitempty" json:"hex,omitempty"`
}

// ToColor converts a structured color to sRGB channels. Spaces with no
// sRGB conversion fall back to the hex field; out-of-gamut results are
// clamped.
func (s StructuredColor) ToColor() (token.Color, error) {
	convertible, known := ValidColorSpaces[s.ColorSpace]
	if !known {
		return token.Color{}, fmt.Errorf("%w: unknown colorSpace %q", schema.ErrInvalidToken, s.ColorSpace)
	}

	alpha := 1.0
	if s.Alpha != nil {
		alpha = *s.Alpha
	}

	if !convertible {
		if s.Hex == "" {
			return token.Color{}, fmt.Errorf("%w: colorSpace %q requires a hex fallback", schema.ErrInvalidToken, s.ColorSpace)
		}
		c, err := ParseColor(s.Hex)
		if err != nil {
			return token.Color{}, err
		}
		c.A = alpha
		return c, CheckChannels(c)
	}

	comps, err := s.components()
	if err != nil {
		return token.Color{}, err
	}

	var c colorful.Color
	switch s.ColorSpace {
	case "srgb":
		out := token.Color{R: comps[0], G: comps[1], B: comps[2], A: alpha}
		return out, CheckChannels(out)
	case "srgb-linear":
		c = colorful.LinearRgb(comps[0], comps[1], comps[2])
	case "hsl":
		c = colorful.Hsl(comps[0], comps[1]/100, comps[2]/100)
	case "hwb":
		c = hwb(comps[0], comps[1]/100, comps[2]/100)
	case "lab":
		c = colorful.LabWhiteRef(comps[0]/100, comps[1]/100, comps[2]/100, colorful.D50)
	case "lch":
		c = colorful.HclWhiteRef(comps[2], comps[1]/100, comps[0]/100, colorful.D50)
	case "oklab":
		c = colorful.OkLab(comps[0], comps[1], comps[2])
	case "oklch":
		c = colorful.OkLch(comps[0], comps[1], comps[2])
	case "xyz-d65":
		c = colorful.Xyz(comps[0], comps[1], comps[2])
	}
	c = c.Clamped()

	out := token.Color{R: c.R, G: c.G, B: c.B, A: alpha}
	return out, CheckChannels(out)
}

// components returns three numeric components, reading "none" as zero.
func (s StructuredColor) components() ([3]float64, error) {
	var out [3]float64
	if len(s.Components) != 3 {
		return out, fmt.Errorf("%w: colorSpace %q needs 3 components, got %d", schema.ErrInvalidToken, s.ColorSpace, len(s.Components))
	}
	for i, comp := range s.Components {
		switch v := comp.(type) {
		case float64:
			out[i] = v
		case int:
			out[i] = float64(v)
		case string:
			if v != "none" {
				return out, fmt.Errorf("%w: component[%d]: invalid string %q; only \"none\" allowed", schema.ErrInvalidToken, i, v)
			}
		default:
			return out, fmt.Errorf("%w: component[%d]: invalid type %T", schema.ErrInvalidToken, i, comp)
		}
	}
	return out, nil
}

// hwb converts hue/whiteness/blackness through HSV.
func hwb(h, w, b float64) colorful.Color {
	if w+b >= 1 {
		gray := w / (w + b)
		return colorful.Color{R: gray, G: gray, B: gray}
	}
	v := 1 - b
	return colorful.Hsv(h, 1-w/v, v)
}
