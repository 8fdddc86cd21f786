/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"bennypowers.dev/tokensmith/schema"
)

// dimensionPattern matches a number with an optional unit: "16", "1.5px", "-0.25".
var dimensionPattern = regexp.MustCompile(`^(-?(?:\d+\.?\d*|\.\d+))\s*([a-zA-Z%]*)$`)

// absoluteUnits are the units whose magnitude is carried through as a
// plain number. Backends append their own unit.
var absoluteUnits = map[string]bool{
	"":   true,
	"px": true,
	"pt": true,
	"dp": true,
}

// FontWeights maps DTCG font weight names to numeric weights.
var FontWeights = map[string]float64{
	"thin":        100,
	"hairline":    100,
	"extra-light": 200,
	"ultra-light": 200,
	"light":       300,
	"normal":      400,
	"regular":     400,
	"book":        400,
	"medium":      500,
	"semi-bold":   600,
	"demi-bold":   600,
	"bold":        700,
	"extra-bold":  800,
	"ultra-bold":  800,
	"black":       900,
	"heavy":       900,
	"extra-black": 950,
	"ultra-black": 950,
}

// ParseNumber parses a bare numeric string. NaN and the infinities are
// not numbers any backend can write, so they report ok=false.
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsNonFinite reports whether s spells NaN or an infinity.
func IsNonFinite(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && (math.IsNaN(f) || math.IsInf(f, 0))
}

// SplitDimension separates "16px" into 16 and "px".
func SplitDimension(s string) (float64, string, bool) {
	m := dimensionPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, "", false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return f, strings.ToLower(m[2]), true
}

// ParseDimension parses a dimension with an absolute unit. Relative units
// such as rem report ok=false so the caller can keep the value as text.
func ParseDimension(value float64, unit string) (float64, bool) {
	if !absoluteUnits[unit] {
		return 0, false
	}
	return value, true
}

// ParseDuration converts "200ms" or "0.2s" to milliseconds.
func ParseDuration(value float64, unit string) (float64, error) {
	switch unit {
	case "ms", "":
		return value, nil
	case "s":
		return value * 1000, nil
	default:
		return 0, fmt.Errorf("%w: unknown duration unit %q", schema.ErrInvalidToken, unit)
	}
}

// ParseFontWeight accepts a numeric weight or a DTCG weight name.
func ParseFontWeight(s string) (float64, error) {
	if f, ok := ParseNumber(s); ok {
		if f < 1 || f > 1000 {
			return 0, fmt.Errorf("%w: font weight %v outside [1, 1000]", schema.ErrInvalidToken, f)
		}
		return f, nil
	}
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	if w, ok := FontWeights[name]; ok {
		return w, nil
	}
	for _, prefix := range []string{"extra", "ultra", "semi", "demi"} {
		if rest, ok := strings.CutPrefix(name, prefix); ok && !strings.HasPrefix(rest, "-") {
			if w, ok := FontWeights[prefix+"-"+rest]; ok {
				return w, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unknown font weight %q", schema.ErrInvalidToken, s)
}
