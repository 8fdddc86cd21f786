/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"strconv"

	"bennypowers.dev/tokensmith/normalize"
	"bennypowers.dev/tokensmith/token"
)

// NumberFormat controls numeric literals.
type NumberFormat struct {
	// Precision is the number of decimals written for fractional values.
	// Zero means the shortest exact representation. Integers never get a
	// decimal point.
	Precision int

	// Units maps a category to the suffix appended to its values, such as
	// "px" for dimension.
	Units map[normalize.Category]string
}

// Format renders n for the given category.
func (f NumberFormat) Format(n token.Number, cat normalize.Category) string {
	var s string
	switch {
	case n.IsInteger():
		s = strconv.FormatFloat(n.Value, 'f', 0, 64)
	case f.Precision > 0:
		s = strconv.FormatFloat(n.Value, 'f', f.Precision, 64)
	default:
		s = strconv.FormatFloat(n.Value, 'f', -1, 64)
	}
	return s + f.Units[cat]
}
