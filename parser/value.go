/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokensmith/parser/common"
	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/token"
)

// compositeFields maps composite $type values to the types of their fields.
var compositeFields = map[string]map[string]string{
	"typography": {
		"fontFamily":    "fontFamily",
		"fontSize":      "dimension",
		"fontWeight":    "fontWeight",
		"letterSpacing": "dimension",
		"lineHeight":    "number",
	},
	"shadow": {
		"color":   "color",
		"offsetX": "dimension",
		"offsetY": "dimension",
		"blur":    "dimension",
		"spread":  "dimension",
		"inset":   "string",
	},
	"border": {
		"color": "color",
		"width": "dimension",
		"style": "strokeStyle",
	},
	"transition": {
		"duration":       "duration",
		"delay":          "duration",
		"timingFunction": "cubicBezier",
	},
	"gradient": {
		"color":    "color",
		"position": "number",
	},
	"strokeStyle": {
		"dashArray": "dimension",
		"lineCap":   "string",
	},
}

// value records the definition held by node. Composite objects and arrays
// of objects become one entry per field.
func (w *walker) value(node *yaml.Node, path token.Path, typ string, base token.Entry) error {
	switch node.Kind {
	case yaml.AliasNode:
		return w.value(node.Alias, path, typ, base)

	case yaml.ScalarNode:
		def, err := w.scalar(node, path, typ)
		if err != nil {
			return w.errorf(node, path, "%w", err)
		}
		w.put(base, path, typ, def)
		return nil

	case yaml.MappingNode:
		return w.object(node, path, typ, base)

	case yaml.SequenceNode:
		return w.sequence(node, path, typ, base)
	}
	return w.errorf(node, path, "%w: unsupported value", schema.ErrInvalidToken)
}

func (w *walker) put(base token.Entry, path token.Path, typ string, def token.Definition) {
	e := base
	e.Path = path.Clone()
	e.Type = typ
	e.Definition = def
	w.result.Entries = append(w.result.Entries, e)
}

// object handles $ref objects, structured colors, {value, unit} pairs and
// composite values.
func (w *walker) object(node *yaml.Node, path token.Path, typ string, base token.Entry) error {
	if ref := mappingValue(node, "$ref"); ref != nil && w.version == schema.V2025_10 {
		target, ok := token.ParseJSONPointerRef(ref.Value)
		if !ok {
			return w.errorf(ref, path, "%w: %q is not a JSON pointer", schema.ErrInvalidReference, ref.Value)
		}
		w.put(base, path, typ, token.Reference{Target: w.trimRoot(target)})
		return nil
	}

	if typ == "color" || mappingValue(node, "colorSpace") != nil {
		var sc common.StructuredColor
		if err := node.Decode(&sc); err != nil {
			return w.errorf(node, path, "%w: %w", schema.ErrInvalidToken, err)
		}
		c, err := sc.ToColor()
		if err != nil {
			return w.errorf(node, path, "%w", err)
		}
		w.put(base, path, typ, c)
		return nil
	}

	if v, u := mappingValue(node, "value"), mappingValue(node, "unit"); v != nil && u != nil && len(node.Content) == 4 {
		f, ok := common.ParseNumber(v.Value)
		if !ok {
			return w.errorf(v, path, "%w: %q is not a number", schema.ErrInvalidToken, v.Value)
		}
		def, err := w.measure(f, strings.ToLower(u.Value), typ, v.Value+u.Value)
		if err != nil {
			return w.errorf(node, path, "%w", err)
		}
		w.put(base, path, typ, def)
		return nil
	}

	fields := compositeFields[typ]
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if err := w.value(node.Content[i+1], path.Join(key), fields[key], base); err != nil {
			return err
		}
	}
	return nil
}

// sequence joins arrays of scalars ("Inter", "sans-serif") into one string
// and splits arrays of objects (layered shadows) by index.
func (w *walker) sequence(node *yaml.Node, path token.Path, typ string, base token.Entry) error {
	scalars := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			scalars = nil
			break
		}
		if _, isRef := token.ParseCurlyBraceRef(item.Value); isRef {
			scalars = nil
			break
		}
		scalars = append(scalars, item.Value)
	}
	if scalars != nil {
		w.put(base, path, typ, token.String{Value: strings.Join(scalars, ", ")})
		return nil
	}

	itemType := typ
	if typ == "fontFamily" || typ == "cubicBezier" {
		itemType = ""
	}
	for i, item := range node.Content {
		if err := w.value(item, path.Join(strconv.Itoa(i)), itemType, base); err != nil {
			return err
		}
	}
	return nil
}

// scalar converts a single scalar according to its declared type.
func (w *walker) scalar(node *yaml.Node, path token.Path, typ string) (token.Definition, error) {
	s := node.Value

	if node.ShortTag() == "!!str" {
		if target, ok := token.ParseCurlyBraceRef(s); ok {
			return token.Reference{Target: w.refTarget(target)}, nil
		}
		if token.ContainsRef(s) {
			w.warnf(node, path, "embedded reference in %q is kept as text", s)
			return token.String{Value: s}, nil
		}
	}

	switch node.ShortTag() {
	case "!!int", "!!float":
		f, ok := common.ParseNumber(s)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a number", schema.ErrInvalidToken, s)
		}
		if typ == "color" {
			return nil, fmt.Errorf("%w: color value must be a string, got %s", schema.ErrInvalidToken, s)
		}
		return token.Number{Value: f}, nil
	case "!!bool", "!!null":
		return token.String{Value: s}, nil
	}

	switch typ {
	case "color":
		return common.ParseColor(s)

	case "fontWeight":
		f, err := common.ParseFontWeight(s)
		if err != nil {
			return nil, err
		}
		return token.Number{Value: f}, nil

	case "number":
		f, ok := common.ParseNumber(s)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a number", schema.ErrInvalidToken, s)
		}
		return token.Number{Value: f}, nil

	case "dimension", "duration":
		f, unit, ok := common.SplitDimension(s)
		if !ok {
			return token.String{Value: s}, nil
		}
		return w.measure(f, unit, typ, s)

	case "":
		if common.IsNonFinite(s) {
			return nil, fmt.Errorf("%w: %q is not a finite number", schema.ErrInvalidToken, s)
		}
		if f, ok := common.ParseNumber(s); ok {
			return token.Number{Value: f}, nil
		}
		if common.LooksLikeColor(s) {
			return common.ParseColor(s)
		}
		if f, unit, ok := common.SplitDimension(s); ok && unit != "" {
			if v, ok := common.ParseDimension(f, unit); ok {
				return token.Number{Value: v}, nil
			}
		}
	}
	return token.String{Value: s}, nil
}

// measure converts a magnitude and unit into a definition. Relative
// dimensions such as rem stay textual since no backend unit can express
// them as a bare number.
func (w *walker) measure(f float64, unit, typ, raw string) (token.Definition, error) {
	if typ == "duration" {
		ms, err := common.ParseDuration(f, unit)
		if err != nil {
			return nil, err
		}
		return token.Number{Value: ms}, nil
	}
	if v, ok := common.ParseDimension(f, unit); ok {
		return token.Number{Value: v}, nil
	}
	return token.String{Value: raw}, nil
}

// refTarget normalizes a curly brace target: Style Dictionary writes
// {color.base.red.value}, and root markers name their group.
func (w *walker) refTarget(target token.Path) token.Path {
	if w.version == schema.StyleDictionary && len(target) > 1 && target[len(target)-1] == "value" {
		target = target[:len(target)-1]
	}
	return w.trimRoot(target)
}

// parseRefString accepts either {curly.brace} or #/json/pointer syntax.
func parseRefString(s string) (token.Path, bool) {
	if p, ok := token.ParseCurlyBraceRef(s); ok {
		return p, true
	}
	return token.ParseJSONPointerRef(s)
}
