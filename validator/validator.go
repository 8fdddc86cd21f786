/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks that a token source uses the features of the
// schema it declares, and nothing from the others.
package validator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokensmith/schema"
)

// ValidationError represents a schema consistency error.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is the dotted path to the problematic element.
	Path string
	// Line is the 1-based source line, or 0 when unknown.
	Line int
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		if e.Line > 0 {
			fmt.Fprintf(&sb, ":%d", e.Line)
		}
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// groupMarkers are the draft-era names for a group's own token.
var groupMarkers = map[string]bool{"_": true, "-": true, ".": true, "@": true, "DEFAULT": true}

type checker struct {
	version  schema.Version
	filePath string
	errors   []ValidationError
}

// ValidateConsistency checks that content matches version. It reports,
// in source order:
//   - 2025.10 features ($ref, $extends, $root, structured colors) in draft
//     or Style Dictionary files
//   - string colors and group markers in 2025.10 files
//   - $-prefixed keys in Style Dictionary files and unprefixed value keys
//     in DTCG files
func ValidateConsistency(content []byte, version schema.Version, filePath string) []ValidationError {
	if trimmed := bytes.TrimSpace(content); len(trimmed) > 0 && trimmed[0] == '{' {
		content = jsonc.ToJSON(content)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return []ValidationError{{
			FilePath: filePath,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil
	}
	c := &checker{version: version, filePath: filePath}
	c.group(root.Content[0], nil, "")
	return c.errors
}

func (c *checker) report(node *yaml.Node, path []string, message, suggestion string) {
	c.errors = append(c.errors, ValidationError{
		FilePath:   c.filePath,
		Path:       strings.Join(path, "."),
		Line:       node.Line,
		Message:    message,
		Suggestion: suggestion,
	})
}

func (c *checker) group(node *yaml.Node, path []string, inheritedType string) {
	typ := inheritedType
	if t := value(node, c.version.TypeKey()); t != nil && t.Kind == yaml.ScalarNode {
		typ = t.Value
	}

	var rootKey, markerKey *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, child := node.Content[i], node.Content[i+1]
		childPath := append(path[:len(path):len(path)], key.Value)

		switch key.Value {
		case "$schema":
			continue
		case "$ref", "$extends", "$root":
			if c.version != schema.V2025_10 {
				c.report(key, childPath, key.Value+" is not valid in "+c.version.String()+" schema",
					"update $schema to 2025.10 to use "+key.Value)
			}
			if key.Value == "$root" {
				rootKey = key
			}
		}
		if groupMarkers[key.Value] {
			markerKey = key
		}

		if child.Kind != yaml.MappingNode {
			continue
		}
		if c.isToken(child) {
			c.token(key, child, childPath, typ)
			continue
		}
		c.group(child, childPath, typ)
	}

	if c.version == schema.V2025_10 && markerKey != nil {
		if rootKey != nil {
			c.report(node, path, "conflicting root token patterns: both $root and group marker found",
				"use only $root in 2025.10 schema, remove group markers like \"_\"")
		} else {
			c.report(markerKey, append(path[:len(path):len(path)], markerKey.Value),
				"group marker tokens are deprecated in 2025.10 schema",
				"use $root instead of group markers like \"_\"")
		}
	}
}

// isToken reports whether node is a token. An unprefixed value key counts
// when it holds a literal, so that a DTCG group named "value" is not
// mistaken for a Style Dictionary token.
func (c *checker) isToken(node *yaml.Node) bool {
	if value(node, "$value") != nil {
		return true
	}
	v := value(node, "value")
	return v != nil && (v.Kind != yaml.MappingNode || c.version == schema.StyleDictionary)
}

func (c *checker) token(key, node *yaml.Node, path []string, inheritedType string) {
	dollar, plain := value(node, "$value"), value(node, "value")
	switch {
	case c.version == schema.StyleDictionary && dollar != nil:
		c.report(key, path, "$value is not valid in Style Dictionary format",
			"use value, type and comment, or declare a DTCG $schema")
		return
	case c.version != schema.StyleDictionary && dollar == nil && plain != nil:
		c.report(key, path, "value without $ prefix is Style Dictionary format",
			"rename to $value, or set schema: sd in the config")
		return
	}

	v := dollar
	if v == nil {
		v = plain
	}
	if ref := value(v, "$ref"); ref != nil && c.version != schema.V2025_10 {
		c.report(key, path, "$ref is not valid in "+c.version.String()+" schema",
			"use curly-brace references like {token.path} or update $schema to 2025.10")
		return
	}
	typ := inheritedType
	if t := value(node, c.version.TypeKey()); t != nil {
		typ = t.Value
	}
	if typ != "color" {
		return
	}

	switch {
	case c.version == schema.V2025_10 && v.Kind == yaml.ScalarNode && !strings.HasPrefix(v.Value, "{"):
		c.report(key, path, fmt.Sprintf("string color value %q is not valid in 2025.10 schema", v.Value),
			"use structured color format with colorSpace and components")
	case c.version != schema.V2025_10 && v.Kind == yaml.MappingNode && value(v, "colorSpace") != nil:
		c.report(key, path, "structured color values are not valid in "+c.version.String()+" schema",
			"use string color format like \"#RRGGBB\" or update $schema to 2025.10")
	}
}

// value returns the value node for key in a mapping, or nil.
func value(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
