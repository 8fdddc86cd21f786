/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser builds token entries from DTCG and Style Dictionary
// sources. JSON (with comments) and YAML are both read as yaml.Node trees
// so that entries come out in source order.
package parser

import (
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/parser/common"
	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/token"
)

// Options configures token parsing.
type Options struct {
	// SchemaVersion overrides auto-detection.
	SchemaVersion schema.Version

	// GroupMarkers are token names that can be both tokens and groups
	// (draft and Style Dictionary only).
	GroupMarkers []string

	// FilePath is recorded on every entry.
	FilePath string
}

// Result is the output of parsing one source.
type Result struct {
	// Version is the detected or configured schema version.
	Version schema.Version

	// Entries are the tokens in source order.
	Entries []token.Entry

	// Extensions are the group $extends declarations in source order.
	Extensions []token.Extension
}

// Parse parses JSON or YAML token data.
func Parse(data []byte, opts Options) (*Result, error) {
	if isLikelyJSON(data) {
		data = jsonc.ToJSON(data)
	}

	version := opts.SchemaVersion
	if version == schema.Unknown {
		v, err := schema.DetectVersion(data, nil)
		if err != nil {
			return nil, err
		}
		version = v
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse tokens: %w", err)
	}

	res := &Result{Version: version}
	if len(root.Content) == 0 {
		return res, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: document root must be an object", schema.ErrInvalidToken)
	}

	w := &walker{opts: opts, version: version, result: res}
	if err := w.group(doc, nil, ""); err != nil {
		return nil, err
	}
	return res, nil
}

// ParseFile reads and parses a token file.
func ParseFile(filesystem fs.FileSystem, path string, opts Options) (*Result, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	opts.FilePath = path
	res, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return res, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

type walker struct {
	opts    Options
	version schema.Version
	result  *Result
}

// group walks a group object. Keys are visited in document order.
func (w *walker) group(node *yaml.Node, path token.Path, inheritedType string) error {
	groupType := inheritedType
	if t := mappingValue(node, w.version.TypeKey()); t != nil && t.Kind == yaml.ScalarNode {
		groupType = t.Value
	}

	if ext := mappingValue(node, "$extends"); ext != nil && w.version == schema.V2025_10 {
		base, ok := parseRefString(ext.Value)
		if !ok {
			return w.errorf(ext, path, "%w: $extends %q", schema.ErrInvalidReference, ext.Value)
		}
		w.result.Extensions = append(w.result.Extensions, token.Extension{
			Group:    path.Clone(),
			Base:     w.trimRoot(base),
			FilePath: w.opts.FilePath,
		})
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value

		isRoot := common.IsRootToken(key, w.version, w.opts.GroupMarkers)
		if strings.HasPrefix(key, "$") && !isRoot {
			continue
		}
		if w.version == schema.StyleDictionary && isMetadataKey(key) &&
			(valueNode.Kind != yaml.MappingNode || key == "value" || key == "attributes" || key == "original") {
			continue
		}

		childPath := path.Join(key)
		if isRoot {
			childPath = path.Clone()
		}

		if valueNode.Kind != yaml.MappingNode {
			w.warnf(keyNode, childPath, "ignoring %s member; expected a token or group object", valueNode.ShortTag())
			continue
		}

		if w.isToken(valueNode) {
			if err := w.token(keyNode, valueNode, childPath, groupType); err != nil {
				return err
			}
			if !isRoot && !hasChildGroups(valueNode, w.version) {
				continue
			}
		}

		if err := w.group(valueNode, childPath, groupType); err != nil {
			return err
		}
	}
	return nil
}

// isToken reports whether an object carries a value.
func (w *walker) isToken(node *yaml.Node) bool {
	if mappingValue(node, w.version.ValueKey()) != nil {
		return true
	}
	return w.version == schema.V2025_10 && mappingValue(node, "$ref") != nil
}

// token records one token entry, or several when the value is composite.
func (w *walker) token(keyNode, node *yaml.Node, path token.Path, inheritedType string) error {
	typ := inheritedType
	if t := mappingValue(node, w.version.TypeKey()); t != nil {
		typ = t.Value
	}
	var desc string
	if d := mappingValue(node, w.version.DescriptionKey()); d != nil {
		desc = d.Value
	}

	base := token.Entry{
		Type:          typ,
		Description:   desc,
		FilePath:      w.opts.FilePath,
		Line:          position(keyNode.Line),
		Character:     position(keyNode.Column),
		SchemaVersion: w.version,
	}

	valueNode := mappingValue(node, w.version.ValueKey())
	if valueNode == nil {
		// 2025.10 token whose whole body is {"$ref": "#/..."}
		valueNode = node
	}
	return w.value(valueNode, path, typ, base)
}

func (w *walker) errorf(node *yaml.Node, path token.Path, format string, args ...any) error {
	loc := w.opts.FilePath
	if loc == "" {
		loc = "<input>"
	}
	return fmt.Errorf("%s:%d:%d: %s: %w", loc, node.Line, node.Column, path, fmt.Errorf(format, args...))
}

func (w *walker) warnf(node *yaml.Node, path token.Path, format string, args ...any) {
	loc := w.opts.FilePath
	if loc == "" {
		loc = "<input>"
	}
	logger.Warn("%s:%d:%d: %s: %s", loc, node.Line, node.Column, path, fmt.Sprintf(format, args...))
}

func (w *walker) trimRoot(p token.Path) token.Path {
	return common.TrimRootSegment(p, w.version, w.opts.GroupMarkers)
}

// mappingValue returns the value node for key, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
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

// hasChildGroups reports whether a token object also nests tokens, which
// only group markers may do.
func hasChildGroups(node *yaml.Node, version schema.Version) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if strings.HasPrefix(key, "$") || (version == schema.StyleDictionary && isMetadataKey(key)) {
			continue
		}
		if node.Content[i+1].Kind == yaml.MappingNode {
			return true
		}
	}
	return false
}

// isMetadataKey lists Style Dictionary token fields that are not children.
func isMetadataKey(key string) bool {
	switch key {
	case "value", "type", "comment", "attributes", "original", "name", "path", "themeable":
		return true
	}
	return false
}

// position converts a 1-based yaml position to a 0-based offset.
func position(v int) uint32 {
	if v <= 0 || v-1 > math.MaxUint32 {
		return 0
	}
	return uint32(v - 1)
}
