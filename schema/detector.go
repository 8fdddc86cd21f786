/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DetectionConfig provides configuration for version detection.
type DetectionConfig struct {
	// DefaultVersion is used when the source does not name a $schema.
	DefaultVersion Version
}

// DetectVersion detects the convention a token source follows.
// Priority order:
// 1. $schema field in the document root
// 2. Config default version
// 3. Duck typing: 2025.10 features, then Style Dictionary value keys
// 4. Draft
func DetectVersion(content []byte, config *DetectionConfig) (Version, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return Unknown, fmt.Errorf("invalid YAML/JSON: %w", err)
	}

	if schemaURL, ok := data["$schema"].(string); ok {
		if version, err := FromURL(schemaURL); err == nil {
			return version, nil
		}
	}

	if config != nil && config.DefaultVersion != Unknown {
		return config.DefaultVersion, nil
	}

	if version := duckTypeSchema(data); version != Unknown {
		return version, nil
	}

	return Draft, nil
}

func duckTypeSchema(data map[string]any) Version {
	for _, feature := range []string{"$ref", "$extends", "resolutionOrder"} {
		if hasFeature(data, feature) {
			return V2025_10
		}
	}
	if hasStructuredColor(data) {
		return V2025_10
	}
	if !hasFeature(data, "$value") && hasFeature(data, "value") {
		return StyleDictionary
	}
	return Unknown
}

// hasFeature reports whether key appears as an object key anywhere in v.
func hasFeature(v any, key string) bool {
	switch v := v.(type) {
	case map[string]any:
		if _, ok := v[key]; ok {
			return true
		}
		for _, child := range v {
			if hasFeature(child, key) {
				return true
			}
		}
	case []any:
		for _, elem := range v {
			if hasFeature(elem, key) {
				return true
			}
		}
	}
	return false
}

func hasStructuredColor(v any) bool {
	switch v := v.(type) {
	case map[string]any:
		if value, ok := v["$value"].(map[string]any); ok {
			if _, ok := value["colorSpace"]; ok {
				return true
			}
		}
		for _, child := range v {
			if hasStructuredColor(child) {
				return true
			}
		}
	case []any:
		for _, elem := range v {
			if hasStructuredColor(elem) {
				return true
			}
		}
	}
	return false
}
