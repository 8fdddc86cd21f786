/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensmith/schema"
)

func detect(t *testing.T, content string, cfg *schema.DetectionConfig) schema.Version {
	t.Helper()
	v, err := schema.DetectVersion([]byte(content), cfg)
	require.NoError(t, err)
	return v
}

func TestDetectVersion_SchemaURL(t *testing.T) {
	draft := `{"$schema": "https://www.designtokens.org/schemas/draft.json", "navy": {"$value": "#0f1e80"}}`
	assert.Equal(t, schema.Draft, detect(t, draft, nil))

	current := `{"$schema": "https://www.designtokens.org/schemas/2025.10.json"}`
	assert.Equal(t, schema.V2025_10, detect(t, current, nil))

	// A declared schema outranks both the configured default and the
	// Style Dictionary shape of the body.
	sd := `{"$schema": "https://www.designtokens.org/schemas/draft.json", "navy": {"value": "#0f1e80"}}`
	assert.Equal(t, schema.Draft, detect(t, sd, &schema.DetectionConfig{DefaultVersion: schema.StyleDictionary}))
}

func TestDetectVersion_ConfiguredDefault(t *testing.T) {
	got := detect(t, `{"radius": {"xs": {"$value": 4}}}`, &schema.DetectionConfig{DefaultVersion: schema.V2025_10})
	assert.Equal(t, schema.V2025_10, got)

	got = detect(t, `{"radius": {"xs": {"$value": 4}}}`, &schema.DetectionConfig{})
	assert.Equal(t, schema.Draft, got, "an unset default falls through to duck typing")
}

func TestDetectVersion_DuckTyping(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    schema.Version
	}{
		{"$ref deep in a group", `{"theme": {"light": {"bg": {"$value": {"$ref": "#/colors/navy"}}}}}`, schema.V2025_10},
		{"$extends", `{"button": {"$extends": "{base.button}"}}`, schema.V2025_10},
		{"resolutionOrder", `{"resolutionOrder": ["globals", "theme"]}`, schema.V2025_10},
		{"structured color", `{"navy": {"$type": "color", "$value": {"colorSpace": "srgb", "components": [0.059, 0.118, 0.502]}}}`, schema.V2025_10},
		{"value keys", `{"colors": {"navy": {"value": "#0f1e80", "type": "color"}}}`, schema.StyleDictionary},
		{"$value beside a token named value", `{"value": {"$value": 1}}`, schema.Draft},
		{"curly references", `{"bg": {"$value": "{colors.navy}"}}`, schema.Draft},
		{"yaml", "radius:\n  xs:\n    $value: 4\n", schema.Draft},
		{"yaml with $ref", "bg:\n  $value:\n    $ref: '#/navy'\n", schema.V2025_10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detect(t, tt.content, nil))
		})
	}
}

func TestDetectVersion_InvalidContent(t *testing.T) {
	_, err := schema.DetectVersion([]byte(`{"navy": `), nil)
	assert.Error(t, err)
}
