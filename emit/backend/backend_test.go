/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package backend_test

import (
	"encoding/json"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensmith/emit"
	"bennypowers.dev/tokensmith/emit/backend"
	"bennypowers.dev/tokensmith/testutil"
	"bennypowers.dev/tokensmith/token"
)

func render(t *testing.T, name string, store *token.Store) string {
	t.Helper()
	b, err := backend.Builtin(name)
	require.NoError(t, err)
	out, err := emit.Emit(testutil.Normalized(t, store), b, emit.Meta{})
	require.NoError(t, err)
	return string(out)
}

func TestBuiltin_Golden(t *testing.T) {
	for _, name := range []string{"objc", "android", "css", "json"} {
		t.Run(name, func(t *testing.T) {
			b, err := backend.Builtin(name)
			require.NoError(t, err)
			out := render(t, name, testutil.SampleStore())
			testutil.Golden(t, path.Join(name, b.FileName), []byte(out))
		})
	}
}

func TestObjC_MatchesHeaderLayout(t *testing.T) {
	s := token.NewStore()
	s.Put(token.ParsePath("settings.radius.xs"), token.Number{Value: 4})
	s.Put(token.ParsePath("numbers.screen-size.width.2xl"), token.Number{Value: 1024})

	out := render(t, "objc", s)
	assert.Contains(t, out, "\n//\n// tokens.h\n//\n\n// Do not edit directly, this file was auto-generated.\n\n\n#import <Foundation/Foundation.h>\n#import <UIKit/UIKit.h>\n\n")
	assert.Contains(t, out, "#define SettingsRadiusXs 4\n")
	assert.Contains(t, out, "#define NumbersScreenSizeWidth2xl 1024\n")
}

func TestSwift(t *testing.T) {
	out := render(t, "swift", testutil.SampleStore())
	assert.Contains(t, out, "import UIKit\n\npublic enum Tokens {\n")
	assert.Contains(t, out, "    public static let bgBrandPrimary = UIColor(red: 0.059, green: 0.118, blue: 0.502, alpha: 1.000)\n")
	assert.Contains(t, out, "    public static let settingsRadiusXs = 4\n")
	assert.Contains(t, out, "    public static let settingsFontsFontFamily = \"Inter\"\n")
	assert.Contains(t, out, "\n}\n")
}

func TestSCSS(t *testing.T) {
	out := render(t, "scss", testutil.SampleStore())
	assert.Contains(t, out, "$bg-overlay-scrim: rgba(0, 0, 0, 0.5);\n")
	assert.Contains(t, out, "$settings-radius-xs: 4px;\n")
}

func TestTypeScript(t *testing.T) {
	out := render(t, "typescript", testutil.SampleStore())
	assert.Contains(t, out, "export const tokens = {\n")
	assert.Contains(t, out, "  bgBrandPrimary: \"#0f1e80\",\n")
	assert.Contains(t, out, "  typographyLetterSpacingWide: 0.25,\n")
	assert.Contains(t, out, "} as const;\n\nexport type TokenName = keyof typeof tokens;\n")
}

func TestJSON_IsValid(t *testing.T) {
	out := render(t, "json", testutil.SampleStore())
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded, 7)
	assert.Equal(t, float64(4), decoded["settings-radius-xs"])

	empty := render(t, "json", token.NewStore())
	require.NoError(t, json.Unmarshal([]byte(empty), &decoded))
}

func TestDTS(t *testing.T) {
	out := render(t, "dts", testutil.SampleStore())
	assert.Contains(t, out, "export declare const bgBrandPrimary: string;\n")
	assert.Contains(t, out, "export declare const settingsRadiusXs: number;\n")
	assert.Contains(t, out, "\nexport type TokenName =\n  | \"bgBrandPrimary\"\n")
	assert.Contains(t, out, "  | \"settingsFontsFontFamily\";\n")

	empty := render(t, "dts", token.NewStore())
	assert.Contains(t, empty, "export type TokenName = never;\n")
}

func TestBuiltin_Lookup(t *testing.T) {
	assert.Equal(t, []string{"android", "css", "dts", "json", "objc", "scss", "swift", "typescript"}, backend.Names())

	b, err := backend.Builtin("ObjC")
	require.NoError(t, err)
	assert.Equal(t, "objc", b.Name)

	_, err = backend.Builtin("cobol")
	assert.Error(t, err)
}

func TestBuiltin_AllCompile(t *testing.T) {
	for _, name := range backend.Names() {
		b, err := backend.Builtin(name)
		require.NoError(t, err)
		_, err = emit.Compile(b)
		assert.NoError(t, err, name)
	}
}
