/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensmith/cmd/project"
	"bennypowers.dev/tokensmith/cmd/validate"
	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/internal/mapfs"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func open(t *testing.T, files map[string]string) *project.Project {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(project.KeyRoot, "/project")

	mfs := mapfs.New()
	for name, content := range files {
		mfs.AddFile(name, content, 0644)
	}
	p, err := project.Open(mfs)
	require.NoError(t, err)
	return p
}

func TestCheck_Valid(t *testing.T) {
	p := open(t, map[string]string{
		"/project/.config/tokensmith.yaml": "sources: [tokens/*.json]\nmodes: [light, dark]\n",
		"/project/tokens/color.json":       `{"color": {"$type": "color", "red": {"$value": "#ff0000"}}}`,
		"/project/tokens/theme.json": `{
			"theme": {"light": {"bg": {"$value": "{color.red}"}}, "dark": {"bg": {"$value": "{color.red}"}}},
			"bg": {"$value": "{theme.$mode.bg}"}
		}`,
	})

	var buf bytes.Buffer
	problems, err := validate.Check(t.Context(), &buf, p, nil)
	require.NoError(t, err)
	assert.Zero(t, problems, buf.String())
	assert.Equal(t, "mode light: 4 tokens\nmode dark: 4 tokens\n", buf.String())
}

func TestCheck_ConsistencyErrors(t *testing.T) {
	p := open(t, map[string]string{
		"/project/tokens.json": `{
			"$schema": "https://www.designtokens.org/schemas/2025.10.json",
			"color": {"$type": "color", "red": {"$value": "#ff0000"}}
		}`,
	})

	var buf bytes.Buffer
	problems, err := validate.Check(t.Context(), &buf, p, []string{"tokens.json"})
	require.NoError(t, err)
	assert.Equal(t, 1, problems)
	assert.Contains(t, buf.String(), "/project/tokens.json:3: color.red: string color value \"#ff0000\" is not valid in 2025.10 schema")
}

func TestCheck_ResolutionErrors(t *testing.T) {
	p := open(t, map[string]string{
		"/project/tokens.json": `{"a": {"$value": "{b}"}, "b": {"$value": "{a}"}, "x": {"$value": "{y}"}}`,
	})

	var buf bytes.Buffer
	problems, err := validate.Check(t.Context(), &buf, p, []string{"tokens.json"})
	require.NoError(t, err)
	assert.Equal(t, 1, problems)
	assert.Contains(t, buf.String(), "tokens: circular reference: a → b → a\n")
}

func TestCheck_MissingFile(t *testing.T) {
	p := open(t, nil)

	var buf bytes.Buffer
	problems, err := validate.Check(t.Context(), &buf, p, []string{"missing.json"})
	require.NoError(t, err)
	assert.Equal(t, 2, problems, "the file read and the run load both fail")
}

func TestCheck_NothingToValidate(t *testing.T) {
	p := open(t, nil)
	_, err := validate.Check(t.Context(), &bytes.Buffer{}, p, nil)
	require.Error(t, err)
}
