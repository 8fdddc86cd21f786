/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lint_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensmith/cmd/lint"
	"bennypowers.dev/tokensmith/cmd/project"
	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/internal/mapfs"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

const tokens = `{
  "text": {
    "primary": {"$value": "#000000"},
    "secondary": {"$value": "#111111"},
    "tertiary": {"$value": "#222222"}
  },
  "bg": {
    "primary": {"$value": "#ffffff"},
    "tertiary": {"$value": "#eeeeee"},
    "tertiarty": {"$value": "#dddddd"}
  }
}`

func TestReport(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(project.KeyRoot, "/project")

	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tokensmith.yaml", "sources: [tokens.json]\nmodes: [light, dark]\n", 0644)
	mfs.AddFile("/project/tokens.json", tokens, 0644)
	p, err := project.Open(mfs)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := lint.Report(t.Context(), &buf, p, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "modes share a store and are checked once")
	assert.Equal(t, "\"tertiarty\" looks like a misspelling of \"tertiary\" (1 vs 2 tokens), e.g. bg.tertiarty\n", buf.String())
}

func TestReport_Files(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(project.KeyRoot, "/project")

	mfs := mapfs.New()
	mfs.AddFile("/project/clean.json", `{"a": {"$value": 1}}`, 0644)
	p, err := project.Open(mfs)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := lint.Report(t.Context(), &buf, p, []string{"clean.json"})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}
