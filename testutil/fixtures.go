/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil loads token fixtures into an in-memory filesystem and
// checks generated artifacts against golden files.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensmith/internal/mapfs"
)

// updateGolden rewrites golden files with the actual output.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdataDir finds the repository testdata directory from a package
// directory, since go test runs each package in its own directory.
func testdataDir(t *testing.T) string {
	t.Helper()
	for _, dir := range []string{
		"testdata",
		filepath.Join("..", "testdata"),
		filepath.Join("..", "..", "testdata"),
	} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	t.Fatal("testdata directory not found")
	return ""
}

// NewFixtureFS copies testdata/<fixtureDir> into a MapFileSystem rooted at
// rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	src := filepath.Join(testdataDir(t), fixtureDir)
	mfs := mapfs.New()
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.Join(rootPath, rel), string(content), 0644)
		return nil
	})
	require.NoError(t, err, "loading fixtures from %s", fixtureDir)
	return mfs
}

// LoadFixtureFile reads testdata/<fixturePath>.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(testdataDir(t), fixturePath))
	require.NoError(t, err, "reading fixture %s", fixturePath)
	return content
}

// Golden compares actual with testdata/golden/<name>. With -update the
// golden file is rewritten instead.
func Golden(t *testing.T, name string, actual []byte) {
	t.Helper()
	path := filepath.Join(testdataDir(t), "golden", name)
	if *updateGolden {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, actual, 0644))
		t.Logf("updated golden file %s", path)
		return
	}
	expected, err := os.ReadFile(path)
	require.NoError(t, err, "reading golden file %s (run with -update to create it)", name)
	require.Equal(t, string(expected), string(actual))
}
