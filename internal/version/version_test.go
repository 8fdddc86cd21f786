/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/tokensmith/internal/version"
)

func TestGet_FromTagAndCommit(t *testing.T) {
	saved := [3]string{version.GitTag, version.GitCommit, version.GitDirty}
	t.Cleanup(func() {
		version.GitTag, version.GitCommit, version.GitDirty = saved[0], saved[1], saved[2]
	})

	version.GitTag = "v1.2.0"
	version.GitCommit = "0123456789abcdef"
	version.GitDirty = "dirty"

	got := version.Get()
	// module builds in tests report (devel), so the tag path is taken
	if !strings.HasPrefix(got, "v1.2.0") {
		t.Skipf("build info supplied a module version: %s", got)
	}
	assert.Equal(t, "v1.2.0-0123456-dirty", got)
}

func TestUserAgent(t *testing.T) {
	assert.True(t, strings.HasPrefix(version.UserAgent(), "tokensmith/"))
}

func TestInfo(t *testing.T) {
	info := version.Info()
	assert.Contains(t, info, "goVersion")
	assert.Equal(t, version.Get(), info["version"])
}
