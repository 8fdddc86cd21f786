/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/tokensmith/fs"
)

// Resolve maps a local or package specifier to a filesystem path. Package
// files are looked up in node_modules, walking up from root; jsr packages
// use the npm compatibility layout (@jsr/scope__pkg). Relative local paths
// are joined to root.
func Resolve(filesystem fs.FileSystem, root string, s Specifier) (string, error) {
	switch s.Kind {
	case KindLocal:
		if filepath.IsAbs(s.File) {
			return s.File, nil
		}
		return filepath.Join(root, s.File), nil
	case KindNPM:
		return findInNodeModules(filesystem, root, s.Package, s)
	case KindJSR:
		return findInNodeModules(filesystem, root, filepath.Join("@jsr", jsrCompatName(s.Package)), s)
	}
	return "", fmt.Errorf("cannot resolve %s specifier %s to a file", s.Kind, s.Raw)
}

func findInNodeModules(filesystem fs.FileSystem, root, pkg string, s Specifier) (string, error) {
	dir := root
	for {
		base := filepath.Join(dir, "node_modules")
		candidate := filepath.Clean(filepath.Join(base, pkg, s.File))
		if !isInsideDir(candidate, base) {
			return "", fmt.Errorf("path traversal detected in specifier: %s", s.Raw)
		}
		if filesystem.Exists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("package not found: %s (looked in node_modules starting from %s)", s.Package, root)
}

// jsrCompatName converts @scope/pkg to scope__pkg.
func jsrCompatName(pkg string) string {
	return strings.Replace(strings.TrimPrefix(pkg, "@"), "/", "__", 1)
}

func isInsideDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Expand returns the files under root matching a glob specifier, in
// lexical order.
func Expand(filesystem fs.FileSystem, root string, s Specifier) ([]string, error) {
	pattern := s.File
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(root, pattern)
	}
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, fmt.Errorf("invalid glob pattern: %s", s.Raw)
	}

	base := pattern
	for IsGlob(base) {
		base = filepath.Dir(base)
	}
	rel := strings.TrimPrefix(strings.TrimPrefix(pattern, base), string(filepath.Separator))

	var matches []string
	err := iofs.WalkDir(filesystem, base, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return iofs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		relPath := strings.TrimPrefix(strings.TrimPrefix(path, base), string(filepath.Separator))
		if ok, _ := doublestar.Match(filepath.ToSlash(rel), filepath.ToSlash(relPath)); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", s.Raw, err)
	}
	return matches, nil
}
