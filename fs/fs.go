/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the filesystem abstraction used to read token
// sources and persist generated artifacts.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem is what loading and generation need from a disk. It embeds
// the read side of io/fs so globs can walk it, and adds the writes that
// WriteIfChanged performs.
type FileSystem interface {
	fs.StatFS
	fs.ReadDirFS
	fs.ReadFileFS

	// WriteFile, Rename and Remove back the temp-file-then-rename write
	// of an artifact.
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error

	// MkdirAll creates an artifact's output directory.
	MkdirAll(path string, perm fs.FileMode) error

	// Exists reports whether a source or config candidate is present.
	Exists(path string) bool
}

// OSFileSystem is the real disk. Paths are passed to the os package
// unchanged, so they may be absolute.
type OSFileSystem struct{}

// NewOSFileSystem returns the disk-backed FileSystem the CLI uses.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (*OSFileSystem) Open(name string) (fs.File, error) { return os.Open(name) }
func (*OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (*OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }
func (*OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }
func (*OSFileSystem) Remove(name string) error { return os.Remove(name) }
func (*OSFileSystem) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }
func (*OSFileSystem) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (*OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// Exists treats any stat error, not only ErrNotExist, as absence.
func (*OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
