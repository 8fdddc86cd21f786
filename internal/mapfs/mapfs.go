/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory FileSystem for tests.
package mapfs

import (
	"io/fs"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// epoch is the modification time of every file, so listings are stable.
var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// MapFileSystem is a FileSystem over fstest.MapFS. Directories are
// implicit in file paths. It counts writes per file so tests can tell an
// unchanged artifact was left alone.
type MapFileSystem struct {
	mu     sync.RWMutex
	files  fstest.MapFS
	writes map[string]int
}

// New returns an empty filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		files:  make(fstest.MapFS),
		writes: make(map[string]int),
	}
}

// AddFile seeds a file without counting it as a write.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key(p)] = &fstest.MapFile{Data: []byte(content), Mode: mode, ModTime: epoch}
}

// Writes returns how many times the file at p was written or renamed into
// place.
func (m *MapFileSystem) Writes(p string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes[key(p)]
}

func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(name)
	if err := m.checkParent("open", k); err != nil {
		return err
	}
	m.files[k] = &fstest.MapFile{Data: append([]byte(nil), data...), Mode: perm, ModTime: epoch}
	m.writes[k]++
	return nil
}

func (m *MapFileSystem) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	from, to := key(oldpath), key(newpath)
	file, ok := m.files[from]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if err := m.checkParent("rename", to); err != nil {
		return err
	}
	delete(m.files, from)
	m.files[to] = file
	m.writes[to]++
	return nil
}

func (m *MapFileSystem) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(name)
	if _, ok := m.files[k]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, k)
	return nil
}

// MkdirAll only rejects paths that cross a file; directories need no
// entry of their own.
func (m *MapFileSystem) MkdirAll(p string, _ fs.FileMode) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for dir := key(p); dir != "." && dir != ""; dir = path.Dir(dir) {
		if _, ok := m.files[dir]; ok {
			return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
		}
	}
	return nil
}

func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, key(name))
}

func (m *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadDir(m.files, key(name))
}

func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.files, key(name))
}

func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(key(name))
}

// Exists reports whether p is a file or a directory holding one.
func (m *MapFileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	k := key(p)
	if _, ok := m.files[k]; ok || k == "." {
		return true
	}
	for name := range m.files {
		if strings.HasPrefix(name, k+"/") {
			return true
		}
	}
	return false
}

func (m *MapFileSystem) checkParent(op, k string) error {
	if dir := path.Dir(k); dir != "." {
		if _, ok := m.files[dir]; ok {
			return &fs.PathError{Op: op, Path: k, Err: fs.ErrInvalid}
		}
	}
	return nil
}

// key maps an absolute or relative path onto the unrooted form fs.FS
// expects.
func key(p string) string {
	cleaned := strings.TrimPrefix(path.Clean("/"+p), "/")
	if cleaned == "" {
		return "."
	}
	return cleaned
}
