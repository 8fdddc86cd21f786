/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNotFound is returned by Store.Get when no token has the path.
var ErrNotFound = errors.New("token not found")

// Store maps token paths to definitions and remembers the order in which
// paths were first inserted. Overwriting a path keeps its original
// position. A Store is not safe for concurrent writers.
type Store struct {
	index   map[string]int
	entries []Entry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Put inserts or overwrites the definition at path.
func (s *Store) Put(path Path, def Definition) {
	s.PutEntry(Entry{Path: path, Definition: def})
}

// PutEntry inserts or overwrites an entry, keyed by its path.
func (s *Store) PutEntry(e Entry) {
	e.Path = e.Path.Clone()
	key := e.Path.Key()
	if i, ok := s.index[key]; ok {
		s.entries[i] = e
		return
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, e)
}

// Get returns the definition at path, or an error wrapping ErrNotFound.
func (s *Store) Get(path Path) (Definition, error) {
	e, ok := s.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return e.Definition, nil
}

// Lookup returns the entry at path and whether it exists.
func (s *Store) Lookup(path Path) (Entry, bool) {
	i, ok := s.index[path.Key()]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Has reports whether a token exists at path.
func (s *Store) Has(path Path) bool {
	_, ok := s.index[path.Key()]
	return ok
}

// Len returns the number of distinct paths.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entries yields every path and definition in insertion order. The
// sequence may be iterated any number of times.
func (s *Store) Entries() iter.Seq2[Path, Definition] {
	return func(yield func(Path, Definition) bool) {
		for _, e := range s.entries {
			if !yield(e.Path, e.Definition) {
				return
			}
		}
	}
}

// All yields every entry with its metadata in insertion order.
func (s *Store) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range s.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Under yields the entries whose path starts with prefix, in insertion
// order.
func (s *Store) Under(prefix Path) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range s.entries {
			if e.Path.HasPrefix(prefix) && len(e.Path) > len(prefix) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	out := &Store{
		index:   make(map[string]int, len(s.index)),
		entries: make([]Entry, len(s.entries)),
	}
	for k, v := range s.index {
		out.index[k] = v
	}
	for i, e := range s.entries {
		e.Path = e.Path.Clone()
		if ref, ok := e.Definition.(Reference); ok {
			e.Definition = Reference{Target: ref.Target.Clone()}
		}
		out.entries[i] = e
	}
	return out
}
