/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"slices"

	"bennypowers.dev/tokensmith/token"
)

// ExpandExtends applies group $extends declarations to store. For every
// token under an extension's Base that the extending Group does not define
// itself, a Reference to the base token is added under Group. Chains are
// applied base-first, so a group extending an extended group inherits
// both. It must run before Resolve.
func ExpandExtends(store *token.Store, extensions []token.Extension) error {
	if len(extensions) == 0 {
		return nil
	}
	if cycle := findExtensionCycle(extensions); cycle != nil {
		return &CyclicReferenceError{Cycle: cycle}
	}

	for _, ext := range sortExtensions(extensions) {
		var inherited []token.Entry
		for e := range store.Under(ext.Base) {
			rel := e.Path[len(ext.Base):]
			path := ext.Group.Join(rel...)
			if store.Has(path) {
				continue
			}
			inherited = append(inherited, token.Entry{
				Path:          path,
				Definition:    token.Reference{Target: e.Path.Clone()},
				Type:          e.Type,
				Description:   e.Description,
				FilePath:      ext.FilePath,
				Layer:         e.Layer,
				SchemaVersion: e.SchemaVersion,
			})
		}
		if len(inherited) == 0 && !hasAny(store, ext.Base) {
			return &UnresolvedReferenceError{Path: ext.Group.Clone(), Target: ext.Base.Clone()}
		}
		for _, e := range inherited {
			store.PutEntry(e)
		}
	}
	return nil
}

func hasAny(store *token.Store, prefix token.Path) bool {
	for range store.Under(prefix) {
		return true
	}
	return false
}

// findExtensionCycle detects circular $extends chains. Returns the cycle
// with its first group repeated, or nil.
func findExtensionCycle(extensions []token.Extension) []token.Path {
	extendsMap := make(map[string]token.Path, len(extensions))
	for _, ext := range extensions {
		extendsMap[ext.Group.Key()] = ext.Base
	}

	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	var dfs func(node token.Path, path []token.Path) []token.Path
	dfs = func(node token.Path, path []token.Path) []token.Path {
		visited[node.Key()] = true
		recStack[node.Key()] = true
		path = append(path, node)

		if next, ok := extendsMap[node.Key()]; ok {
			if recStack[next.Key()] {
				start := slices.IndexFunc(path, next.Equal)
				return append(slices.Clone(path[start:]), next)
			}
			if !visited[next.Key()] {
				if cycle := dfs(next, path); cycle != nil {
					return cycle
				}
			}
		}

		recStack[node.Key()] = false
		return nil
	}

	for _, ext := range extensions {
		if !visited[ext.Group.Key()] {
			if cycle := dfs(ext.Group, nil); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// sortExtensions orders extensions so that base groups are expanded
// before the groups extending them. Source order breaks ties.
func sortExtensions(extensions []token.Extension) []token.Extension {
	extendsMap := make(map[string]token.Path, len(extensions))
	for _, ext := range extensions {
		extendsMap[ext.Group.Key()] = ext.Base
	}

	depths := make(map[string]int)
	var depth func(p token.Path) int
	depth = func(p token.Path) int {
		if d, ok := depths[p.Key()]; ok {
			return d
		}
		d := 0
		if next, ok := extendsMap[p.Key()]; ok {
			d = depth(next) + 1
		}
		depths[p.Key()] = d
		return d
	}

	out := slices.Clone(extensions)
	slices.SortStableFunc(out, func(a, b token.Extension) int {
		return depth(a.Group) - depth(b.Group)
	})
	return out
}
