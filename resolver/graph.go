/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver follows token references to literal values and
// exposes the dependency graph between tokens.
package resolver

import (
	"fmt"
	"slices"

	"bennypowers.dev/tokensmith/token"
)

// DependencyGraph represents a directed graph of token references. Nodes
// are visited in store order so results are deterministic.
type DependencyGraph struct {
	order        []token.Path
	dependencies map[string][]token.Path
	dependents   map[string][]token.Path
}

// BuildDependencyGraph builds the reference graph of a store. $mode
// segments are substituted with opts.Mode when it is set.
func BuildDependencyGraph(store *token.Store, opts Options) *DependencyGraph {
	g := &DependencyGraph{
		order:        make([]token.Path, 0, store.Len()),
		dependencies: make(map[string][]token.Path),
		dependents:   make(map[string][]token.Path),
	}

	for path, def := range store.Entries() {
		g.order = append(g.order, path)
		ref, ok := def.(token.Reference)
		if !ok {
			continue
		}
		target := substituteMode(ref.Target, opts.Mode)
		g.dependencies[path.Key()] = append(g.dependencies[path.Key()], target)
		g.dependents[target.Key()] = append(g.dependents[target.Key()], path)
	}
	return g
}

func substituteMode(target token.Path, mode string) token.Path {
	if mode == "" || !slices.Contains(target, ModeSegment) {
		return target
	}
	out := target.Clone()
	for i, seg := range out {
		if seg == ModeSegment {
			out[i] = mode
		}
	}
	return out
}

// Dependencies returns the paths the given token references.
func (g *DependencyGraph) Dependencies(path token.Path) []token.Path {
	return g.dependencies[path.Key()]
}

// Dependents returns the paths that reference the given token.
func (g *DependencyGraph) Dependents(path token.Path) []token.Path {
	return g.dependents[path.Key()]
}

// HasCycle returns true if the graph contains a circular reference.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the first cycle in store order, with the first path
// repeated at the end, or nil.
func (g *DependencyGraph) FindCycle() []token.Path {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.order {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node token.Path, visited, recStack map[string]bool, path []token.Path) []token.Path {
	key := node.Key()
	if recStack[key] {
		start := slices.IndexFunc(path, node.Equal)
		if start == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(slices.Clone(path[start:]), node)
	}
	if visited[key] {
		return nil
	}

	visited[key] = true
	recStack[key] = true
	path = append(path, node)

	for _, dep := range g.dependencies[key] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[key] = false
	return nil
}

// TopologicalSort returns paths with every dependency before its
// dependents. It returns a *CyclicReferenceError if the graph has a cycle.
func (g *DependencyGraph) TopologicalSort() ([]token.Path, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, &CyclicReferenceError{Cycle: cycle}
	}

	visited := make(map[string]bool)
	result := make([]token.Path, 0, len(g.order))
	for _, node := range g.order {
		if !visited[node.Key()] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}
	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node token.Path, visited map[string]bool, stack *[]token.Path) {
	visited[node.Key()] = true
	for _, dep := range g.dependencies[node.Key()] {
		if !visited[dep.Key()] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}
	*stack = append(*stack, node)
}
