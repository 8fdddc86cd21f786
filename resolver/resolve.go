/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"iter"
	"slices"

	"bennypowers.dev/tokensmith/token"
)

// ModeSegment is the reference segment replaced by Options.Mode, so that
// {theme.$mode.bg.primary} can serve both light and dark runs.
const ModeSegment = "$mode"

// Options configures resolution.
type Options struct {
	// Mode substitutes every $mode segment of a reference target.
	Mode string
}

// Result is the fully resolved copy of a store, in the store's order.
type Result struct {
	tokens []token.Resolved
	index  map[string]int
}

// Tokens yields every resolved token in store order.
func (r *Result) Tokens() iter.Seq[token.Resolved] {
	return slices.Values(r.tokens)
}

// Len returns the number of resolved tokens.
func (r *Result) Len() int {
	return len(r.tokens)
}

// Get returns the resolved token at path.
func (r *Result) Get(path token.Path) (token.Resolved, bool) {
	i, ok := r.index[path.Key()]
	if !ok {
		return token.Resolved{}, false
	}
	return r.tokens[i], true
}

type state int

const (
	unvisited state = iota
	inProgress
	done
)

type resolution struct {
	value token.Literal
	typ   string
	chain []token.Path
}

type resolver struct {
	store *token.Store
	opts  Options
	state map[string]state
	memo  map[string]resolution
	stack []token.Path
}

// Resolve follows every reference in store and returns a store-ordered
// copy in which each token holds a literal. The store is not modified.
// Each path is resolved once; a token referenced many times is not
// re-walked. The first unresolved or cyclic reference in store order is
// returned as an error.
func Resolve(store *token.Store, opts Options) (*Result, error) {
	r := &resolver{
		store: store,
		opts:  opts,
		state: make(map[string]state, store.Len()),
		memo:  make(map[string]resolution, store.Len()),
	}

	res := &Result{
		tokens: make([]token.Resolved, 0, store.Len()),
		index:  make(map[string]int, store.Len()),
	}
	for e := range store.All() {
		out, err := r.resolve(e.Path)
		if err != nil {
			return nil, err
		}
		res.index[e.Path.Key()] = len(res.tokens)
		res.tokens = append(res.tokens, token.Resolved{
			Path:        e.Path.Clone(),
			Value:       out.value,
			Type:        out.typ,
			Description: e.Description,
			Chain:       out.chain,
		})
	}
	return res, nil
}

func (r *resolver) resolve(path token.Path) (resolution, error) {
	key := path.Key()
	switch r.state[key] {
	case done:
		return r.memo[key], nil
	case inProgress:
		start := slices.IndexFunc(r.stack, path.Equal)
		cycle := make([]token.Path, 0, len(r.stack)-start+1)
		for _, p := range r.stack[start:] {
			cycle = append(cycle, p.Clone())
		}
		return resolution{}, &CyclicReferenceError{Cycle: append(cycle, path.Clone())}
	}

	entry, ok := r.store.Lookup(path)
	if !ok {
		// callers check existence before descending
		panic(fmt.Sprintf("resolver invariant violated: %s is not in the store", path))
	}

	var out resolution
	switch def := entry.Definition.(type) {
	case token.Literal:
		out = resolution{value: def, typ: entry.Type}

	case token.Reference:
		target, err := r.target(path, def.Target)
		if err != nil {
			return resolution{}, err
		}

		r.state[key] = inProgress
		r.stack = append(r.stack, path)
		next, err := r.resolve(target)
		r.stack = r.stack[:len(r.stack)-1]
		if err != nil {
			return resolution{}, err
		}

		out = resolution{
			value: next.value,
			typ:   entry.Type,
			chain: append([]token.Path{target}, next.chain...),
		}
		if out.typ == "" {
			out.typ = next.typ
		}

	default:
		return resolution{}, fmt.Errorf("%s: unsupported definition %T", path, def)
	}

	r.state[key] = done
	r.memo[key] = out
	return out, nil
}

// target applies mode substitution and checks that the target exists.
func (r *resolver) target(from, target token.Path) (token.Path, error) {
	if r.opts.Mode == "" && slices.Contains(target, ModeSegment) {
		return nil, &UnresolvedReferenceError{Path: from.Clone(), Target: target.Clone()}
	}
	target = substituteMode(target, r.opts.Mode)
	if !r.store.Has(target) {
		return nil, &UnresolvedReferenceError{Path: from.Clone(), Target: target.Clone()}
	}
	return target, nil
}
