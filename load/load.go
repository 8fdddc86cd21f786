/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads token sources into a single store. Each source is a
// layer mounted at an optional path prefix; later layers overwrite
// earlier tokens at the same path.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/parser"
	"bennypowers.dev/tokensmith/resolver"
	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/specifier"
	"bennypowers.dev/tokensmith/token"
)

var (
	// ErrLocalResolution indicates that local filesystem resolution failed.
	ErrLocalResolution = errors.New("local resolution failed")

	// ErrNetworkFallback indicates that the CDN network fallback also failed.
	ErrNetworkFallback = errors.New("network fallback failed")

	// ErrNoFiles indicates that a glob source matched nothing.
	ErrNoFiles = errors.New("no files match")
)

// Layer is one token source.
type Layer struct {
	// Source is a file path, doublestar glob, http(s) URL, or npm:/jsr:
	// package file.
	Source string

	// Mount prefixes every token path from this source, e.g. theme.light.
	Mount token.Path

	// Rewrites relocate reference targets written relative to another
	// layer, e.g. colors → brand.colors.
	Rewrites []Rewrite

	// GroupMarkers override Options.GroupMarkers for this layer.
	GroupMarkers []string
}

// Rewrite replaces the From prefix of a reference target with To.
type Rewrite struct {
	From token.Path
	To   token.Path
}

// Options configures how tokens are loaded.
type Options struct {
	// Root is the directory relative sources are resolved against.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// SchemaVersion overrides auto-detection from file content.
	SchemaVersion schema.Version

	// GroupMarkers are token names that can be both tokens and groups.
	GroupMarkers []string

	// Fetcher reads URL sources and serves as network fallback for
	// package specifiers missing from node_modules. Nil disables network
	// access.
	Fetcher Fetcher

	// FetchTimeout bounds each network fetch. Defaults to DefaultTimeout.
	FetchTimeout time.Duration
}

// Result is a loaded store plus the local files it was read from.
type Result struct {
	Store *token.Store

	// Files lists local files in load order, for watching.
	Files []string
}

type document struct {
	name    string
	content []byte
	local   bool
}

// Load reads every layer in order, mounts its tokens and applies group
// $extends across the combined store.
func Load(ctx context.Context, layers []Layer, opts Options) (*Result, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = abs
	}
	l := &loader{fs: filesystem, root: root, opts: opts}
	if l.opts.FetchTimeout == 0 {
		l.opts.FetchTimeout = DefaultTimeout
	}

	res := &Result{Store: token.NewStore()}
	var extensions []token.Extension
	for i, layer := range layers {
		docs, err := l.documents(ctx, layer)
		if err != nil {
			return nil, fmt.Errorf("failed to load %q: %w", layer.Source, err)
		}
		markers := layer.GroupMarkers
		if len(markers) == 0 {
			markers = opts.GroupMarkers
		}
		for _, doc := range docs {
			parsed, err := parser.Parse(doc.content, parser.Options{
				SchemaVersion: opts.SchemaVersion,
				GroupMarkers:  markers,
				FilePath:      doc.name,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", doc.name, err)
			}
			for _, e := range parsed.Entries {
				e.Path = layer.Mount.Join(e.Path...)
				e.Layer = i
				if ref, ok := e.Definition.(token.Reference); ok {
					e.Definition = token.Reference{Target: layer.rewrite(ref.Target)}
				}
				res.Store.PutEntry(e)
			}
			for _, ext := range parsed.Extensions {
				ext.Group = layer.Mount.Join(ext.Group...)
				ext.Base = layer.rewrite(ext.Base)
				extensions = append(extensions, ext)
			}
			if doc.local {
				res.Files = append(res.Files, doc.name)
			}
			logger.Debug("loaded %d tokens from %s (%s)", len(parsed.Entries), doc.name, parsed.Version)
		}
	}

	if err := resolver.ExpandExtends(res.Store, extensions); err != nil {
		return nil, fmt.Errorf("failed to resolve $extends: %w", err)
	}
	return res, nil
}

// rewrite applies the first matching rewrite to target.
func (l Layer) rewrite(target token.Path) token.Path {
	for _, r := range l.Rewrites {
		if target.HasPrefix(r.From) {
			return r.To.Join(target[len(r.From):]...)
		}
	}
	return target
}

type loader struct {
	fs   fs.FileSystem
	root string
	opts Options
}

// documents reads the content behind one layer's source.
func (l *loader) documents(ctx context.Context, layer Layer) ([]document, error) {
	spec := specifier.Parse(layer.Source)
	switch spec.Kind {
	case specifier.KindURL:
		if l.opts.Fetcher == nil {
			return nil, fmt.Errorf("network access is disabled for %s", spec.Raw)
		}
		content, err := l.fetch(ctx, spec.Raw)
		if err != nil {
			return nil, err
		}
		return []document{{name: spec.Raw, content: content}}, nil

	case specifier.KindGlob:
		files, err := specifier.Expand(l.fs, l.root, spec)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("%w %s", ErrNoFiles, spec.Raw)
		}
		docs := make([]document, 0, len(files))
		for _, f := range files {
			content, err := l.fs.ReadFile(f)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", f, err)
			}
			docs = append(docs, document{name: f, content: content, local: true})
		}
		return docs, nil
	}

	path, err := specifier.Resolve(l.fs, l.root, spec)
	if err != nil {
		return l.fromCDN(ctx, spec, err)
	}
	content, err := l.fs.ReadFile(path)
	if err != nil {
		return l.fromCDN(ctx, spec, fmt.Errorf("failed to read %s: %w", path, err))
	}
	return []document{{name: path, content: content, local: true}}, nil
}

// fromCDN falls back to the package's CDN URL. It returns localErr when
// there is no fetcher or the specifier is not a package file.
func (l *loader) fromCDN(ctx context.Context, spec specifier.Specifier, localErr error) ([]document, error) {
	if l.opts.Fetcher == nil {
		return nil, localErr
	}
	url, ok := spec.CDNURL()
	if !ok {
		return nil, localErr
	}
	logger.Info("%s not found locally, fetching %s", spec.Raw, url)
	content, err := l.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w (%w), %w: %w", ErrLocalResolution, localErr, ErrNetworkFallback, err)
	}
	return []document{{name: url, content: content}}, nil
}

func (l *loader) fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.opts.FetchTimeout)
	defer cancel()
	return l.opts.Fetcher.Fetch(ctx, url)
}
