/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pipeline runs one generation: resolve and normalize a store
// once, then emit every target backend concurrently over the shared,
// read-only result.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/sourcegraph/conc"

	"bennypowers.dev/tokensmith/emit"
	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/normalize"
	"bennypowers.dev/tokensmith/resolver"
	"bennypowers.dev/tokensmith/token"
)

// Target is one backend to emit.
type Target struct {
	Backend emit.Backend
	Meta    emit.Meta
}

// Request describes a generation run.
type Request struct {
	Store     *token.Store
	Mode      string
	Normalize normalize.Options
	Targets   []Target
}

// Artifact is the outcome of one target. Exactly one of Data and Err is
// set.
type Artifact struct {
	Backend  string
	FileName string
	Data     []byte
	Err      error
}

// Run resolves and normalizes req.Store, then emits each target in its
// own goroutine. A resolution or typing failure is returned as the error
// and no artifacts are produced. Backend failures are reported per
// artifact. Targets that have not started when ctx is cancelled carry
// ctx.Err().
func Run(ctx context.Context, req Request) ([]Artifact, error) {
	res, err := resolver.Resolve(req.Store, resolver.Options{Mode: req.Mode})
	if err != nil {
		return nil, fmt.Errorf("resolving tokens: %w", err)
	}
	set, err := normalize.Normalize(res, req.Normalize)
	if err != nil {
		return nil, fmt.Errorf("normalizing tokens: %w", err)
	}
	logger.Debug("resolved %d tokens for mode %q", set.Len(), req.Mode)

	artifacts := make([]Artifact, len(req.Targets))
	var wg conc.WaitGroup
	for i, target := range req.Targets {
		wg.Go(func() {
			artifacts[i] = emitOne(ctx, set, req.Mode, target)
		})
	}
	wg.Wait()
	return artifacts, nil
}

func emitOne(ctx context.Context, set *normalize.Set, mode string, t Target) Artifact {
	a := Artifact{Backend: t.Backend.Name, FileName: t.Meta.FileName}
	if a.FileName == "" {
		a.FileName = t.Backend.FileName
	}
	if err := ctx.Err(); err != nil {
		a.Err = err
		return a
	}
	meta := t.Meta
	if meta.Mode == "" {
		meta.Mode = mode
	}
	a.Data, a.Err = emit.Emit(set, t.Backend, meta)
	if a.Err != nil {
		logger.Debug("backend %s failed: %v", a.Backend, a.Err)
	}
	return a
}

// Failed joins the errors of every failed artifact, or returns nil.
func Failed(artifacts []Artifact) error {
	var errs []error
	for _, a := range artifacts {
		if a.Err != nil {
			errs = append(errs, a.Err)
		}
	}
	return errors.Join(errs...)
}
