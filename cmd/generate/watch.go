/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"bennypowers.dev/tokensmith/cmd/project"
	"bennypowers.dev/tokensmith/internal/logger"
)

// DefaultDebounce groups the bursts of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// sourceWatcher reports changes to a set of files. fsnotify watches
// directories so that atomic saves, which replace the file, are seen.
type sourceWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu    sync.Mutex
	files map[string]bool
	dirs  map[string]bool
	timer *time.Timer

	changed chan struct{}
}

func newSourceWatcher(debounce time.Duration) (*sourceWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &sourceWatcher{
		watcher:  w,
		debounce: debounce,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		changed:  make(chan struct{}, 1),
	}, nil
}

// track adds files to the watched set.
func (sw *sourceWatcher) track(files []string) error {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		sw.files[abs] = true
		dir := filepath.Dir(abs)
		if sw.dirs[dir] {
			continue
		}
		if err := sw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		sw.dirs[dir] = true
	}
	return nil
}

func (sw *sourceWatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			sw.handle(event)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("file watcher error: %v", err)
		}
	}
}

func (sw *sourceWatcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if !sw.files[filepath.Clean(event.Name)] {
		return
	}
	logger.Debug("%s: %s", event.Op, event.Name)
	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.timer = time.AfterFunc(sw.debounce, func() {
		select {
		case sw.changed <- struct{}{}:
		default:
		}
	})
}

func (sw *sourceWatcher) close() error {
	sw.mu.Lock()
	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.mu.Unlock()
	return sw.watcher.Close()
}

// Watch regenerates whenever one of files or the config changes, until
// ctx is done. The config is re-read before each pass, and sources added
// by a regeneration are watched too.
func (g *Generator) Watch(ctx context.Context, files []string, debounce time.Duration) error {
	sw, err := newSourceWatcher(debounce)
	if err != nil {
		return err
	}
	defer sw.close()

	if g.Project.ConfigPath != "" {
		files = append(files, g.Project.ConfigPath)
	}
	if err := sw.track(files); err != nil {
		return err
	}
	go sw.run(ctx)

	logger.Info("watching %d files for changes", len(files))
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sw.changed:
			if g.Project.ConfigPath != "" {
				p, err := project.Open(g.Project.FS)
				if err != nil {
					logger.Error("%v", err)
					continue
				}
				g.Project = p
			}
			summary, err := g.Generate(ctx)
			if err != nil {
				logger.Error("%v", err)
			}
			if err := sw.track(summary.Files); err != nil {
				logger.Warn("%v", err)
			}
		}
	}
}
