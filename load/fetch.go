/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/internal/version"
)

const (
	// DefaultTimeout is the maximum time to wait for a network fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize is the maximum allowed response size (10 MB).
	DefaultMaxSize int64 = 10 * 1024 * 1024

	// DefaultCacheSize is how many fetched documents a CachingFetcher keeps.
	DefaultCacheSize = 64
)

// Fetcher fetches content from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches content over HTTP with size limiting.
type HTTPFetcher struct {
	maxSize int64
	client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with the given maximum response size.
func NewHTTPFetcher(maxSize int64) *HTTPFetcher {
	return &HTTPFetcher{
		maxSize: maxSize,
		client:  &http.Client{},
	}
}

// Fetch fetches content from the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("timeout fetching %s: %w", url, err)
		}
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	if int64(len(content)) > f.maxSize {
		return nil, fmt.Errorf("response from %s exceeds maximum size of %d bytes", url, f.maxSize)
	}
	return content, nil
}

// CachingFetcher remembers successful fetches so that watch mode and
// multi-brand runs download each remote source once.
type CachingFetcher struct {
	next  Fetcher
	cache *lru.Cache[string, []byte]
}

// NewCachingFetcher wraps next with an LRU cache of size entries.
func NewCachingFetcher(next Fetcher, size int) (*CachingFetcher, error) {
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("creating fetch cache: %w", err)
	}
	return &CachingFetcher{next: next, cache: cache}, nil
}

// Fetch returns the cached body for url or fetches it. Failures are not
// cached.
func (f *CachingFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if content, ok := f.cache.Get(url); ok {
		logger.Debug("fetch cache hit: %s", url)
		return content, nil
	}
	content, err := f.next.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	f.cache.Add(url, content)
	return content, nil
}

// Purge empties the cache.
func (f *CachingFetcher) Purge() {
	f.cache.Purge()
}
