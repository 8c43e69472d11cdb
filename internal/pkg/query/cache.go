// Package query caches the results of keyed remote reads.
//
// Concurrent reads of one key share a single in-flight fetch. Data older than
// the stale time is served while a background fetch revalidates it, and entries
// nobody has read for the cache time are dropped by Collect.
package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Status describes the lifecycle of a cached query.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Fetcher performs the remote read behind a key.
type Fetcher[T any] func(ctx context.Context) (T, error)

// State is a point-in-time snapshot of a cached query.
type State[T any] struct {
	Status    Status
	Data      T
	HasData   bool
	Err       error
	UpdatedAt time.Time
	Fetching  bool
}

// Options tunes cache freshness.
type Options struct {
	// StaleTime is the age after which data is revalidated on read. Zero revalidates on every read.
	StaleTime time.Duration
	// CacheTime is how long an unread entry survives before Collect drops it.
	CacheTime time.Duration
}

type entry[T any] struct {
	fetch     Fetcher[T]
	ctx       context.Context
	data      T
	hasData   bool
	err       error
	resolved  bool
	fetching  bool
	updatedAt time.Time
	lastRead  time.Time
}

// Client is a concurrency-safe keyed query cache.
type Client[T any] struct {
	opts    Options
	now     func() time.Time
	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]*entry[T]
}

// New constructs a query cache.
func New[T any](opts Options) *Client[T] {
	if opts.CacheTime <= 0 {
		opts.CacheTime = 5 * time.Minute
	}
	return &Client[T]{
		opts:    opts,
		now:     time.Now,
		entries: make(map[string]*entry[T]),
	}
}

// Fetch returns the state for key, starting fn when the key is unknown, failed or stale.
// When no data is cached yet it waits up to wait for the fetch to settle; a stale
// hit is answered immediately while revalidation runs in the background.
func (c *Client[T]) Fetch(ctx context.Context, key string, fn Fetcher[T], wait time.Duration) State[T] {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry[T]{}
		c.entries[key] = e
	}
	e.fetch = fn
	e.ctx = context.WithoutCancel(ctx)
	e.lastRead = c.now()
	refetch := !e.resolved || e.err != nil || c.staleLocked(e)
	hadData := e.hasData
	c.mu.Unlock()

	if !refetch {
		return c.snapshot(key)
	}

	done := c.start(key, false)
	if hadData || done == nil || wait <= 0 {
		return c.snapshot(key)
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
	case <-ctx.Done():
	}
	return c.snapshot(key)
}

// Peek returns the cached state for key without triggering a fetch.
func (c *Client[T]) Peek(key string) (State[T], bool) {
	c.mu.Lock()
	_, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return State[T]{}, false
	}
	return c.snapshot(key), true
}

// Refetch revalidates key and blocks until the fetch settles or ctx ends.
func (c *Client[T]) Refetch(ctx context.Context, key string) error {
	done := c.start(key, true)
	if done == nil {
		return nil
	}
	select {
	case res := <-done:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stale lists keys whose data has outlived the stale time and are not being fetched.
func (c *Client[T]) Stale() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var keys []string
	for key, e := range c.entries {
		if e.resolved && !e.fetching && c.staleLocked(e) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Collect drops entries unread for longer than the cache time and returns how many were removed.
func (c *Client[T]) Collect() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if e.fetching {
			continue
		}
		if now.Sub(e.lastRead) >= c.opts.CacheTime {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Remove forgets key.
func (c *Client[T]) Remove(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// RemovePrefix forgets every key starting with prefix.
func (c *Client[T]) RemovePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of cached keys.
func (c *Client[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// start launches or joins the fetch for key. Without force it is a no-op when
// another caller already settled the key with fresh data.
func (c *Client[T]) start(key string, force bool) <-chan singleflight.Result {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok || e.fetch == nil {
		c.mu.Unlock()
		return nil
	}
	if !force && e.resolved && e.err == nil && !c.staleLocked(e) {
		c.mu.Unlock()
		return nil
	}
	e.fetching = true
	fn, ctx := e.fetch, e.ctx
	c.mu.Unlock()

	return c.group.DoChan(key, func() (any, error) {
		data, err := fn(ctx)
		c.store(key, data, err)
		return nil, err
	})
}

func (c *Client[T]) store(key string, data T, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return
	}
	e.fetching = false
	e.resolved = true
	e.updatedAt = c.now()
	if err != nil {
		e.err = err
		return
	}
	e.err = nil
	e.data = data
	e.hasData = true
}

func (c *Client[T]) snapshot(key string) State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return State[T]{Status: StatusLoading}
	}
	state := State[T]{
		Data:      e.data,
		HasData:   e.hasData,
		Err:       e.err,
		UpdatedAt: e.updatedAt,
		Fetching:  e.fetching,
	}
	switch {
	case !e.resolved:
		state.Status = StatusLoading
	case e.err != nil:
		state.Status = StatusError
	default:
		state.Status = StatusSuccess
	}
	return state
}

func (c *Client[T]) staleLocked(e *entry[T]) bool {
	if !e.resolved {
		return false
	}
	return c.now().Sub(e.updatedAt) >= c.opts.StaleTime
}
