package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// QueryCache exposes the subset of query cache functionality required by the worker.
type QueryCache interface {
	Collect() int
	Stale() []string
	Refetch(ctx context.Context, key string) error
}

// Refresher periodically drops expired queries and revalidates stale ones concurrently.
type Refresher struct {
	cache    QueryCache
	interval time.Duration
	workers  int
	logger   *slog.Logger

	jobs   chan string
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewRefresher constructs refresher worker pool.
func NewRefresher(cache QueryCache, interval time.Duration, workers int, logger *slog.Logger) *Refresher {
	if workers <= 0 {
		workers = 1
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Refresher{
		cache:    cache,
		interval: interval,
		workers:  workers,
		logger:   logger,
	}
}

// Start launches background processing.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.jobs = make(chan string, r.workers)

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx, r.jobs)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx, r.jobs)
}

// Stop waits for all workers to finish.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Refresher) dispatch(ctx context.Context, jobs chan<- string) {
	defer r.wg.Done()
	defer close(jobs)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx, jobs)
		}
	}
}

func (r *Refresher) sweep(ctx context.Context, jobs chan<- string) {
	if removed := r.cache.Collect(); removed > 0 {
		r.logger.Info("collected expired queries", slog.Int("count", removed))
	}
	for _, key := range r.cache.Stale() {
		select {
		case <-ctx.Done():
			return
		case jobs <- key:
		}
	}
}

func (r *Refresher) worker(ctx context.Context, jobs <-chan string) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case key, ok := <-jobs:
			if !ok {
				return
			}
			r.refresh(ctx, key)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context, key string) {
	if err := r.cache.Refetch(ctx, key); err != nil {
		r.logger.Error("query revalidation failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
