package test

import (
	"context"
	"sync"

	"github.com/polkiloo/orderboard/internal/dashboard"
	"github.com/polkiloo/orderboard/internal/domain/model"
	"github.com/polkiloo/orderboard/internal/pkg/query"
)

// DashboardFacadeStub provides controllable behaviour for dashboard endpoints.
type DashboardFacadeStub struct {
	ViewFn   func(context.Context, int64, dashboard.Filters) (dashboard.View, error)
	OrdersFn func(context.Context, int64) (query.State[[]model.Order], error)
	SearchFn func(context.Context, int64, string, string) error
	ResetFn  func(context.Context, int64, string) error
	SelectFn func(context.Context, int64, string) error
}

// View delegates to override or returns an empty dashboard.
func (s DashboardFacadeStub) View(ctx context.Context, userID int64, overrides dashboard.Filters) (dashboard.View, error) {
	if s.ViewFn != nil {
		return s.ViewFn(ctx, userID, overrides)
	}
	return dashboard.View{Title: dashboard.Title, Columns: dashboard.Columns(overrides)}, nil
}

// Orders returns a successful state with one order unless overridden.
func (s DashboardFacadeStub) Orders(ctx context.Context, userID int64) (query.State[[]model.Order], error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return query.State[[]model.Order]{
		Status:  query.StatusSuccess,
		Data:    []model.Order{{ID: "1"}},
		HasData: true,
	}, nil
}

// Search delegates to override.
func (s DashboardFacadeStub) Search(ctx context.Context, userID int64, column, value string) error {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, userID, column, value)
	}
	return nil
}

// Reset delegates to override.
func (s DashboardFacadeStub) Reset(ctx context.Context, userID int64, column string) error {
	if s.ResetFn != nil {
		return s.ResetFn(ctx, userID, column)
	}
	return nil
}

// Select delegates to override.
func (s DashboardFacadeStub) Select(ctx context.Context, userID int64, key string) error {
	if s.SelectFn != nil {
		return s.SelectFn(ctx, userID, key)
	}
	return nil
}

// OrderSourceStub serves orders to the dashboard loader.
type OrderSourceStub struct {
	Orders []model.Order
	Err    error
	AllFn  func(context.Context, string) ([]model.Order, error)
}

// AllOrders returns configured orders or error.
func (s OrderSourceStub) AllOrders(ctx context.Context, accessToken string) ([]model.Order, error) {
	if s.AllFn != nil {
		return s.AllFn(ctx, accessToken)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Orders, nil
}

// QueryCacheStub records refresher interactions with the query cache.
type QueryCacheStub struct {
	StaleKeys []string
	RefetchFn func(context.Context, string) error

	mu        sync.Mutex
	collects  int
	refetched []string
}

// Collect counts invocations.
func (s *QueryCacheStub) Collect() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collects++
	return 0
}

// Stale hands out the configured keys once.
func (s *QueryCacheStub) Stale() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := s.StaleKeys
	s.StaleKeys = nil
	return keys
}

// Refetch records key and delegates to override.
func (s *QueryCacheStub) Refetch(ctx context.Context, key string) error {
	s.mu.Lock()
	s.refetched = append(s.refetched, key)
	s.mu.Unlock()
	if s.RefetchFn != nil {
		return s.RefetchFn(ctx, key)
	}
	return nil
}

// Collects returns how many sweeps ran.
func (s *QueryCacheStub) Collects() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collects
}

// Refetched returns the keys revalidated so far.
func (s *QueryCacheStub) Refetched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.refetched...)
}
