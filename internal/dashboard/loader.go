package dashboard

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	domainErrors "github.com/polkiloo/orderboard/internal/domain/errors"
	"github.com/polkiloo/orderboard/internal/domain/model"
	"github.com/polkiloo/orderboard/internal/pkg/query"
)

const ordersKeyPrefix = "orders:"

// OrderSource reads orders from the remote order service.
type OrderSource interface {
	AllOrders(ctx context.Context, accessToken string) ([]model.Order, error)
}

// OrderCache is the query cache the loader reads through.
type OrderCache interface {
	Fetch(ctx context.Context, key string, fn query.Fetcher[[]model.Order], wait time.Duration) query.State[[]model.Order]
	Remove(key string)
}

// Loader fetches orders for a session through the query cache.
type Loader struct {
	source OrderSource
	cache  OrderCache
	wait   time.Duration
	logger *slog.Logger
}

// NewLoader constructs Loader. wait bounds how long Load blocks for a first result.
func NewLoader(source OrderSource, cache OrderCache, wait time.Duration, logger *slog.Logger) *Loader {
	return &Loader{source: source, cache: cache, wait: wait, logger: logger}
}

// QueryKey is the cache key for orders read with accessToken.
func QueryKey(accessToken string) string {
	sum := sha256.Sum256([]byte(accessToken))
	return ordersKeyPrefix + hex.EncodeToString(sum[:8])
}

// FetchOrders reads all orders with the session's access token.
// Upstream failures are logged and reported as ErrFetchFailed.
func (l *Loader) FetchOrders(ctx context.Context, session model.Session) ([]model.Order, error) {
	token, ok := session.Token()
	if !ok {
		return nil, domainErrors.ErrUnauthenticated
	}
	orders, err := l.source.AllOrders(ctx, token)
	if err != nil {
		l.logger.Error("error fetching orders", slog.String("error", err.Error()))
		return nil, domainErrors.ErrFetchFailed
	}
	return orders, nil
}

// Load returns the cached order query state for the session, fetching when needed.
func (l *Loader) Load(ctx context.Context, session model.Session) query.State[[]model.Order] {
	token, ok := session.Token()
	if !ok {
		return query.State[[]model.Order]{Status: query.StatusError, Err: domainErrors.ErrUnauthenticated}
	}
	return l.cache.Fetch(ctx, QueryKey(token), func(ctx context.Context) ([]model.Order, error) {
		return l.FetchOrders(ctx, session)
	}, l.wait)
}

// Forget drops the cached orders for the session.
func (l *Loader) Forget(session model.Session) {
	if token, ok := session.Token(); ok {
		l.cache.Remove(QueryKey(token))
	}
}
