package dashboard

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderboard/internal/config"
	"github.com/polkiloo/orderboard/internal/domain/model"
	"github.com/polkiloo/orderboard/internal/pkg/query"
)

// Module provides the order query cache and dashboard services.
var Module = fx.Provide(
	newOrderCache,
	newLoader,
	NewStateStore,
	NewService,
)

func newOrderCache(cfg *config.Config) *query.Client[[]model.Order] {
	return query.New[[]model.Order](query.Options{
		StaleTime: cfg.QueryStaleTime,
		CacheTime: cfg.QueryCacheTime,
	})
}

type loaderParams struct {
	fx.In

	Source OrderSource
	Cache  *query.Client[[]model.Order]
	Config *config.Config
	Logger *slog.Logger
}

func newLoader(p loaderParams) *Loader {
	return NewLoader(p.Source, p.Cache, p.Config.QueryWait, p.Logger)
}
