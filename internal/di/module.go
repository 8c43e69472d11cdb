package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/orderboard/internal/adapter/orderservice"
	"github.com/polkiloo/orderboard/internal/app"
	"github.com/polkiloo/orderboard/internal/config"
	"github.com/polkiloo/orderboard/internal/dashboard"
	"github.com/polkiloo/orderboard/internal/logger"
	"github.com/polkiloo/orderboard/internal/pkg/auth"
	"github.com/polkiloo/orderboard/internal/server/http/handlers"
	"github.com/polkiloo/orderboard/internal/server/http/router"
	"github.com/polkiloo/orderboard/internal/storage/postgres"
	"github.com/polkiloo/orderboard/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		orderservice.Module,
		usecase.Module,
		fx.Provide(func(client orderservice.Client) dashboard.OrderSource { return client }),
		dashboard.Module,
		fx.Provide(
			func(f *app.AdminFacade) handlers.AdminFacade { return f },
			func(s *postgres.Storage) handlers.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
