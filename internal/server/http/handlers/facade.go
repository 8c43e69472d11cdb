package handlers

import (
	"context"

	"github.com/polkiloo/orderboard/internal/dashboard"
	"github.com/polkiloo/orderboard/internal/domain/model"
	"github.com/polkiloo/orderboard/internal/pkg/query"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string, accessToken *string) (string, error)
	Logout(ctx context.Context, userID int64) error
	ParseToken(token string) (int64, error)
}

// DashboardFacade exposes the per-admin order dashboard.
type DashboardFacade interface {
	View(ctx context.Context, userID int64, overrides dashboard.Filters) (dashboard.View, error)
	Orders(ctx context.Context, userID int64) (query.State[[]model.Order], error)
	Search(ctx context.Context, userID int64, column, value string) error
	Reset(ctx context.Context, userID int64, column string) error
	Select(ctx context.Context, userID int64, key string) error
}

// AdminFacade aggregates the full set of operations used across handlers.
type AdminFacade interface {
	AuthFacade
	DashboardFacade
}
