package app

import (
	"context"

	"github.com/polkiloo/orderboard/internal/dashboard"
	"github.com/polkiloo/orderboard/internal/domain/model"
	"github.com/polkiloo/orderboard/internal/pkg/query"
	"github.com/polkiloo/orderboard/internal/usecase"
)

// AdminFacade joins admin accounts with the per-admin dashboard.
type AdminFacade struct {
	auth      *usecase.AuthUseCase
	dashboard *dashboard.Service
}

func NewAdminFacade(auth *usecase.AuthUseCase, dashboard *dashboard.Service) *AdminFacade {
	return &AdminFacade{auth: auth, dashboard: dashboard}
}

func (f *AdminFacade) Register(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, email, password)
	return token, err
}

func (f *AdminFacade) Authenticate(ctx context.Context, email, password string, accessToken *string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password, accessToken)
	return token, err
}

func (f *AdminFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

// Logout drops the stored access token along with everything cached for it.
func (f *AdminFacade) Logout(ctx context.Context, userID int64) error {
	session, err := f.auth.Session(ctx, userID)
	if err != nil {
		return err
	}
	if err := f.auth.Logout(ctx, userID); err != nil {
		return err
	}
	f.dashboard.Forget(userID, session)
	return nil
}

func (f *AdminFacade) View(ctx context.Context, userID int64, overrides dashboard.Filters) (dashboard.View, error) {
	session, err := f.auth.Session(ctx, userID)
	if err != nil {
		return dashboard.View{}, err
	}
	return f.dashboard.View(ctx, userID, session, overrides), nil
}

func (f *AdminFacade) Orders(ctx context.Context, userID int64) (query.State[[]model.Order], error) {
	session, err := f.auth.Session(ctx, userID)
	if err != nil {
		return query.State[[]model.Order]{}, err
	}
	return f.dashboard.Orders(ctx, session), nil
}

func (f *AdminFacade) Search(_ context.Context, userID int64, column, value string) error {
	return f.dashboard.Search(userID, column, value)
}

func (f *AdminFacade) Reset(_ context.Context, userID int64, column string) error {
	return f.dashboard.Reset(userID, column)
}

func (f *AdminFacade) Select(_ context.Context, userID int64, key string) error {
	return f.dashboard.Select(userID, key)
}
