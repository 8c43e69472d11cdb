package repository

import (
	"context"

	"github.com/polkiloo/orderboard/internal/domain/model"
)

// UserRepository describes persistence operations for dashboard administrators.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	SetAccessToken(ctx context.Context, id int64, token *string) error
}
