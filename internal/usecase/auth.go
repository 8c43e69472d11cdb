package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/orderboard/internal/domain/errors"
	"github.com/polkiloo/orderboard/internal/domain/model"
	"github.com/polkiloo/orderboard/internal/domain/repository"
	pkgAuth "github.com/polkiloo/orderboard/internal/pkg/auth"
)

// AuthUseCase handles admin accounts, session tokens and the stored order service credential.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new admin and returns a session token.
func (u *AuthUseCase) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	email = NormalizeEmail(email)
	if !ValidateCredentials(email, password) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns a session token. A non-empty
// accessToken replaces the stored order service credential.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string, accessToken *string) (*model.User, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if accessToken != nil {
		if trimmed := strings.TrimSpace(*accessToken); trimmed != "" {
			if err := u.users.SetAccessToken(ctx, usr.ID, &trimmed); err != nil {
				return nil, "", err
			}
			usr.AccessToken = &trimmed
		}
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Logout clears the stored order service credential for the admin.
func (u *AuthUseCase) Logout(ctx context.Context, id int64) error {
	return u.users.SetAccessToken(ctx, id, nil)
}

// Session returns the session view of the admin.
func (u *AuthUseCase) Session(ctx context.Context, id int64) (model.Session, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return model.Session{}, err
	}
	return usr.Session(), nil
}

// ParseToken extracts the admin id from a session token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches an admin by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
