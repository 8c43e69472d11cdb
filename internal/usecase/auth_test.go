package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainErrors "github.com/polkiloo/orderboard/internal/domain/errors"
	pkgAuth "github.com/polkiloo/orderboard/internal/pkg/auth"
	testhelpers "github.com/polkiloo/orderboard/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func newUseCase(repo *testhelpers.UserRepositoryStub) *AuthUseCase {
	return NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newUseCase(repo)

	ctx := context.Background()
	user, token, err := uc.Register(ctx, " Alice@Shop.vn ", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := repo.GetByEmail(ctx, "alice@shop.vn")
	if err != nil {
		t.Fatalf("expected normalized email in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if stored.AccessToken != nil {
		t.Fatalf("new admin must not hold an access token")
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	uc := newUseCase(testhelpers.NewUserRepositoryStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "bob@shop.vn", "secret"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "BOB@shop.vn", "secret"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := newUseCase(testhelpers.NewUserRepositoryStub())
	cases := []struct{ email, password string }{
		{"", "password"},
		{"not-an-email", "password"},
		{"user@shop.vn", ""},
		{"user@shop.vn", "short"},
	}
	for _, c := range cases {
		if _, _, err := uc.Register(context.Background(), c.email, c.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials for %q/%q, got %v", c.email, c.password, err)
		}
	}
}

func TestAuthUseCaseRegisterHasherError(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, newStrategyStub())
	if _, _, err := uc.Register(context.Background(), "user@shop.vn", "password"); err == nil {
		t.Fatal("expected hash error")
	}
}

func TestAuthUseCaseRegisterRepositoryError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Err = fmt.Errorf("storage unavailable")
	if _, _, err := newUseCase(repo).Register(context.Background(), "user@shop.vn", "password"); err == nil || err.Error() != "storage unavailable" {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newUseCase(repo)
	ctx := context.Background()
	email := testhelpers.RandomEmail()
	password := testhelpers.RandomASCIIString(8, 16)
	if _, _, err := uc.Register(ctx, email, password); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, email, "bad-password", nil); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "missing@shop.vn", password, nil); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}

	user, token, err := uc.Authenticate(ctx, email, password, nil)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
	if user.AccessToken != nil {
		t.Fatalf("expected no access token, got %q", *user.AccessToken)
	}
}

func TestAuthUseCaseAuthenticateStoresAccessToken(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newUseCase(repo)
	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "carol@shop.vn", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	upstream := "  upstream-token "
	user, _, err := uc.Authenticate(ctx, "carol@shop.vn", "123456", &upstream)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.AccessToken == nil || *user.AccessToken != "upstream-token" {
		t.Fatalf("expected trimmed access token on user, got %v", user.AccessToken)
	}

	session, err := uc.Session(ctx, user.ID)
	if err != nil {
		t.Fatalf("session returned error: %v", err)
	}
	if token, ok := session.Token(); !ok || token != "upstream-token" {
		t.Fatalf("expected stored access token, got %q", token)
	}
	if session.Email != "carol@shop.vn" {
		t.Fatalf("unexpected session email %q", session.Email)
	}

	blank := "   "
	if _, _, err := uc.Authenticate(ctx, "carol@shop.vn", "123456", &blank); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	session, _ = uc.Session(ctx, user.ID)
	if _, ok := session.Token(); !ok {
		t.Fatal("blank access token must keep the stored one")
	}
}

func TestAuthUseCaseAuthenticateAccessTokenError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newUseCase(repo)
	if _, _, err := uc.Register(context.Background(), "user@shop.vn", "password"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	repo.TokenErr = fmt.Errorf("write failed")
	upstream := "t"
	if _, _, err := uc.Authenticate(context.Background(), "user@shop.vn", "password", &upstream); err == nil {
		t.Fatal("expected access token write error")
	}
}

func TestAuthUseCaseAuthenticateIssueTokenError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	calls := 0
	strategy := testhelpers.StrategyStub{
		IssueFn: func(int64) (string, error) {
			calls++
			if calls > 1 {
				return "", fmt.Errorf("issue error")
			}
			return "token", nil
		},
	}
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, strategy)
	if _, _, err := uc.Register(context.Background(), "user@shop.vn", "password"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "user@shop.vn", "password", nil); err == nil {
		t.Fatal("expected issue error on authenticate")
	}
}

func TestAuthUseCaseAuthenticateRepositoryError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newUseCase(repo)
	if _, _, err := uc.Register(context.Background(), "user@shop.vn", "password"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	repo.Err = fmt.Errorf("storage unavailable")
	if _, _, err := uc.Authenticate(context.Background(), "user@shop.vn", "password", nil); err == nil || err.Error() != "storage unavailable" {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateValidation(t *testing.T) {
	uc := newUseCase(testhelpers.NewUserRepositoryStub())
	if _, _, err := uc.Authenticate(context.Background(), "", "pass", nil); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "user@shop.vn", "", nil); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestAuthUseCaseLogoutClearsAccessToken(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newUseCase(repo)
	ctx := context.Background()
	upstream := "upstream"
	if _, _, err := uc.Register(ctx, "dave@shop.vn", "password"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	user, _, err := uc.Authenticate(ctx, "dave@shop.vn", "password", &upstream)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	if err := uc.Logout(ctx, user.ID); err != nil {
		t.Fatalf("logout returned error: %v", err)
	}
	session, err := uc.Session(ctx, user.ID)
	if err != nil {
		t.Fatalf("session returned error: %v", err)
	}
	if _, ok := session.Token(); ok {
		t.Fatal("expected access token to be cleared")
	}

	if err := uc.Logout(ctx, 999); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAuthUseCaseSessionUnknownUser(t *testing.T) {
	uc := newUseCase(testhelpers.NewUserRepositoryStub())
	if _, err := uc.Session(context.Background(), 7); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := newUseCase(testhelpers.NewUserRepositoryStub())

	id, err := uc.ParseToken("token-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if _, err := uc.ParseToken("bad-token"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseGetByID(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newUseCase(repo)
	user, _, err := uc.Register(context.Background(), "erin@shop.vn", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	fetched, err := uc.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get by id returned error: %v", err)
	}
	if fetched.Email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, fetched.Email)
	}

	repo.Err = fmt.Errorf("read error")
	if _, err := uc.GetByID(context.Background(), 1); err == nil {
		t.Fatal("expected repository error")
	}
}
