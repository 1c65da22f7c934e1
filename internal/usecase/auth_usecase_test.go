package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillswap/internal/domain/user"
	"skillswap/internal/pkg/jwt"
	ucauth "skillswap/internal/usecase/auth"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: make(map[uuid.UUID]user.User), byEmail: make(map[string]user.User)}
}

func (m *mockUserRepo) CreateUser(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func testJWT(refreshTTL time.Duration) jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, refreshTTL)
}

func TestAuth_Register_IssuesTokenPair(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), testJWT(time.Hour))

	usr, access, refresh, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    "ana@example.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.ID == uuid.Nil {
		t.Fatalf("expected persisted user id")
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens, got access=%q refresh=%q", access, refresh)
	}
	if access == refresh {
		t.Fatalf("access and refresh tokens must differ")
	}
}

func TestAuth_Refresh_RotatesTokens(t *testing.T) {
	repo := newMockUserRepo()
	uc := NewAuthUsecase(repo, testJWT(time.Hour))

	_, _, refresh, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    "ana@example.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	access2, refresh2, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Fatalf("expected a fresh token pair")
	}
}

func TestAuth_Refresh_RejectsAccessToken(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), testJWT(time.Hour))

	_, access, _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    "ana@example.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for access token, got %v", err)
	}
}

func TestAuth_Refresh_ExpiredToken(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), testJWT(-time.Minute))

	_, _, refresh, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    "ana@example.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, _, err := uc.Refresh(context.Background(), refresh); !errors.Is(err, ErrRefreshTokenExpired) {
		t.Fatalf("expected ErrRefreshTokenExpired, got %v", err)
	}
}

func TestAuth_Refresh_GarbageToken(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), testJWT(time.Hour))

	if _, _, err := uc.Refresh(context.Background(), "not.a.jwt"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if _, _, err := uc.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}
