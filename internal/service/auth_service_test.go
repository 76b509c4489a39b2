package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecomanager/api/internal/auth"
	"github.com/ecomanager/api/internal/repo"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type stubAuthStore struct {
	users map[string]*repo.User
}

func (s *stubAuthStore) GetUserByUsername(ctx context.Context, username string) (*repo.User, error) {
	if user, ok := s.users[username]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repo.ErrNotFound
}

type stubRedis struct {
	values map[string]string
}

func newStubRedis() *stubRedis {
	return &stubRedis{values: make(map[string]string)}
}

func (s *stubRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	s.values[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (s *stubRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	val, ok := s.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (s *stubRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := s.values[key]; ok {
			delete(s.values, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func newTestService(t *testing.T, active bool) (*AuthService, *stubAuthStore) {
	t.Helper()

	hash, err := auth.Hash("senha-correta")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	store := &stubAuthStore{users: map[string]*repo.User{
		"ana": {
			ID:           1,
			Email:        "ana@example.com",
			Username:     "ana",
			FullName:     "Ana Silva",
			PasswordHash: hash,
			Role:         repo.RoleAnalyst,
			IsActive:     active,
			CreatedAt:    time.Now(),
		},
	}}

	jwtMgr := auth.NewJWTManager(testSecret, 30*time.Minute)
	svc := NewAuthService(store, newStubRedis(), jwtMgr, time.Hour)
	return svc, store
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t, true)

	result, err := svc.Login(context.Background(), "ana", "senha-correta")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.TokenType != "bearer" {
		t.Fatalf("token_type = %q", result.TokenType)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatal("tokens não podem ser vazios")
	}

	claims, err := svc.JWT().ParseAndValidate(result.AccessToken)
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}
	if claims.Subject != "ana" || claims.Role != "analyst" {
		t.Fatalf("claims inesperadas: sub=%q role=%q", claims.Subject, claims.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t, true)

	if _, err := svc.Login(context.Background(), "ana", "senha-errada"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, esperado ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(t, true)

	if _, err := svc.Login(context.Background(), "ninguem", "senha"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, esperado ErrInvalidCredentials", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, _ := newTestService(t, false)

	if _, err := svc.Login(context.Background(), "ana", "senha-correta"); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("err = %v, esperado ErrAccountDisabled", err)
	}
}

func TestResolveUser(t *testing.T) {
	svc, store := newTestService(t, true)

	user, err := svc.ResolveUser(context.Background(), "ana")
	if err != nil {
		t.Fatalf("ResolveUser: %v", err)
	}
	if user.Username != "ana" {
		t.Fatalf("username = %q", user.Username)
	}

	// Usuário desativado falha mesmo com token ainda não expirado.
	store.users["ana"].IsActive = false
	if _, err := svc.ResolveUser(context.Background(), "ana"); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("err = %v, esperado ErrAccountDisabled", err)
	}

	if _, err := svc.ResolveUser(context.Background(), "ninguem"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, esperado ErrInvalidCredentials", err)
	}
}

func TestRefreshRotation(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()

	first, err := svc.Login(ctx, "ana", "senha-correta")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	second, err := svc.Refresh(ctx, first.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Fatal("refresh deve rotacionar o token")
	}

	// O token antigo foi invalidado na rotação.
	if _, err := svc.Refresh(ctx, first.RefreshToken); !errors.Is(err, ErrRefreshInvalid) {
		t.Fatalf("err = %v, esperado ErrRefreshInvalid", err)
	}
}

func TestRefreshDisabledAccount(t *testing.T) {
	svc, store := newTestService(t, true)
	ctx := context.Background()

	result, err := svc.Login(ctx, "ana", "senha-correta")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	store.users["ana"].IsActive = false
	if _, err := svc.Refresh(ctx, result.RefreshToken); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("err = %v, esperado ErrAccountDisabled", err)
	}

	// A tentativa consumiu o token: nova troca falha como inválida.
	if _, err := svc.Refresh(ctx, result.RefreshToken); !errors.Is(err, ErrRefreshInvalid) {
		t.Fatalf("err = %v, esperado ErrRefreshInvalid", err)
	}
}

func TestRefreshUnknownToken(t *testing.T) {
	svc, _ := newTestService(t, true)

	if _, err := svc.Refresh(context.Background(), "token-desconhecido"); !errors.Is(err, ErrRefreshInvalid) {
		t.Fatalf("err = %v, esperado ErrRefreshInvalid", err)
	}
}
