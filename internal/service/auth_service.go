package service

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/ecomanager/api/internal/auth"
	"github.com/ecomanager/api/internal/repo"
)

var (
	// ErrInvalidCredentials indica falha na autenticação.
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	// ErrAccountDisabled indica conta desativada.
	ErrAccountDisabled = errors.New("conta desativada")
	// ErrRefreshInvalid indica refresh token inválido ou expirado.
	ErrRefreshInvalid = errors.New("refresh token inválido")
)

type authStore interface {
	GetUserByUsername(ctx context.Context, username string) (*repo.User, error)
}

type redisCommander interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// AuthService concentra login, refresh e resolução de identidade.
type AuthService struct {
	store      authStore
	redis      redisCommander
	jwt        *auth.JWTManager
	refreshTTL time.Duration
}

// NewAuthService cria novo serviço de autenticação.
func NewAuthService(store authStore, redisClient redisCommander, jwtMgr *auth.JWTManager, refreshTTL time.Duration) *AuthService {
	return &AuthService{store: store, redis: redisClient, jwt: jwtMgr, refreshTTL: refreshTTL}
}

// JWT expõe o gerenciador de tokens (útil em middlewares).
func (s *AuthService) JWT() *auth.JWTManager {
	return s.jwt
}

// LoginResult representa o retorno padrão de autenticações.
type LoginResult struct {
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type"`
	RefreshToken string     `json:"refresh_token"`
	User         *repo.User `json:"user"`
}

// Login autentica por username/senha e emite o par de tokens.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Warn().Str("username", username).Msg("login: usuário não encontrado")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := auth.Verify(password, user.PasswordHash)
	if err != nil {
		log.Warn().Err(err).Msg("login: verificação de senha falhou")
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return s.issueTokens(ctx, user)
}

// Refresh troca um refresh token válido por um novo par, invalidando o
// anterior (rotação).
func (s *AuthService) Refresh(ctx context.Context, rawToken string) (*LoginResult, error) {
	key := auth.RefreshRedisKey(auth.HashRefreshToken(rawToken))

	username, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRefreshInvalid
		}
		return nil, err
	}

	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			_ = s.redis.Del(ctx, key).Err()
			return nil, ErrRefreshInvalid
		}
		return nil, err
	}
	if !user.IsActive {
		_ = s.redis.Del(ctx, key).Err()
		return nil, ErrAccountDisabled
	}

	if err := s.redis.Del(ctx, key).Err(); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// ResolveUser valida o subject de um token e devolve o usuário ativo
// correspondente. Toda operação protegida passa por aqui antes de qualquer
// leitura ou escrita.
func (s *AuthService) ResolveUser(ctx context.Context, username string) (*repo.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	return user, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *repo.User) (*LoginResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	rawRefresh, hashedRefresh, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	key := auth.RefreshRedisKey(hashedRefresh)
	if err := s.redis.Set(ctx, key, user.Username, s.refreshTTL).Err(); err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		RefreshToken: rawRefresh,
		User:         user,
	}, nil
}
