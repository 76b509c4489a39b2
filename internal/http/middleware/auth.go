package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ecomanager/api/internal/auth"
	"github.com/ecomanager/api/internal/repo"
)

type contextKey string

const contextKeyUser contextKey = "user"

// UserResolver resolve o subject de um token em um usuário ativo.
type UserResolver interface {
	ResolveUser(ctx context.Context, username string) (*repo.User, error)
}

// Auth valida o JWT de acesso, resolve o usuário e o injeta no contexto.
// Token ausente/inválido, usuário inexistente ou desativado resultam em 401.
func Auth(jwtManager *auth.JWTManager, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeError(w, http.StatusUnauthorized, "AUTH", "token ausente")
				return
			}

			claims, err := jwtManager.ParseAndValidate(parts[1])
			if err != nil {
				writeError(w, http.StatusUnauthorized, "AUTH", "token inválido")
				return
			}

			user, err := resolver.ResolveUser(r.Context(), claims.Subject)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "AUTH", "não autorizado")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser recupera o usuário autenticado do contexto.
func CurrentUser(ctx context.Context) *repo.User {
	user, _ := ctx.Value(contextKeyUser).(*repo.User)
	return user
}

// WithUser injeta usuário no contexto (exposto para testes de handlers).
func WithUser(ctx context.Context, user *repo.User) context.Context {
	return context.WithValue(ctx, contextKeyUser, user)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": nil,
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
