package http

import (
	"net/http"

	"github.com/ecomanager/api/internal/config"
	httpmiddleware "github.com/ecomanager/api/internal/http/middleware"
)

type settingsResponse struct {
	User   settingsUser   `json:"user"`
	System settingsSystem `json:"system"`
}

type settingsUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type settingsSystem struct {
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

// Settings ecoa o usuário autenticado e informações estáticas do sistema.
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	user := httpmiddleware.CurrentUser(r.Context())

	WriteJSON(w, http.StatusOK, settingsResponse{
		User: settingsUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     string(user.Role),
		},
		System: settingsSystem{
			Environment: h.cfg.Environment,
			Version:     config.Version,
		},
	})
}
