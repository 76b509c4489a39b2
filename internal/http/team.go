package http

import (
	"net/http"

	"github.com/ecomanager/api/internal/auth"
	"github.com/ecomanager/api/internal/repo"
	"github.com/ecomanager/api/internal/util"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (req *createUserRequest) validate() []string {
	var details []string
	if err := util.ValidateEmail(req.Email); err != nil {
		details = append(details, err.Error())
	}
	if err := util.RequireString(req.Username, "username"); err != nil {
		details = append(details, err.Error())
	}
	if err := util.RequireString(req.FullName, "full_name"); err != nil {
		details = append(details, err.Error())
	}
	if err := util.ValidatePassword(req.Password); err != nil {
		details = append(details, err.Error())
	}
	return details
}

// ListTeam lista os membros da equipe.
func (h *Handler) ListTeam(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)

	users, err := h.store.ListUsers(r.Context(), skip, limit)
	if err != nil {
		writeRepoError(w, err, "usuário não encontrado")
		return
	}
	if users == nil {
		users = []repo.User{}
	}

	WriteJSON(w, http.StatusOK, users)
}

// CreateTeamMember cadastra um novo membro. Email/username duplicados
// resultam em conflito sem criar registro.
func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	if details := req.validate(); len(details) > 0 {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "campos inválidos", details)
		return
	}

	role := repo.NormalizeRole(req.Role)
	if !repo.IsValidRole(role) {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "role inválido", nil)
		return
	}

	hash, err := auth.Hash(req.Password)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "erro interno", nil)
		return
	}

	user, err := h.store.CreateUser(r.Context(), repo.CreateUserParams{
		Email:        req.Email,
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		writeRepoError(w, err, "usuário não encontrado")
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}
