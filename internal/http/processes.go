package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	httpmiddleware "github.com/ecomanager/api/internal/http/middleware"
	"github.com/ecomanager/api/internal/repo"
	"github.com/ecomanager/api/internal/util"
)

type createProcessRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"due_date"`
	LocationID  int64     `json:"location_id"`
}

type updateProcessRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	LocationID  *int64     `json:"location_id"`
}

func (req *createProcessRequest) validate() []string {
	var details []string
	if err := util.RequireString(req.Title, "title"); err != nil {
		details = append(details, err.Error())
	}
	if err := util.RequireString(req.Description, "description"); err != nil {
		details = append(details, err.Error())
	}
	if err := util.RequireString(req.Priority, "priority"); err != nil {
		details = append(details, err.Error())
	}
	if req.DueDate.IsZero() {
		details = append(details, "due_date obrigatório")
	}
	if req.LocationID <= 0 {
		details = append(details, "location_id obrigatório")
	}
	return details
}

// ListProcesses lista processos com paginação.
func (h *Handler) ListProcesses(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)

	processes, err := h.store.ListProcesses(r.Context(), skip, limit)
	if err != nil {
		writeRepoError(w, err, "processo não encontrado")
		return
	}
	if processes == nil {
		processes = []repo.Process{}
	}

	WriteJSON(w, http.StatusOK, processes)
}

// CreateProcess abre um processo em nome do usuário autenticado.
func (h *Handler) CreateProcess(w http.ResponseWriter, r *http.Request) {
	var req createProcessRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	if details := req.validate(); len(details) > 0 {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "campos inválidos", details)
		return
	}

	user := httpmiddleware.CurrentUser(r.Context())

	process, err := h.store.CreateProcess(r.Context(), repo.CreateProcessParams{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		LocationID:  req.LocationID,
		CreatedByID: user.ID,
	})
	if err != nil {
		writeRepoError(w, err, "processo não encontrado")
		return
	}

	WriteJSON(w, http.StatusCreated, process)
}

// GetProcess busca um processo pelo id.
func (h *Handler) GetProcess(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	process, err := h.store.GetProcessByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "processo não encontrado")
		return
	}

	WriteJSON(w, http.StatusOK, process)
}

// UpdateProcess aplica atualização parcial: somente os campos presentes no
// corpo são alterados.
func (h *Handler) UpdateProcess(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	var req updateProcessRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	params := repo.UpdateProcessParams{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		LocationID:  req.LocationID,
	}

	if req.Status != nil {
		status := repo.NormalizeStatus(*req.Status)
		if !repo.IsValidStatus(status) {
			WriteError(w, http.StatusBadRequest, "VALIDATION", "status inválido", nil)
			return
		}
		params.Status = &status
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "title não pode ser vazio", nil)
		return
	}

	process, err := h.store.UpdateProcess(r.Context(), id, params)
	if err != nil {
		writeRepoError(w, err, "processo não encontrado")
		return
	}

	WriteJSON(w, http.StatusOK, process)
}
