package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httpmiddleware "github.com/ecomanager/api/internal/http/middleware"
	"github.com/ecomanager/api/internal/repo"
	"github.com/ecomanager/api/internal/util"
)

type createAlertRequest struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	AlertType  string `json:"alert_type"`
	LocationID int64  `json:"location_id"`
}

func (req *createAlertRequest) validate() []string {
	var details []string
	if err := util.RequireString(req.Title, "title"); err != nil {
		details = append(details, err.Error())
	}
	if err := util.RequireString(req.Message, "message"); err != nil {
		details = append(details, err.Error())
	}
	if req.LocationID <= 0 {
		details = append(details, "location_id obrigatório")
	}
	return details
}

// ListAlerts lista alertas com paginação.
func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)

	alerts, err := h.store.ListAlerts(r.Context(), skip, limit)
	if err != nil {
		writeRepoError(w, err, "alerta não encontrado")
		return
	}
	if alerts == nil {
		alerts = []repo.Alert{}
	}

	WriteJSON(w, http.StatusOK, alerts)
}

// CreateAlert emite um alerta notificando o usuário autenticado.
func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req createAlertRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	if details := req.validate(); len(details) > 0 {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "campos inválidos", details)
		return
	}

	alertType := repo.NormalizeAlertType(req.AlertType)
	if !repo.IsValidAlertType(alertType) {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "alert_type inválido", nil)
		return
	}

	user := httpmiddleware.CurrentUser(r.Context())

	alert, err := h.store.CreateAlert(r.Context(), repo.CreateAlertParams{
		Title:      req.Title,
		Message:    req.Message,
		AlertType:  alertType,
		LocationID: req.LocationID,
		UserID:     user.ID,
	})
	if err != nil {
		writeRepoError(w, err, "alerta não encontrado")
		return
	}

	WriteJSON(w, http.StatusCreated, alert)
}

// RecentAlerts devolve os 10 alertas mais recentes.
func (h *Handler) RecentAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.store.RecentAlerts(r.Context(), 10)
	if err != nil {
		writeRepoError(w, err, "alerta não encontrado")
		return
	}
	if alerts == nil {
		alerts = []repo.Alert{}
	}

	WriteJSON(w, http.StatusOK, alerts)
}

// MarkAlertRead efetiva a transição dedicada para lido.
func (h *Handler) MarkAlertRead(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	alert, err := h.store.MarkAlertRead(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "alerta não encontrado")
		return
	}

	WriteJSON(w, http.StatusOK, alert)
}
