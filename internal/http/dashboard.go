package http

import (
	"net/http"
)

// Dashboard agrega métricas, processos e alertas recentes para o painel.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboard.Dashboard(r.Context())
	if err != nil {
		writeRepoError(w, err, "painel indisponível")
		return
	}

	WriteJSON(w, http.StatusOK, data)
}
