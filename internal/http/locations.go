package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecomanager/api/internal/repo"
	"github.com/ecomanager/api/internal/util"
)

type createLocationRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
}

func (req *createLocationRequest) validate() []string {
	var details []string
	if err := util.RequireString(req.Name, "name"); err != nil {
		details = append(details, err.Error())
	}
	if req.Latitude < -90 || req.Latitude > 90 {
		details = append(details, "latitude fora do intervalo")
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		details = append(details, "longitude fora do intervalo")
	}
	return details
}

// ListLocations lista localizações monitoradas.
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)

	locations, err := h.store.ListLocations(r.Context(), skip, limit)
	if err != nil {
		writeRepoError(w, err, "localização não encontrada")
		return
	}
	if locations == nil {
		locations = []repo.Location{}
	}

	WriteJSON(w, http.StatusOK, locations)
}

// CreateLocation cadastra uma nova localização.
func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req createLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	if details := req.validate(); len(details) > 0 {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "campos inválidos", details)
		return
	}

	location, err := h.store.CreateLocation(r.Context(), repo.CreateLocationParams{
		Name:        req.Name,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
	})
	if err != nil {
		writeRepoError(w, err, "localização não encontrada")
		return
	}

	WriteJSON(w, http.StatusCreated, location)
}

// GetLocation busca localização pelo id.
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	location, err := h.store.GetLocationByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "localização não encontrada")
		return
	}

	WriteJSON(w, http.StatusOK, location)
}
