package http

import (
	"net/http"

	"github.com/ecomanager/api/internal/repo"
	"github.com/ecomanager/api/internal/util"
)

// Tipos de métrica com rota dedicada.
const (
	metricWaterQuality    = "water_quality"
	metricVegetationCover = "vegetation_cover"
)

type createMetricRequest struct {
	MetricType string  `json:"metric_type"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	LocationID int64   `json:"location_id"`
}

func (req *createMetricRequest) validate() []string {
	var details []string
	if err := util.RequireString(req.MetricType, "metric_type"); err != nil {
		details = append(details, err.Error())
	}
	if err := util.RequireString(req.Unit, "unit"); err != nil {
		details = append(details, err.Error())
	}
	if req.LocationID <= 0 {
		details = append(details, "location_id obrigatório")
	}
	return details
}

// ListMetrics lista medições por tipo (sem tipo devolve lista vazia).
func (h *Handler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	metricType := r.URL.Query().Get("metric_type")
	if metricType == "" {
		WriteJSON(w, http.StatusOK, []repo.EnvironmentalMetric{})
		return
	}

	h.listMetricsByType(w, r, metricType)
}

// CreateMetric registra uma medição genérica.
func (h *Handler) CreateMetric(w http.ResponseWriter, r *http.Request) {
	h.createMetric(w, r, "")
}

// ListWaterMetrics lista medições de qualidade da água.
func (h *Handler) ListWaterMetrics(w http.ResponseWriter, r *http.Request) {
	h.listMetricsByType(w, r, metricWaterQuality)
}

// CreateWaterMetric registra medição de qualidade da água.
func (h *Handler) CreateWaterMetric(w http.ResponseWriter, r *http.Request) {
	h.createMetric(w, r, metricWaterQuality)
}

// ListFloraFaunaMetrics lista medições de cobertura vegetal.
func (h *Handler) ListFloraFaunaMetrics(w http.ResponseWriter, r *http.Request) {
	h.listMetricsByType(w, r, metricVegetationCover)
}

// CreateFloraFaunaMetric registra medição de cobertura vegetal.
func (h *Handler) CreateFloraFaunaMetric(w http.ResponseWriter, r *http.Request) {
	h.createMetric(w, r, metricVegetationCover)
}

func (h *Handler) listMetricsByType(w http.ResponseWriter, r *http.Request, metricType string) {
	locationID, err := optionalID(r, "location_id")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	metrics, err := h.store.MetricsByType(r.Context(), metricType, locationID)
	if err != nil {
		writeRepoError(w, err, "medições não encontradas")
		return
	}
	if metrics == nil {
		metrics = []repo.EnvironmentalMetric{}
	}

	WriteJSON(w, http.StatusOK, metrics)
}

// createMetric registra uma medição; forcedType fixa o tipo nas rotas
// dedicadas (water-resources, flora-fauna).
func (h *Handler) createMetric(w http.ResponseWriter, r *http.Request, forcedType string) {
	var req createMetricRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	if forcedType != "" {
		req.MetricType = forcedType
	}

	if details := req.validate(); len(details) > 0 {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "campos inválidos", details)
		return
	}

	metric, err := h.store.CreateMetric(r.Context(), repo.CreateMetricParams{
		MetricType: req.MetricType,
		Value:      req.Value,
		Unit:       req.Unit,
		LocationID: req.LocationID,
	})
	if err != nil {
		writeRepoError(w, err, "medição não encontrada")
		return
	}

	WriteJSON(w, http.StatusCreated, metric)
}
