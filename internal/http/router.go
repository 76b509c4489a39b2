package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ecomanager/api/internal/config"
	httpmiddleware "github.com/ecomanager/api/internal/http/middleware"
	"github.com/ecomanager/api/internal/repo"
	"github.com/ecomanager/api/internal/service"
)

// Store reúne as operações de repositório consumidas pelos handlers.
type Store interface {
	CreateUser(ctx context.Context, params repo.CreateUserParams) (*repo.User, error)
	ListUsers(ctx context.Context, skip, limit int) ([]repo.User, error)

	CreateLocation(ctx context.Context, params repo.CreateLocationParams) (*repo.Location, error)
	GetLocationByID(ctx context.Context, id int64) (*repo.Location, error)
	ListLocations(ctx context.Context, skip, limit int) ([]repo.Location, error)

	CreateProcess(ctx context.Context, params repo.CreateProcessParams) (*repo.Process, error)
	GetProcessByID(ctx context.Context, id int64) (*repo.Process, error)
	ListProcesses(ctx context.Context, skip, limit int) ([]repo.Process, error)
	UpdateProcess(ctx context.Context, id int64, params repo.UpdateProcessParams) (*repo.Process, error)

	CreateAlert(ctx context.Context, params repo.CreateAlertParams) (*repo.Alert, error)
	ListAlerts(ctx context.Context, skip, limit int) ([]repo.Alert, error)
	RecentAlerts(ctx context.Context, n int) ([]repo.Alert, error)
	MarkAlertRead(ctx context.Context, id int64) (*repo.Alert, error)

	CreateMetric(ctx context.Context, params repo.CreateMetricParams) (*repo.EnvironmentalMetric, error)
	MetricsByType(ctx context.Context, metricType string, locationID *int64) ([]repo.EnvironmentalMetric, error)
}

// Handler agrupa as dependências dos handlers HTTP.
type Handler struct {
	cfg       *config.Config
	store     Store
	auth      *service.AuthService
	dashboard *service.DashboardService
}

// NewHandler cria o conjunto de handlers da API.
func NewHandler(cfg *config.Config, store Store, authService *service.AuthService, dashboardService *service.DashboardService) *Handler {
	return &Handler{cfg: cfg, store: store, auth: authService, dashboard: dashboardService}
}

// NewRouter devolve o roteador configurado com todos os grupos de rotas.
func NewRouter(cfg *config.Config, store Store, authService *service.AuthService, dashboardService *service.DashboardService) http.Handler {
	h := NewHandler(cfg, store, authService, dashboardService)

	publicLimiter := httpmiddleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst)
	userLimiter := httpmiddleware.NewRateLimiter(cfg.RateLimitAuth.RequestsPerSecond, cfg.RateLimitAuth.Burst)

	r := chi.NewRouter()
	r.Use(httpmiddleware.Recover)
	r.Use(chimiddleware.RequestID)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.CORS(cfg.AllowOrigins))

	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(httpmiddleware.IPRateLimit(publicLimiter))
				r.Post("/login", h.Login)
				r.Post("/refresh", h.Refresh)
			})

			r.Group(func(r chi.Router) {
				r.Use(httpmiddleware.Auth(authService.JWT(), authService))
				r.Get("/me", h.Me)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(httpmiddleware.Auth(authService.JWT(), authService))
			r.Use(httpmiddleware.UserRateLimit(userLimiter))

			r.Get("/dashboard/", h.Dashboard)

			r.Route("/processes", func(r chi.Router) {
				r.Get("/", h.ListProcesses)
				r.Post("/", h.CreateProcess)
				r.Get("/{id}", h.GetProcess)
				r.Put("/{id}", h.UpdateProcess)
			})

			r.Route("/monitoring", func(r chi.Router) {
				r.Get("/", h.ListMetrics)
				r.Post("/", h.CreateMetric)
			})

			r.Route("/water-resources", func(r chi.Router) {
				r.Get("/", h.ListWaterMetrics)
				r.Post("/", h.CreateWaterMetric)
			})

			r.Route("/flora-fauna", func(r chi.Router) {
				r.Get("/", h.ListFloraFaunaMetrics)
				r.Post("/", h.CreateFloraFaunaMetric)
			})

			r.Route("/team", func(r chi.Router) {
				r.Get("/", h.ListTeam)
				r.Post("/", h.CreateTeamMember)
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", h.ListLocations)
				r.Post("/", h.CreateLocation)
				r.Get("/{id}", h.GetLocation)
			})

			r.Route("/alerts", func(r chi.Router) {
				r.Get("/", h.ListAlerts)
				r.Post("/", h.CreateAlert)
				r.Get("/recent", h.RecentAlerts)
				r.Put("/{id}/read", h.MarkAlertRead)
			})

			r.Get("/settings/", h.Settings)
		})
	})

	return r
}

// Root responde a raiz com identificação do serviço.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "EcoManager API - Sistema de Gestão Ambiental",
	})
}

// Health responde o healthcheck público.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "ecomanager-api",
	})
}
