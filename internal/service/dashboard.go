package service

import (
	"context"

	"github.com/ecomanager/api/internal/repo"
)

// recentItems é o tamanho das listas recentes exibidas no painel.
const recentItems = 3

type dashboardStore interface {
	RecentProcesses(ctx context.Context, n int) ([]repo.Process, error)
	RecentAlerts(ctx context.Context, n int) ([]repo.Alert, error)
	CountUnreadAlerts(ctx context.Context) (int64, error)
}

// DashboardMetrics resume os indicadores ambientais do painel. Os valores e
// tendências (exceto a contagem de alertas) são strings de apresentação.
type DashboardMetrics struct {
	AirQuality           string `json:"air_quality"`
	AirQualityTrend      string `json:"air_quality_trend"`
	WaterResources       string `json:"water_resources"`
	WaterResourcesTrend  string `json:"water_resources_trend"`
	VegetationCover      string `json:"vegetation_cover"`
	VegetationCoverTrend string `json:"vegetation_cover_trend"`
	ActiveAlerts         int64  `json:"active_alerts"`
	ActiveAlertsTrend    string `json:"active_alerts_trend"`
}

// DashboardData agrega o conteúdo da visão principal.
type DashboardData struct {
	Metrics         DashboardMetrics `json:"metrics"`
	RecentProcesses []repo.Process   `json:"recent_processes"`
	RecentAlerts    []repo.Alert     `json:"recent_alerts"`
}

// DashboardService compõe o painel a partir do repositório. Leitura pura,
// sem efeitos colaterais.
type DashboardService struct {
	store dashboardStore
}

// NewDashboardService cria o serviço do painel.
func NewDashboardService(store dashboardStore) *DashboardService {
	return &DashboardService{store: store}
}

// Dashboard monta métricas, processos e alertas recentes.
func (s *DashboardService) Dashboard(ctx context.Context) (*DashboardData, error) {
	unread, err := s.store.CountUnreadAlerts(ctx)
	if err != nil {
		return nil, err
	}

	processes, err := s.store.RecentProcesses(ctx, recentItems)
	if err != nil {
		return nil, err
	}

	alerts, err := s.store.RecentAlerts(ctx, recentItems)
	if err != nil {
		return nil, err
	}

	if processes == nil {
		processes = []repo.Process{}
	}
	if alerts == nil {
		alerts = []repo.Alert{}
	}

	return &DashboardData{
		Metrics: DashboardMetrics{
			AirQuality:           "Boa",
			AirQualityTrend:      "+5% desde último mês",
			WaterResources:       "87%",
			WaterResourcesTrend:  "-2% desde último mês",
			VegetationCover:      "94%",
			VegetationCoverTrend: "+1% desde último mês",
			ActiveAlerts:         unread,
			ActiveAlertsTrend:    "-40% desde último mês",
		},
		RecentProcesses: processes,
		RecentAlerts:    alerts,
	}, nil
}
