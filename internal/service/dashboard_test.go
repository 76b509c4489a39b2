package service

import (
	"context"
	"testing"
	"time"

	"github.com/ecomanager/api/internal/repo"
)

type stubDashboardStore struct {
	processes []repo.Process
	alerts    []repo.Alert
	wantN     int
	t         *testing.T
}

func (s *stubDashboardStore) RecentProcesses(ctx context.Context, n int) ([]repo.Process, error) {
	if n != s.wantN {
		s.t.Fatalf("RecentProcesses n = %d, esperado %d", n, s.wantN)
	}
	return s.processes, nil
}

func (s *stubDashboardStore) RecentAlerts(ctx context.Context, n int) ([]repo.Alert, error) {
	if n != s.wantN {
		s.t.Fatalf("RecentAlerts n = %d, esperado %d", n, s.wantN)
	}
	return s.alerts, nil
}

func (s *stubDashboardStore) CountUnreadAlerts(ctx context.Context) (int64, error) {
	var count int64
	for _, alert := range s.alerts {
		if !alert.IsRead {
			count++
		}
	}
	return count, nil
}

func TestDashboard(t *testing.T) {
	now := time.Now()
	store := &stubDashboardStore{
		processes: []repo.Process{
			{ID: 3, Title: "Auditoria", Status: repo.StatusPending, CreatedAt: now},
			{ID: 2, Title: "Licença", Status: repo.StatusApproved, CreatedAt: now.Add(-time.Hour)},
		},
		alerts: []repo.Alert{
			{ID: 5, Title: "PM2.5", IsRead: false, CreatedAt: now},
			{ID: 4, Title: "Ruído", IsRead: true, CreatedAt: now.Add(-time.Hour)},
			{ID: 3, Title: "Vazamento", IsRead: false, CreatedAt: now.Add(-2 * time.Hour)},
		},
		wantN: 3,
		t:     t,
	}

	svc := NewDashboardService(store)

	data, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if data.Metrics.ActiveAlerts != 2 {
		t.Fatalf("active_alerts = %d, esperado 2", data.Metrics.ActiveAlerts)
	}
	if data.Metrics.AirQuality != "Boa" {
		t.Fatalf("air_quality = %q", data.Metrics.AirQuality)
	}
	if len(data.RecentProcesses) != 2 {
		t.Fatalf("recent_processes = %d itens", len(data.RecentProcesses))
	}
	if data.RecentProcesses[0].ID != 3 {
		t.Fatalf("processos fora de ordem: primeiro id = %d", data.RecentProcesses[0].ID)
	}
	if len(data.RecentAlerts) != 3 {
		t.Fatalf("recent_alerts = %d itens", len(data.RecentAlerts))
	}
}

func TestDashboardEmpty(t *testing.T) {
	store := &stubDashboardStore{wantN: 3, t: t}
	svc := NewDashboardService(store)

	data, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if data.RecentProcesses == nil || data.RecentAlerts == nil {
		t.Fatal("listas vazias devem serializar como [], não null")
	}
	if data.Metrics.ActiveAlerts != 0 {
		t.Fatalf("active_alerts = %d, esperado 0", data.Metrics.ActiveAlerts)
	}
}
