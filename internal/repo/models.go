package repo

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Role define o papel de um membro da equipe.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleAnalyst Role = "analyst"
	RoleViewer  Role = "viewer"
)

// ProcessStatus define o ciclo de vida de um processo regulatório.
type ProcessStatus string

const (
	StatusPending    ProcessStatus = "pending"
	StatusInAnalysis ProcessStatus = "in_analysis"
	StatusApproved   ProcessStatus = "approved"
	StatusRejected   ProcessStatus = "rejected"
	StatusExpired    ProcessStatus = "expired"
)

// AlertType define a severidade de um alerta.
type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
	AlertInfo    AlertType = "info"
	AlertSuccess AlertType = "success"
)

var (
	validRoles = map[Role]struct{}{
		RoleAdmin:   {},
		RoleManager: {},
		RoleAnalyst: {},
		RoleViewer:  {},
	}
	validStatuses = map[ProcessStatus]struct{}{
		StatusPending:    {},
		StatusInAnalysis: {},
		StatusApproved:   {},
		StatusRejected:   {},
		StatusExpired:    {},
	}
	validAlertTypes = map[AlertType]struct{}{
		AlertWarning: {},
		AlertError:   {},
		AlertInfo:    {},
		AlertSuccess: {},
	}
)

// NormalizeRole padroniza e aplica o default viewer.
func NormalizeRole(role string) Role {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return RoleViewer
	}
	return Role(role)
}

// IsValidRole indica se o papel é aceito.
func IsValidRole(role Role) bool {
	_, ok := validRoles[role]
	return ok
}

// NormalizeStatus padroniza e aplica o status inicial pending.
func NormalizeStatus(status string) ProcessStatus {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return StatusPending
	}
	return ProcessStatus(status)
}

// IsValidStatus indica se o status é aceito.
func IsValidStatus(status ProcessStatus) bool {
	_, ok := validStatuses[status]
	return ok
}

// NormalizeAlertType padroniza o tipo do alerta.
func NormalizeAlertType(alertType string) AlertType {
	return AlertType(strings.ToLower(strings.TrimSpace(alertType)))
}

// IsValidAlertType indica se o tipo do alerta é aceito.
func IsValidAlertType(alertType AlertType) bool {
	_, ok := validAlertTypes[alertType]
	return ok
}

// NormalizePriority padroniza prioridade livre (alta/media/baixa por convenção).
func NormalizePriority(priority string) string {
	priority = strings.ToLower(strings.TrimSpace(priority))
	if priority == "" {
		return "media"
	}
	return priority
}

// User representa um membro da equipe. O hash de senha nunca é serializado.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Location representa uma área monitorada.
type Location struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}

// Process representa um processo regulatório vinculado a uma localização.
type Process struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      ProcessStatus `json:"status"`
	Priority    string        `json:"priority"`
	DueDate     time.Time     `json:"due_date"`
	LocationID  int64         `json:"location_id"`
	CreatedByID int64         `json:"created_by_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

// Alert representa um alerta emitido para um usuário.
type Alert struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	AlertType  AlertType `json:"alert_type"`
	LocationID int64     `json:"location_id"`
	UserID     int64     `json:"user_id"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// EnvironmentalMetric representa uma medição ambiental. Imutável após criada.
type EnvironmentalMetric struct {
	ID         int64     `json:"id"`
	MetricType string    `json:"metric_type"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	LocationID int64     `json:"location_id"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Queries provê acesso às tabelas do serviço.
type Queries struct {
	pool *pgxpool.Pool
}

// New cria o repositório sobre o pool informado.
func New(pool *pgxpool.Pool) *Queries {
	return &Queries{pool: pool}
}

// clampPage aplica defaults de paginação (limit 100, skip 0).
func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return skip, limit
}
