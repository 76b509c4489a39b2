package repo

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

const alertColumns = "id, title, message, alert_type, location_id, user_id, is_read, created_at"

// CreateAlertParams encapsula campos para emissão de alerta.
type CreateAlertParams struct {
	Title      string
	Message    string
	AlertType  AlertType
	LocationID int64
	UserID     int64
}

// CreateAlert insere um novo alerta, sempre não lido.
func (q *Queries) CreateAlert(ctx context.Context, params CreateAlertParams) (*Alert, error) {
	const query = `
        INSERT INTO alerts (title, message, alert_type, location_id, user_id, is_read)
        VALUES ($1, $2, $3, $4, $5, FALSE)
        RETURNING ` + alertColumns

	row := q.pool.QueryRow(ctx, query,
		strings.TrimSpace(params.Title),
		strings.TrimSpace(params.Message),
		params.AlertType,
		params.LocationID,
		params.UserID,
	)

	return scanAlert(row)
}

// GetAlertByID busca alerta pelo id.
func (q *Queries) GetAlertByID(ctx context.Context, id int64) (*Alert, error) {
	const query = `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1`
	return scanAlert(q.pool.QueryRow(ctx, query, id))
}

// ListAlerts lista alertas com paginação simples.
func (q *Queries) ListAlerts(ctx context.Context, skip, limit int) ([]Alert, error) {
	skip, limit = clampPage(skip, limit)

	const query = `SELECT ` + alertColumns + ` FROM alerts ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := q.pool.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	return collectAlerts(rows)
}

// RecentAlerts devolve os n alertas mais recentes.
func (q *Queries) RecentAlerts(ctx context.Context, n int) ([]Alert, error) {
	if n <= 0 {
		n = 5
	}

	const query = `SELECT ` + alertColumns + ` FROM alerts ORDER BY created_at DESC LIMIT $1`

	rows, err := q.pool.Query(ctx, query, n)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	return collectAlerts(rows)
}

// MarkAlertRead efetiva a transição para lido. A transição é unidirecional:
// nenhuma operação reabre um alerta.
func (q *Queries) MarkAlertRead(ctx context.Context, id int64) (*Alert, error) {
	const query = `
        UPDATE alerts
        SET is_read = TRUE
        WHERE id = $1
        RETURNING ` + alertColumns

	return scanAlert(q.pool.QueryRow(ctx, query, id))
}

// CountUnreadAlerts conta alertas ainda não lidos.
func (q *Queries) CountUnreadAlerts(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM alerts WHERE is_read = FALSE`

	var count int64
	if err := q.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func collectAlerts(rows pgx.Rows) ([]Alert, error) {
	var alerts []Alert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, *alert)
	}
	return alerts, rows.Err()
}

func scanAlert(row pgx.Row) (*Alert, error) {
	var a Alert
	err := row.Scan(&a.ID, &a.Title, &a.Message, &a.AlertType, &a.LocationID,
		&a.UserID, &a.IsRead, &a.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}
