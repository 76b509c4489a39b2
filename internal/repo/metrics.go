package repo

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

const metricColumns = "id, metric_type, value, unit, location_id, recorded_at"

// CreateMetricParams encapsula campos para registro de medição.
type CreateMetricParams struct {
	MetricType string
	Value      float64
	Unit       string
	LocationID int64
}

// CreateMetric insere uma nova medição ambiental. Medições são imutáveis:
// não existe operação de atualização.
func (q *Queries) CreateMetric(ctx context.Context, params CreateMetricParams) (*EnvironmentalMetric, error) {
	const query = `
        INSERT INTO environmental_metrics (metric_type, value, unit, location_id)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + metricColumns

	row := q.pool.QueryRow(ctx, query,
		strings.ToLower(strings.TrimSpace(params.MetricType)),
		params.Value,
		strings.TrimSpace(params.Unit),
		params.LocationID,
	)

	return scanMetric(row)
}

// MetricsByType lista medições de um tipo, opcionalmente restritas a uma
// localização, da mais recente para a mais antiga.
func (q *Queries) MetricsByType(ctx context.Context, metricType string, locationID *int64) ([]EnvironmentalMetric, error) {
	metricType = strings.ToLower(strings.TrimSpace(metricType))

	var (
		rows pgx.Rows
		err  error
	)

	if locationID != nil {
		const query = `
            SELECT ` + metricColumns + `
            FROM environmental_metrics
            WHERE metric_type = $1 AND location_id = $2
            ORDER BY recorded_at DESC`
		rows, err = q.pool.Query(ctx, query, metricType, *locationID)
	} else {
		const query = `
            SELECT ` + metricColumns + `
            FROM environmental_metrics
            WHERE metric_type = $1
            ORDER BY recorded_at DESC`
		rows, err = q.pool.Query(ctx, query, metricType)
	}

	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var metrics []EnvironmentalMetric
	for rows.Next() {
		metric, err := scanMetric(rows)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, *metric)
	}

	return metrics, rows.Err()
}

func scanMetric(row pgx.Row) (*EnvironmentalMetric, error) {
	var m EnvironmentalMetric
	err := row.Scan(&m.ID, &m.MetricType, &m.Value, &m.Unit, &m.LocationID, &m.RecordedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}
