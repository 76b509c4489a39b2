package repo

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

const locationColumns = "id, name, description, latitude, longitude, address, created_at"

// CreateLocationParams encapsula campos para criação de localização.
type CreateLocationParams struct {
	Name        string
	Description string
	Latitude    float64
	Longitude   float64
	Address     string
}

// CreateLocation insere uma nova localização monitorada.
func (q *Queries) CreateLocation(ctx context.Context, params CreateLocationParams) (*Location, error) {
	const query = `
        INSERT INTO locations (name, description, latitude, longitude, address)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + locationColumns

	row := q.pool.QueryRow(ctx, query,
		strings.TrimSpace(params.Name),
		strings.TrimSpace(params.Description),
		params.Latitude,
		params.Longitude,
		strings.TrimSpace(params.Address),
	)

	return scanLocation(row)
}

// GetLocationByID busca localização pelo id.
func (q *Queries) GetLocationByID(ctx context.Context, id int64) (*Location, error) {
	const query = `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`
	return scanLocation(q.pool.QueryRow(ctx, query, id))
}

// ListLocations lista localizações com paginação simples.
func (q *Queries) ListLocations(ctx context.Context, skip, limit int) ([]Location, error) {
	skip, limit = clampPage(skip, limit)

	const query = `SELECT ` + locationColumns + ` FROM locations ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := q.pool.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var locations []Location
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, *location)
	}

	return locations, rows.Err()
}

func scanLocation(row pgx.Row) (*Location, error) {
	var l Location
	err := row.Scan(&l.ID, &l.Name, &l.Description, &l.Latitude, &l.Longitude, &l.Address, &l.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &l, nil
}
