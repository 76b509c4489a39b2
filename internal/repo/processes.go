package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

const processColumns = "id, title, description, status, priority, due_date, location_id, created_by_id, created_at, updated_at"

// CreateProcessParams encapsula campos para abertura de processo.
type CreateProcessParams struct {
	Title       string
	Description string
	Priority    string
	DueDate     time.Time
	LocationID  int64
	CreatedByID int64
}

// UpdateProcessParams aplica atualização parcial: apenas os campos não nulos
// são alterados, os demais ficam intactos.
type UpdateProcessParams struct {
	Title       *string
	Description *string
	Status      *ProcessStatus
	Priority    *string
	DueDate     *time.Time
	LocationID  *int64
}

// CreateProcess insere um novo processo com status inicial pending.
func (q *Queries) CreateProcess(ctx context.Context, params CreateProcessParams) (*Process, error) {
	const query = `
        INSERT INTO processes (title, description, status, priority, due_date, location_id, created_by_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + processColumns

	row := q.pool.QueryRow(ctx, query,
		strings.TrimSpace(params.Title),
		strings.TrimSpace(params.Description),
		StatusPending,
		NormalizePriority(params.Priority),
		params.DueDate,
		params.LocationID,
		params.CreatedByID,
	)

	return scanProcess(row)
}

// GetProcessByID busca processo pelo id.
func (q *Queries) GetProcessByID(ctx context.Context, id int64) (*Process, error) {
	const query = `SELECT ` + processColumns + ` FROM processes WHERE id = $1`
	return scanProcess(q.pool.QueryRow(ctx, query, id))
}

// ListProcesses lista processos com paginação simples.
func (q *Queries) ListProcesses(ctx context.Context, skip, limit int) ([]Process, error) {
	skip, limit = clampPage(skip, limit)

	const query = `SELECT ` + processColumns + ` FROM processes ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := q.pool.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	return collectProcesses(rows)
}

// RecentProcesses devolve os n processos mais recentes.
func (q *Queries) RecentProcesses(ctx context.Context, n int) ([]Process, error) {
	if n <= 0 {
		n = 5
	}

	const query = `SELECT ` + processColumns + ` FROM processes ORDER BY created_at DESC LIMIT $1`

	rows, err := q.pool.Query(ctx, query, n)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	return collectProcesses(rows)
}

// UpdateProcess aplica atualização parcial e refresca updated_at. A mutação é
// um único UPDATE: ou todos os campos entram, ou nenhum.
func (q *Queries) UpdateProcess(ctx context.Context, id int64, params UpdateProcessParams) (*Process, error) {
	setParts := []string{}
	args := []any{}
	idx := 1

	if params.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", idx))
		args = append(args, strings.TrimSpace(*params.Title))
		idx++
	}
	if params.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", idx))
		args = append(args, strings.TrimSpace(*params.Description))
		idx++
	}
	if params.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", idx))
		args = append(args, *params.Status)
		idx++
	}
	if params.Priority != nil {
		setParts = append(setParts, fmt.Sprintf("priority = $%d", idx))
		args = append(args, NormalizePriority(*params.Priority))
		idx++
	}
	if params.DueDate != nil {
		setParts = append(setParts, fmt.Sprintf("due_date = $%d", idx))
		args = append(args, *params.DueDate)
		idx++
	}
	if params.LocationID != nil {
		setParts = append(setParts, fmt.Sprintf("location_id = $%d", idx))
		args = append(args, *params.LocationID)
		idx++
	}

	if len(setParts) == 0 {
		return q.GetProcessByID(ctx, id)
	}

	setParts = append(setParts, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`
        UPDATE processes
        SET %s
        WHERE id = $%d
        RETURNING `+processColumns, strings.Join(setParts, ", "), idx)

	return scanProcess(q.pool.QueryRow(ctx, query, args...))
}

func collectProcesses(rows pgx.Rows) ([]Process, error) {
	var processes []Process
	for rows.Next() {
		process, err := scanProcess(rows)
		if err != nil {
			return nil, err
		}
		processes = append(processes, *process)
	}
	return processes, rows.Err()
}

func scanProcess(row pgx.Row) (*Process, error) {
	var p Process
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.Priority,
		&p.DueDate, &p.LocationID, &p.CreatedByID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}
