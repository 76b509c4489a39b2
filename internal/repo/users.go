package repo

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

const userColumns = "id, email, username, full_name, password_hash, role, is_active, created_at, updated_at"

// CreateUserParams encapsula campos para criação de usuário.
type CreateUserParams struct {
	Email        string
	Username     string
	FullName     string
	PasswordHash string
	Role         Role
}

// CreateUser insere um novo membro da equipe. Violações de unicidade de
// email/username retornam ErrDuplicate sem criar linha alguma.
func (q *Queries) CreateUser(ctx context.Context, params CreateUserParams) (*User, error) {
	const query = `
        INSERT INTO users (email, username, full_name, password_hash, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + userColumns

	row := q.pool.QueryRow(ctx, query,
		strings.ToLower(strings.TrimSpace(params.Email)),
		strings.TrimSpace(params.Username),
		strings.TrimSpace(params.FullName),
		params.PasswordHash,
		params.Role,
	)

	return scanUser(row)
}

// GetUserByID busca usuário pelo id.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.pool.QueryRow(ctx, query, id))
}

// GetUserByUsername busca usuário pelo username.
func (q *Queries) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(q.pool.QueryRow(ctx, query, strings.TrimSpace(username)))
}

// GetUserByEmail busca usuário pelo email.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(q.pool.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))))
}

// ListUsers lista membros da equipe com paginação simples.
func (q *Queries) ListUsers(ctx context.Context, skip, limit int) ([]User, error) {
	skip, limit = clampPage(skip, limit)

	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := q.pool.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}

	return users, rows.Err()
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FullName, &u.PasswordHash,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}
