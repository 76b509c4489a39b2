package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/ecomanager/api/internal/db"
)

// HasAdminUser verifica se a conta administrativa padrão já existe.
func (q *Queries) HasAdminUser(ctx context.Context) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = 'admin')`

	var exists bool
	if err := q.pool.QueryRow(ctx, query).Scan(&exists); err != nil {
		return false, translate(err)
	}
	return exists, nil
}

// Seed cria a conta admin padrão e os registros de exemplo (localização,
// processo e alerta) em uma única transação. Deve ser chamado apenas quando
// HasAdminUser devolve false; a senha padrão precisa ser trocada em produção.
func (q *Queries) Seed(ctx context.Context, adminPasswordHash string) error {
	return db.WithTx(ctx, q.pool, func(ctx context.Context, tx pgx.Tx) error {
		var adminID int64
		err := tx.QueryRow(ctx, `
            INSERT INTO users (email, username, full_name, password_hash, role, is_active)
            VALUES ($1, $2, $3, $4, $5, TRUE)
            RETURNING id`,
			"admin@ecomanager.com", "admin", "Administrador do Sistema",
			adminPasswordHash, RoleAdmin,
		).Scan(&adminID)
		if err != nil {
			return translate(err)
		}

		var locationID int64
		err = tx.QueryRow(ctx, `
            INSERT INTO locations (name, description, latitude, longitude, address)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id`,
			"Sede Principal", "Localização principal da empresa",
			-23.5505, -46.6333, "Av. Paulista, 1000",
		).Scan(&locationID)
		if err != nil {
			return translate(err)
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO processes (title, description, status, priority, due_date, location_id, created_by_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			"Licenciamento Ambiental",
			"Processo de licenciamento ambiental para nova unidade",
			StatusInAnalysis, "alta", time.Now().Add(30*24*time.Hour),
			locationID, adminID,
		)
		if err != nil {
			return translate(err)
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO alerts (title, message, alert_type, location_id, user_id, is_read)
            VALUES ($1, $2, $3, $4, $5, FALSE)`,
			"Níveis de PM2.5 acima do normal",
			"Detectados níveis elevados de partículas PM2.5 na zona industrial",
			AlertWarning, locationID, adminID,
		)
		if err != nil {
			return translate(err)
		}

		log.Info().Msg("dados iniciais criados")
		return nil
	})
}
