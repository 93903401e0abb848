package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
)

var _ repository.GuardRepository = (*GuardRepo)(nil)

// GuardRepo guard operacional sobre PostgreSQL: una única fila (id = 1).
type GuardRepo struct {
	q Querier
}

// NewGuardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGuardRepository(q Querier) *GuardRepo {
	return &GuardRepo{q: q}
}

// IsPaused lee el flag. Sin fila equivale a no pausado.
func (r *GuardRepo) IsPaused() (bool, error) {
	var paused bool
	err := r.q.QueryRow(context.Background(),
		`SELECT paused FROM ops_guard WHERE id = 1`,
	).Scan(&paused)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("read guard: %w", err)
	}
	return paused, nil
}

// SetPaused escribe el flag (upsert de la fila única).
func (r *GuardRepo) SetPaused(paused bool) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO ops_guard (id, paused, updated_at) VALUES (1, $1, now())
		 ON CONFLICT (id) DO UPDATE SET paused = EXCLUDED.paused, updated_at = now()`,
		paused,
	)
	if err != nil {
		return fmt.Errorf("set guard: %w", err)
	}
	return nil
}
