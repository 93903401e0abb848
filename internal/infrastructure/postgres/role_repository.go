package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo registro de roles sobre PostgreSQL: una fila por (principal, rol).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Grant otorga el rol. Idempotente (ON CONFLICT DO NOTHING).
func (r *RoleRepo) Grant(principalID string, role entity.Role) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO principal_roles (principal_id, role, granted_at)
		 VALUES ($1, $2, now()) ON CONFLICT DO NOTHING`,
		principalID, string(role),
	)
	if err != nil {
		return fmt.Errorf("grant role: %w", err)
	}
	return nil
}

// Revoke revoca el rol. Idempotente.
func (r *RoleRepo) Revoke(principalID string, role entity.Role) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM principal_roles WHERE principal_id = $1 AND role = $2`,
		principalID, string(role),
	)
	if err != nil {
		return fmt.Errorf("revoke role: %w", err)
	}
	return nil
}

// HasRole indica si el principal posee el rol.
func (r *RoleRepo) HasRole(principalID string, role entity.Role) (bool, error) {
	var one int
	err := r.q.QueryRow(context.Background(),
		`SELECT 1 FROM principal_roles WHERE principal_id = $1 AND role = $2`,
		principalID, string(role),
	).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("has role: %w", err)
	}
	return true, nil
}

// RolesOf devuelve el conjunto de roles del principal.
func (r *RoleRepo) RolesOf(principalID string) (entity.RoleSet, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT role FROM principal_roles WHERE principal_id = $1`,
		principalID,
	)
	if err != nil {
		return nil, fmt.Errorf("roles of: %w", err)
	}
	defer rows.Close()
	set := entity.NewRoleSet()
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		set[entity.Role(role)] = true
	}
	return set, rows.Err()
}
