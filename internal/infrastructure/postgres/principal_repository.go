package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/custodia-pro/internal/domain"
	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
)

var _ repository.PrincipalRepository = (*PrincipalRepo)(nil)

// PrincipalRepo cuentas de principal sobre PostgreSQL.
type PrincipalRepo struct {
	q Querier
}

// NewPrincipalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPrincipalRepository(q Querier) *PrincipalRepo {
	return &PrincipalRepo{q: q}
}

// Create persiste una cuenta nueva. Devuelve ErrEmailYaRegistrado si el email existe.
func (r *PrincipalRepo) Create(p *entity.Principal) error {
	query := `
		INSERT INTO principals (id, email, password_hash, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Email, p.PasswordHash, p.Name, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailYaRegistrado
		}
		return fmt.Errorf("insert principal: %w", err)
	}
	return nil
}

// FindByEmail busca por email. Devuelve (nil, nil) si no existe.
func (r *PrincipalRepo) FindByEmail(email string) (*entity.Principal, error) {
	return r.scanOne(`SELECT id, email, password_hash, name, status, created_at, updated_at
		FROM principals WHERE email = $1`, email)
}

// GetByID busca por ID. Devuelve (nil, nil) si no existe.
func (r *PrincipalRepo) GetByID(id string) (*entity.Principal, error) {
	return r.scanOne(`SELECT id, email, password_hash, name, status, created_at, updated_at
		FROM principals WHERE id = $1`, id)
}

func (r *PrincipalRepo) scanOne(query string, arg any) (*entity.Principal, error) {
	var p entity.Principal
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.Name, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get principal: %w", err)
	}
	return &p, nil
}
