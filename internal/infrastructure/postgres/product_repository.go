package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/custodia-pro/internal/domain"
	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Los productos nunca se borran: no hay Delete.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo. Devuelve ErrDuplicado si el ID ya existe.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, owner, status, metadata, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Owner, string(product.Status), product.Metadata,
		product.CreatedAt, product.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.AlreadyExistsError{ID: product.ID}
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, owner, status, metadata, created_at, last_updated
		FROM products WHERE id = $1`
	var (
		p      entity.Product
		status string
	)
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Owner, &status, &p.Metadata, &p.CreatedAt, &p.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Status = entity.ProductStatus(status)
	return &p, nil
}

// UpdateStatus actualiza estado y last_updated.
func (r *ProductRepo) UpdateStatus(id string, status entity.ProductStatus, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET status = $2, last_updated = $3 WHERE id = $1`,
		id, string(status), updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{ID: id}
	}
	return nil
}

// UpdateOwner actualiza propietario y last_updated. No toca estado ni historial.
func (r *ProductRepo) UpdateOwner(id string, owner string, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET owner = $2, last_updated = $3 WHERE id = $1`,
		id, owner, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product owner: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{ID: id}
	}
	return nil
}
