package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/custodia-pro/internal/application/admin"
	"github.com/tu-usuario/custodia-pro/internal/application/tracking"
	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
)

// Ensure TxRunner implements tracking.TxRunner and admin.TxRunner.
var _ tracking.TxRunner = (*TxRunner)(nil)
var _ admin.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL serializable:
// el aislamiento serializable da el orden total que exige el motor de ciclo de
// vida (dos mutaciones sobre el mismo ID no pueden observar el mismo pre-estado).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	events repository.TrackingEventRepository,
	roles repository.RoleRepository,
	guard repository.GuardRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(
			NewProductRepository(tx),
			NewTrackingEventRepository(tx),
			NewRoleRepository(tx),
			NewGuardRepository(tx),
		)
	})
}

// RunAdmin igual que Run, con los repos de las operaciones administrativas.
func (r *TxRunner) RunAdmin(ctx context.Context, fn func(
	roles repository.RoleRepository,
	guard repository.GuardRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewRoleRepository(tx), NewGuardRepository(tx))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
